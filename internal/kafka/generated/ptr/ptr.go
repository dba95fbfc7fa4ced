// Package ptr converts between values and the pointers the generated MSK model
// uses for optional members.
package ptr

import (
	"maps"
	"time"

	"github.com/nandemo-ya/mskgo/internal/common"
)

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// Deref returns *p, or the zero value of T when p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Constructors for the scalar member types.

func String(v string) *string { return Of(v) }
func Bool(v bool) *bool { return Of(v) }
func Int32(v int32) *int32 { return Of(v) }
func Int64(v int64) *int64 { return Of(v) }
func Float64(v float64) *float64 { return Of(v) }

// Dereferencers for the scalar member types.

func ToString(p *string) string { return Deref(p) }
func ToBool(p *bool) bool { return Deref(p) }
func ToInt32(p *int32) int32 { return Deref(p) }
func ToInt64(p *int64) int64 { return Deref(p) }
func ToFloat64(p *float64) float64 { return Deref(p) }

// Timestamp wraps t in the wire timestamp type.
func Timestamp(t time.Time) *common.Timestamp {
	return common.NewTimestamp(t)
}

// ToTime unwraps a wire timestamp; nil yields the zero time.
func ToTime(p *common.Timestamp) time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.Time
}

// StringMap copies v. Empty maps become nil so they are omitted on the wire.
func StringMap(v map[string]string) map[string]string {
	if len(v) == 0 {
		return nil
	}
	return maps.Clone(v)
}
