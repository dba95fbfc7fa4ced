package generated

import (
	"errors"
	"fmt"
)

// ErrInvalidEnumValue is matched by every error returned from the Parse* enum functions.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumValueError reports a string that is not one of an enum's known values.
type InvalidEnumValueError struct {
	Type  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: value cannot be empty", e.Type)
	}
	return fmt.Sprintf("%s: unknown value %q", e.Type, e.Value)
}

// Is reports whether target is ErrInvalidEnumValue.
func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}
