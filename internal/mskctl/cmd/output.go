package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/mskgo/internal/common"
)

// render writes v in the configured format. table fills the rows for table output.
func (a *app) render(w io.Writer, v interface{}, table func(t *tablewriter.Table)) error {
	switch strings.ToLower(a.cfg.Output.Format) {
	case "json":
		return outputJSON(w, v)
	case "yaml":
		return outputYAML(w, v)
	case "table":
		t := newTable(w)
		table(t)
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", a.cfg.Output.Format)
	}
}

func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// outputYAML goes through JSON first so the keys, blobs and timestamps match
// the wire names instead of the Go field names.
func outputYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// keyValues renders a two column detail table
func keyValues(t *tablewriter.Table, rows [][2]string) {
	t.SetHeader([]string{"Field", "Value"})
	for _, row := range rows {
		t.Append([]string{row[0], row[1]})
	}
}

func str(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func int32Str(p *int32) string {
	if p == nil {
		return "-"
	}
	return humanize.Comma(int64(*p))
}

func int64Str(p *int64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatInt(*p, 10)
}

func enumStr[T ~string](v T) string {
	if v == "" {
		return "-"
	}
	return string(v)
}

// age renders a timestamp relative to now, e.g. "3 hours ago"
func age(ts *common.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return humanize.Time(ts.Time)
}

func timeStr(ts *common.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.UTC().Format(time.RFC3339)
}

// volumeSize renders an EBS size given in GiB
func volumeSize(gib int32) string {
	return humanize.IBytes(uint64(gib) * humanize.GiByte)
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ",")
}
