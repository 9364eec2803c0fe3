package format

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"fuzzydb/pkg/fuzzydb"
)

// Render writes the summary lines and table for entities, restricted to
// projection, to w. duration is the caller-measured wall-clock time of the
// query that produced entities — timing is the caller's responsibility,
// not the formatter's.
func Render(w io.Writer, entities []fuzzydb.Entity, projection fuzzydb.Projection, duration time.Duration) error {
	fmt.Fprintf(w, "entities returned %s\n", humanize.Comma(int64(len(entities))))
	fmt.Fprintf(w, "query execution in %dms\n", duration.Milliseconds())

	fields := outputFields(entities, projection)
	widths := columnWidths(fields, entities)

	if err := renderHeader(w, fields, widths); err != nil {
		return err
	}
	if err := renderRule(w, fields, widths); err != nil {
		return err
	}
	for _, e := range entities {
		if err := renderRow(w, e, fields, widths); err != nil {
			return err
		}
	}
	return nil
}

// outputFields computes the projection list's intersection with present
// fields, or the union of present fields if the projection is empty —
// sorted lexicographically, which fixes column order.
func outputFields(entities []fuzzydb.Entity, projection fuzzydb.Projection) []string {
	present := make(map[string]struct{})
	for _, e := range entities {
		for _, f := range e.Fields {
			present[f.Name] = struct{}{}
		}
	}

	var fields []string
	if projection.IsAll() {
		for name := range present {
			fields = append(fields, name)
		}
	} else {
		for _, name := range projection {
			if _, ok := present[name]; ok {
				fields = append(fields, name)
			}
		}
	}

	sort.Strings(fields)
	return fields
}

// columnWidths computes each output column's width as the longer of its
// field name and the widest value present for that field across entities.
func columnWidths(fields []string, entities []fuzzydb.Entity) map[string]int {
	widths := make(map[string]int, len(fields))
	for _, name := range fields {
		widths[name] = len(name)
	}
	for _, e := range entities {
		for _, name := range fields {
			if value, ok := e.Value(name); ok && len(value) > widths[name] {
				widths[name] = len(value)
			}
		}
	}
	return widths
}

func renderHeader(w io.Writer, fields []string, widths map[string]int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for _, name := range fields {
		sb.WriteString(" ")
		sb.WriteString(rightAlign(name, widths[name]))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func renderRule(w io.Writer, fields []string, widths map[string]int) error {
	total := 1
	for _, name := range fields {
		total += 3 + widths[name]
	}
	_, err := fmt.Fprintln(w, strings.Repeat("-", total))
	return err
}

func renderRow(w io.Writer, e fuzzydb.Entity, fields []string, widths map[string]int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for _, name := range fields {
		value, _ := e.Value(name)
		sb.WriteString(" ")
		sb.WriteString(rightAlign(value, widths[name]))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
