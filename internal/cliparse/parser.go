package cliparse

import (
	"fmt"
	"regexp"
	"strings"

	"fuzzydb/pkg/fuzzydb"
)

// Kind identifies which REPL command a Command carries.
type Kind int

const (
	Exit Kind = iota
	Help
	Load
	Query
)

// Command is the parsed form of one REPL input line.
type Command struct {
	Kind     Kind
	Filename string      // set for Load
	Query    fuzzydb.Query // set for Query
}

// filterPattern matches one "field ~type value" or "field ~type(params) value"
// clause. Values and field names are single whitespace-delimited tokens —
// the grammar does not support quoted multi-word values.
var filterPattern = regexp.MustCompile(`^(\S+)\s+~(\w+)(?:\(([^)]*)\))?\s+(\S+)$`)

// Parse parses one REPL input line into a Command.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("cliparse: empty input")
	}

	upper := strings.ToUpper(line)

	switch {
	case upper == "EXIT":
		return Command{Kind: Exit}, nil
	case upper == "HELP":
		return Command{Kind: Help}, nil
	case strings.HasPrefix(upper, "LOAD "):
		filename := strings.TrimSpace(line[len("LOAD "):])
		if filename == "" {
			return Command{}, fmt.Errorf("cliparse: LOAD requires a filename")
		}
		return Command{Kind: Load, Filename: filename}, nil
	case strings.HasPrefix(upper, "SELECT "):
		return parseSelect(line)
	default:
		return Command{}, fmt.Errorf("cliparse: unrecognized command %q", line)
	}
}

func parseSelect(line string) (Command, error) {
	rest := line[len("SELECT "):]

	whereIdx := indexWhere(rest)
	if whereIdx < 0 {
		return Command{}, fmt.Errorf("cliparse: SELECT requires a WHERE clause")
	}

	projectionPart := strings.TrimSpace(rest[:whereIdx])
	filtersPart := strings.TrimSpace(rest[whereIdx+len("WHERE"):])

	projection, err := parseProjection(projectionPart)
	if err != nil {
		return Command{}, err
	}

	filters, err := parseFilters(filtersPart)
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: Query, Query: fuzzydb.Query{Projection: projection, Filters: filters}}, nil
}

// indexWhere finds the case-insensitive index of the standalone "WHERE"
// keyword in s, or -1 if absent.
func indexWhere(s string) int {
	upper := strings.ToUpper(s)
	fields := strings.Fields(upper)
	offset := 0
	for _, f := range fields {
		idx := strings.Index(upper[offset:], f)
		pos := offset + idx
		if f == "WHERE" {
			return pos
		}
		offset = pos + len(f)
	}
	return -1
}

func parseProjection(s string) (fuzzydb.Projection, error) {
	if s == "" || s == "*" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	projection := make(fuzzydb.Projection, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			return nil, fmt.Errorf("cliparse: empty field name in projection")
		}
		projection = append(projection, name)
	}
	return projection, nil
}

func parseFilters(s string) ([]fuzzydb.Filter, error) {
	clauses := splitAnd(s)
	if len(clauses) == 0 {
		return nil, fmt.Errorf("cliparse: WHERE requires at least one filter")
	}

	filters := make([]fuzzydb.Filter, 0, len(clauses))
	for _, clause := range clauses {
		filter, err := parseFilter(clause)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// splitAnd splits s on the standalone, case-insensitive "AND" keyword.
func splitAnd(s string) []string {
	re := regexp.MustCompile(`(?i)\s+AND\s+`)
	parts := re.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseFilter(clause string) (fuzzydb.Filter, error) {
	m := filterPattern.FindStringSubmatch(clause)
	if m == nil {
		return fuzzydb.Filter{}, fmt.Errorf("cliparse: malformed filter clause %q", clause)
	}

	field, filterType, rawParams, value := m[1], m[2], m[3], m[4]

	var params []string
	if rawParams != "" {
		for _, p := range strings.Split(rawParams, ",") {
			params = append(params, strings.TrimSpace(p))
		}
	}

	return fuzzydb.Filter{
		FieldName:  field,
		FilterType: filterType,
		Value:      strings.ToLower(value),
		Params:     params,
	}, nil
}
