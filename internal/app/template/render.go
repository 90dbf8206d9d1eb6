// Package template renders user-supplied record line formats such as
// "{{index}}. {{name}} (niv. {{level}})".
package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/hatchery/internal/domain"
)

// DefaultRecordFormat mirrors the listing of the interactive shell.
const DefaultRecordFormat = "#{{index}}: {{record}}"

// RenderString replaces {{key}} placeholders with vars values.
// It returns an error if a key is unknown or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid("unclosed placeholder")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid("empty placeholder")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(fmt.Sprintf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// RecordVars exposes a record to templates. index is the 1-based position.
func RecordVars(index int, r domain.Record) map[string]string {
	return map[string]string{
		"index":      strconv.Itoa(index),
		"name":       r.Name,
		"level":      strconv.FormatUint(uint64(r.Level), 10),
		"category":   r.Category.String(),
		"experience": strconv.FormatUint(uint64(r.Experience), 10),
		"sex":        r.Sex.String(),
		"record":     r.String(),
	}
}

// RenderRecords renders one line per record, numbering from 1.
func RenderRecords(format string, records []domain.Record) ([]string, error) {
	if strings.TrimSpace(format) == "" {
		format = DefaultRecordFormat
	}

	lines := make([]string, 0, len(records))
	for i, r := range records {
		line, err := RenderString(format, RecordVars(i+1, r))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  errors.New(msg),
	}
}
