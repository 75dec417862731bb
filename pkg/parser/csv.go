package parser

import (
	"fmt"
	"strings"
)

// Row is one data line zipped with the header: header -> value.
type Row struct {
	Line   int               `json:"line"`
	Fields map[string]string `json:"fields"`
}

// Table is a parsed comma-delimited file.
type Table struct {
	Headers  []string `json:"headers"`
	Rows     []Row    `json:"rows"`
	Skipped  int      `json:"skipped"`
	Encoding string   `json:"encoding"`
}

// Parse decodes data and splits it into a header and data rows.
//
// Lines are trimmed and blank lines dropped before the header is chosen, so
// an input with no non-blank lines yields an empty Table and no error. Rows
// whose field count differs from the header's are dropped without a warning;
// only Skipped records that it happened. Fields are split on bare commas:
// there is no quoting.
func Parse(data []byte) (*Table, error) {
	decoded, enc, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	lines := splitLines(string(decoded))
	table := &Table{Encoding: enc}
	if len(lines) == 0 {
		return table, nil
	}

	table.Headers = splitFields(lines[0])
	headerCount := len(table.Headers)

	for i, line := range lines[1:] {
		values := splitFields(line)
		if len(values) != headerCount {
			table.Skipped++
			continue
		}

		fields := make(map[string]string, headerCount)
		for j, h := range table.Headers {
			fields[h] = values[j]
		}
		// Header is line 1.
		table.Rows = append(table.Rows, Row{Line: i + 2, Fields: fields})
	}

	return table, nil
}

// splitLines returns the trimmed, non-blank lines of s. \n, \r\n and a lone
// \r all terminate a line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
