package importer

import (
	"strings"
)

// utf8BOM is prepended by some spreadsheet exports.
const utf8BOM = "\uFEFF"

// RawTable is the tokenized form of an export: one header row and the data
// rows that follow it. Rows may be ragged: any row can have more or fewer
// fields than the header.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Columns returns the number of header cells.
func (t *RawTable) Columns() int {
	return len(t.Header)
}

// Tokenize splits text into lines, skips blank lines and parses each
// remaining line into fields. The first remaining line is the header.
//
// It returns ErrInsufficientData when fewer than two non-blank lines remain.
//
// Lines are split before fields are parsed, so a quoted value containing a
// raw newline is cut at that newline and its tail becomes a row of its own.
// An unterminated quote consumes the rest of its line. Neither case is an
// error.
func Tokenize(text string) (*RawTable, error) {
	text = strings.TrimPrefix(text, utf8BOM)
	text = strings.ToValidUTF8(text, "\uFFFD")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil, ErrInsufficientData
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, ParseLine(line))
	}

	return &RawTable{Header: ParseLine(lines[0]), Rows: rows}, nil
}

// ParseLine splits a single line on commas that are not inside quotes.
//
// Quote characters toggle the quoted state and are kept in the raw field;
// cleanField then removes the wrapping quotes and collapses doubled ones.
func ParseLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		inQuote bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case r == ',' && !inQuote:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(current.String()))

	return fields
}

// cleanField trims whitespace, strips one leading and one trailing quote,
// turns every "" into " and trims again, so `" a "` yields "a".
func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.ReplaceAll(s, `""`, `"`)
	return strings.TrimSpace(s)
}
