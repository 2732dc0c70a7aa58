// Package importer holds the tolerant CSV normalizers behind the bulk
// import endpoints. The files come from whatever the operators have at
// hand, so the parsers sniff the delimiter, locate columns by header
// name where they can, fall back to a known positional layout where
// they can't, and skip bad rows instead of failing the import.
package importer

import (
	"fmt"
	"strings"
)

// RowError reports one skipped or failed row by its index in the input.
type RowError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// HeaderError aborts a whole import when the mandatory columns cannot be
// located by name or by position. It carries the detected headers so the
// operator can see what the file actually contained.
type HeaderError struct {
	Headers []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("could not locate mandatory columns, detected headers: [%s]",
		strings.Join(e.Headers, ", "))
}

// splitLines splits raw text into non-empty trimmed lines.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sniffDelimiter picks the delimiter by presence in the first line, in
// priority order: tab, semicolon, pipe, else comma. A tab wins even when
// commas also appear inside quoted fields.
func sniffDelimiter(line string) rune {
	switch {
	case strings.ContainsRune(line, '\t'):
		return '\t'
	case strings.ContainsRune(line, ';'):
		return ';'
	case strings.ContainsRune(line, '|'):
		return '|'
	default:
		return ','
	}
}

func splitFields(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	for i, part := range parts {
		parts[i] = cleanField(part)
	}
	return parts
}

// cleanField strips wrapping quotes and non-printable characters and
// trims whitespace.
func cleanField(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '\ufeff' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// findColumn locates a column role by substring match against the
// lower-cased header cells. Already-claimed columns are skipped so
// "group" cannot steal the "sub group" column.
func findColumn(header []string, used map[int]bool, keys ...string) int {
	for i, cell := range header {
		if used[i] {
			continue
		}
		cell = strings.ToLower(cell)
		for _, key := range keys {
			if strings.Contains(cell, key) {
				used[i] = true
				return i
			}
		}
	}
	return -1
}

func field(parts []string, idx int) string {
	if idx < 0 || idx >= len(parts) {
		return ""
	}
	return parts[idx]
}
