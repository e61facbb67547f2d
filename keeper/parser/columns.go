// Package parser turns raw command listings into typed records. Malformed lines are skipped and
// counted rather than failing the whole listing.
package parser

import (
	"strings"
	"unicode"

	"github.com/hostkeeper/keeper/keeper/domain"
)

const maxParseErrors = 5

// splitColumns splits line on whitespace runs into at most n columns. The last column keeps the
// rest of the line with its inner spaces.
func splitColumns(line string, n int) []string {
	cols := make([]string, 0, n)
	rest := strings.TrimSpace(line)
	for len(cols) < n-1 && rest != "" {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			break
		}
		cols = append(cols, rest[:i])
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	if rest != "" {
		cols = append(cols, rest)
	}
	return cols
}

func lines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

type reporter struct {
	report domain.ParseReport
}

func (r *reporter) line() {
	r.report.Lines++
}

func (r *reporter) skip(lineNo int, text, reason string) {
	r.report.Skipped++
	if len(r.report.Errors) < maxParseErrors {
		r.report.Errors = append(r.report.Errors, domain.ParseError{Line: lineNo, Text: text, Reason: reason})
	}
}
