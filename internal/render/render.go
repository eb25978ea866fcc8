// Package render formats an analysis summary for display.
//
// Text is the default layout: a type line, a basic statistics block, an
// optional detailed statistics block and an optional insights block.
// Markdown and JSON carry the same information for other consumers.
package render

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chriscorrea/skim/internal/analysis"
)

// FallbackNotice precedes summaries of sources whose kind was not recognized.
const FallbackNotice = "Unknown file type, analyzing as plain text..."

// Report is a summary together with the details of how it was produced.
type Report struct {
	Source  string // name shown in the title
	Summary analysis.Summary

	// Tokens is reported only when ShowTokens is set
	Tokens     int
	ShowTokens bool
}

// StatLabel turns a statistic name such as "avg_word_length" into its display
// label "Average word length".
func StatLabel(name string) string {
	label := strings.ReplaceAll(name, "_", " ")
	label = strings.ReplaceAll(label, "avg", "Average")

	first, size := utf8.DecodeRuneInString(label)
	if size == 0 {
		return label
	}
	return string(unicode.ToUpper(first)) + label[size:]
}

// basicStats lists the universal counts in display order.
func basicStats(r Report) [][2]string {
	stats := [][2]string{
		{"Lines", itoa(r.Summary.Lines)},
		{"Words", itoa(r.Summary.Words)},
		{"Characters", itoa(r.Summary.Chars)},
	}
	if r.ShowTokens {
		stats = append(stats, [2]string{"Tokens", itoa(r.Tokens)})
	}
	return stats
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
