package analysis

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chriscorrea/skim/internal/classify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// severities are the level markers counted in log lines, in reporting order
var severities = []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

// errorMarkers flag a line as an error line
var errorMarkers = []string{"ERROR", "EXCEPTION", "FAIL"}

const (
	// maxErrorSamples caps the error lines quoted in insights
	maxErrorSamples = 3
	// maxErrorSampleBytes is where a quoted error line is cut
	maxErrorSampleBytes = 100
	// minTimestampLineBytes is the length a line must exceed to carry a timestamp
	minTimestampLineBytes = 10
)

// LogAnalyzer summarizes log files by level markers, timestamps and errors.
//
// All matching is by substring: "INFORMATION" counts as INFO and "WARNING"
// as WARN, and a line may count toward several levels.
type LogAnalyzer struct{}

// Analyze counts level markers, collects error lines and estimates the time
// range covered from the leading field of each line.
func (a *LogAnalyzer) Analyze(doc *Document) Summary {
	summary := newSummary(classify.Log, doc)
	upper := cases.Upper(language.Und)

	levels := make(map[string]int, len(severities))
	var errorLines, timestamps []string

	for _, line := range doc.Lines {
		upperLine := upper.String(line)

		for _, level := range severities {
			if strings.Contains(upperLine, level) {
				levels[level]++
			}
		}

		if containsAny(upperLine, errorMarkers) {
			errorLines = append(errorLines, line)
		}

		if stamp, ok := timestampCandidate(line); ok {
			timestamps = append(timestamps, stamp)
		}
	}

	if len(levels) > 0 {
		counts := make([]string, 0, len(levels))
		for _, level := range severities {
			if n, ok := levels[level]; ok {
				counts = append(counts, fmt.Sprintf("%s: %d", level, n))
			}
		}
		summary.Insights = append(summary.Insights, "Log levels: "+strings.Join(counts, ", "))
	}

	// first and last by position in the file, not by time
	if len(timestamps) > 1 {
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("Time range: %s to %s", timestamps[0], timestamps[len(timestamps)-1]))
	}

	if len(errorLines) > 0 {
		summary.Insights = append(summary.Insights, fmt.Sprintf("Sample errors found: %d total", len(errorLines)))
		for i, line := range errorLines {
			if i == maxErrorSamples {
				break
			}
			summary.Insights = append(summary.Insights, fmt.Sprintf("  %d: %s", i+1, truncate(line, maxErrorSampleBytes)))
		}
	}

	unique := make(map[string]struct{}, len(timestamps))
	for _, stamp := range timestamps {
		unique[stamp] = struct{}{}
	}
	summary.Statistics.Set("unique_timestamps", strconv.Itoa(len(unique)))

	return summary
}

// timestampCandidate returns the first field of line when it looks like a
// date or time: the line is long enough and carries a separator, and the
// field itself contains ':' or '-'.
func timestampCandidate(line string) (string, bool) {
	if len(line) <= minTimestampLineBytes || !strings.ContainsAny(line, ":-/") {
		return "", false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.ContainsAny(fields[0], ":-") {
		return "", false
	}
	return fields[0], true
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most max bytes on a rune boundary and marks the cut with "...".
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
