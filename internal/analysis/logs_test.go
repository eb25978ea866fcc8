package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chriscorrea/skim/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAnalyzer(t *testing.T) {
	s := AnalyzeKind("ERROR something failed\nINFO ok", classify.Log)

	assert.Equal(t, classify.Log, s.Kind)
	assert.Equal(t, []string{
		"Log levels: ERROR: 1, INFO: 1",
		"Sample errors found: 1 total",
		"  1: ERROR something failed",
	}, s.Insights)
	assert.Equal(t, "0", stat(t, s, "unique_timestamps"))
}

func TestLogTimeRange(t *testing.T) {
	content := strings.Join([]string{
		"2024-01-01 10:00:00 INFO start",
		"2024-01-01 10:05:00 WARN slow",
		"2024-01-02 11:00:00 ERROR boom",
	}, "\n")

	s := AnalyzeKind(content, classify.Log)

	assert.Equal(t, []string{
		"Log levels: ERROR: 1, WARN: 1, INFO: 1",
		"Time range: 2024-01-01 to 2024-01-02",
		"Sample errors found: 1 total",
		"  1: 2024-01-02 11:00:00 ERROR boom",
	}, s.Insights)
	assert.Equal(t, "2", stat(t, s, "unique_timestamps"))
}

func TestLogTimeRangeFollowsLineOrder(t *testing.T) {
	content := "12:30:00 late entry\n09:00:00 early entry"

	s := AnalyzeKind(content, classify.Log)

	require.Len(t, s.Insights, 1)
	assert.Equal(t, "Time range: 12:30:00 to 09:00:00", s.Insights[0])
}

func TestLogTimestampCandidate(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		stamp string
		ok    bool
	}{
		{"iso date", "2024-01-01 started", "2024-01-01", true},
		{"clock time", "10:00:00 started up", "10:00:00", true},
		{"too short", "10:00 up", "", false},
		{"exactly ten bytes", "10:00:00 a", "", false},
		{"no separator", "started the service", "", false},
		{"separator later only", "started at 10:00:00", "", false},
		{"slash date not a candidate", "2024/01/01 started", "", false},
		{"hyphenated word counts", "re-indexing the catalog", "re-indexing", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp, ok := timestampCandidate(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.stamp, stamp)
		})
	}
}

func TestLogLevelsSubstringMatching(t *testing.T) {
	content := "WARNING: Information follows\ndebugger attached\nnothing here"

	s := AnalyzeKind(content, classify.Log)

	require.NotEmpty(t, s.Insights)
	assert.Equal(t, "Log levels: WARN: 1, INFO: 1, DEBUG: 1", s.Insights[0])
}

func TestLogErrorSamples(t *testing.T) {
	long := "ERROR " + strings.Repeat("x", 200)
	content := strings.Join([]string{
		long,
		"an Exception was thrown",
		"job FAILED",
		"error again",
		"all good",
	}, "\n")

	s := AnalyzeKind(content, classify.Log)

	assert.Contains(t, s.Insights, "Sample errors found: 4 total")
	assert.Contains(t, s.Insights, "  1: "+long[:100]+"...")
	assert.Contains(t, s.Insights, "  2: an Exception was thrown")
	assert.Contains(t, s.Insights, "  3: job FAILED")
	for _, insight := range s.Insights {
		assert.NotContains(t, insight, "error again")
	}
}

func TestLogTruncateKeepsRunes(t *testing.T) {
	line := "ERROR! " + strings.Repeat("é", 60)

	cut := truncate(line, 100)

	assert.True(t, utf8.ValidString(cut))
	assert.True(t, strings.HasSuffix(cut, "..."))
	assert.Equal(t, 99+len("..."), len(cut))
	assert.Equal(t, "short", truncate("short", 100))
	assert.Equal(t, strings.Repeat("a", 100), truncate(strings.Repeat("a", 100), 100))
}

func TestLogNoMarkers(t *testing.T) {
	s := AnalyzeKind("just some text\nmore text", classify.Log)

	assert.Empty(t, s.Insights)
	assert.Equal(t, "0", stat(t, s, "unique_timestamps"))
}
