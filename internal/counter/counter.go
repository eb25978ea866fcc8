// Package counter provides the basic text measurements shared by every
// analyzer: line splitting, word counting and character counting, plus an
// optional token counter.
//
// Usage Example:
//
//	lines := counter.SplitLines(content)
//	stats := counter.Basic(content, lines)
//	// stats.Lines, stats.Words, stats.Chars
//
// The counts produced here do not depend on the kind of content being
// analyzed; every summary reports them the same way.
package counter

import "log/slog"

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Stats holds the three universal counts of a piece of content.
type Stats struct {
	Lines int
	Words int
	Chars int
}

var (
	_ Counter = (*TokenCounter)(nil)

	words Counter = NewWordCounter()
	chars Counter = NewCharCounter()
)

// Basic computes line, word and character counts for content.
// lines must be the result of SplitLines(content).
func Basic(content string, lines []string) Stats {
	stats := Stats{
		Lines: len(lines),
		Words: words.Count(content),
		Chars: chars.Count(content),
	}

	slog.Debug("Basic statistics calculated", "lines", stats.Lines, words.Name(), stats.Words, chars.Name(), stats.Chars)
	return stats
}
