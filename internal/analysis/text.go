package analysis

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/skim/internal/classify"
	"github.com/chriscorrea/skim/internal/counter"
	"github.com/chriscorrea/skim/internal/frequency"
)

const (
	// topWords is how many frequent words a text summary lists
	topWords = 5
	// minTopWordLength excludes short words such as "the" from the list
	minTopWordLength = 3
)

// TextAnalyzer summarizes plain prose.
type TextAnalyzer struct{}

// Analyze reports the most frequent words and average word and line lengths.
func (a *TextAnalyzer) Analyze(doc *Document) Summary {
	summary := newSummary(classify.PlainText, doc)

	top := frequency.Top(frequency.Count(doc.Content), minTopWordLength, topWords)
	if len(top) > 0 {
		words := make([]string, len(top))
		for i, entry := range top {
			words[i] = fmt.Sprintf("%s (%d)", entry.Word, entry.Count)
		}
		summary.Insights = append(summary.Insights, "Most frequent words: "+strings.Join(words, ", "))
	}

	summary.Statistics.Set("avg_word_length", fmt.Sprintf("%.1f", counter.AverageWordLength(doc.Content)))
	summary.Statistics.Set("avg_line_length", ratio(float64(doc.Stats.Chars), float64(doc.Stats.Lines)))

	return summary
}
