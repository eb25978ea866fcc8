package counter

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// WordCounter counts maximal runs of non-whitespace characters.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() *WordCounter {
	return &WordCounter{}
}

// Count returns the number of words in the given text using strings.Fields()
// This method splits on any Unicode whitespace and filters out empty strings.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	wordCount := len(strings.Fields(text))

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}

// AverageWordLength returns the mean character count of the whitespace-delimited
// words in text, or 0 when there are none.
func AverageWordLength(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}

	total := 0
	for _, field := range fields {
		total += utf8.RuneCountInString(field)
	}
	return float64(total) / float64(len(fields))
}
