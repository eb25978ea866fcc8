// Package frequency ranks the words of a text by how often they occur.
//
// Words are whitespace-delimited tokens normalized to lowercase alphabetic runes;
// tokens that shrink to two bytes or fewer are ignored. Ranking is by count,
// highest first, with ties broken alphabetically so output is reproducible.
package frequency

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minWordLength is the byte length a normalized word must exceed to be counted
const minWordLength = 2

// Entry is a normalized word and the number of times it occurred.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Normalize lowercases word and removes every rune that is not alphabetic.
// Alphabetic covers letters, letter numbers such as Roman numerals and
// combining marks such as Devanagari vowel signs.
// Normalize is idempotent.
func Normalize(word string) string {
	lower := cases.Lower(language.Und).String(word)
	return strings.Map(func(r rune) rune {
		if isAlphabetic(r) {
			return r
		}
		return -1
	}, lower)
}

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// Count tallies the normalized words of content and returns them sorted by
// count descending, then by word ascending.
func Count(content string) []Entry {
	counts := make(map[string]int)
	for _, token := range strings.Fields(content) {
		word := Normalize(token)
		if len(word) <= minWordLength {
			continue
		}
		counts[word]++
	}

	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	slog.Debug("Word frequency calculated", "uniqueWords", len(entries))
	return entries
}

// Top keeps, in order, the first n entries whose word is longer than minLen bytes.
func Top(entries []Entry, minLen, n int) []Entry {
	top := make([]Entry, 0, n)
	for _, entry := range entries {
		if len(top) == n {
			break
		}
		if len(entry.Word) > minLen {
			top = append(top, entry)
		}
	}
	return top
}
