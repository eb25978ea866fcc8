package counter

import "strings"

// SplitLines breaks content into lines on "\n", dropping the terminator and
// any "\r" before it. Empty lines are kept; a final newline does not start
// another line, so "a\nb\n" and "a\nb" both yield two lines and "" yields none.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
