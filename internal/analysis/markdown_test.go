package analysis

import (
	"strings"
	"testing"

	"github.com/chriscorrea/skim/internal/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownAnalyzer(t *testing.T) {
	content := "# Header\n\nSome content with [link](url) and ![image](img.jpg)\n\n```code```"

	s := AnalyzeKind(content, classify.Markdown)

	assert.Equal(t, classify.Markdown, s.Kind)
	assert.Equal(t, 5, s.Lines)
	assert.Equal(t, "1", stat(t, s, "headers"))
	// the image target also matches the link marker
	assert.Equal(t, "2", stat(t, s, "links"))
	assert.Equal(t, "1", stat(t, s, "images"))
	assert.Equal(t, "0", stat(t, s, "code_blocks"))
	assert.Equal(t, []string{"Document structure: H1: Header"}, s.Insights)
	assert.Equal(t, []string{"headers", "links", "images", "code_blocks"}, s.Statistics.Keys())
}

func TestMarkdownHeaders(t *testing.T) {
	content := strings.Join([]string{
		"## Intro",
		"###No space",
		"  # Indented #",
		"#",
		"text # not a header",
		"#### Four",
		"##### Five",
		"###### Six",
	}, "\n")

	s := AnalyzeKind(content, classify.Markdown)

	assert.Equal(t, "7", stat(t, s, "headers"))
	require.Len(t, s.Insights, 1)
	assert.Equal(t, "Document structure: H2: Intro, H3: No space, H1: Indented #, H1: , H4: Four", s.Insights[0])
}

func TestMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		blocks  string
	}{
		{"one block", "```go\nx := 1\n```", "1"},
		{"two blocks", "```\na\n```\ntext\n  ```sh\nb\n  ```", "2"},
		{"unclosed fence dropped", "```\na\n```\n```\nb", "1"},
		{"inline fence counts once", "```code```", "0"},
		{"no fences", "plain", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnalyzeKind(tt.content, classify.Markdown)
			assert.Equal(t, tt.blocks, stat(t, s, "code_blocks"))
		})
	}
}

func TestMarkdownLinksAndImages(t *testing.T) {
	content := "[a](x) [b](y)\n![c](z.png)\nno markers ] ( here\n![bare"

	s := AnalyzeKind(content, classify.Markdown)

	assert.Equal(t, "3", stat(t, s, "links"))
	assert.Equal(t, "2", stat(t, s, "images"))
	assert.Equal(t, "0", stat(t, s, "headers"))
	assert.Empty(t, s.Insights)
}
