package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chriscorrea/skim/internal/classify"
)

// maxOutlineHeaders caps the headers listed in the document structure insight
const maxOutlineHeaders = 5

// header is a markdown heading line
type header struct {
	level int
	text  string
}

// MarkdownAnalyzer summarizes markdown documents by line-level markers.
type MarkdownAnalyzer struct{}

// Analyze outlines the headers and counts links, images and fenced code blocks.
//
// Links and images are counted by their "](" and "![" markers on each line,
// so an image with a target is counted as a link as well.
func (a *MarkdownAnalyzer) Analyze(doc *Document) Summary {
	summary := newSummary(classify.Markdown, doc)

	var headers []header
	links, images, fences := 0, 0, 0

	for _, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			text := strings.TrimLeft(trimmed, "#")
			headers = append(headers, header{
				level: len(trimmed) - len(text),
				text:  strings.TrimSpace(text),
			})
		}

		links += strings.Count(line, "](")
		images += strings.Count(line, "![")

		if strings.HasPrefix(trimmed, "```") {
			fences++
		}
	}

	if len(headers) > 0 {
		outline := make([]string, 0, maxOutlineHeaders)
		for i, h := range headers {
			if i == maxOutlineHeaders {
				break
			}
			outline = append(outline, fmt.Sprintf("H%d: %s", h.level, h.text))
		}
		summary.Insights = append(summary.Insights, "Document structure: "+strings.Join(outline, ", "))
	}

	summary.Statistics.Set("headers", strconv.Itoa(len(headers)))
	summary.Statistics.Set("links", strconv.Itoa(links))
	summary.Statistics.Set("images", strconv.Itoa(images))
	// an unmatched trailing fence is not a block
	summary.Statistics.Set("code_blocks", strconv.Itoa(fences/2))

	return summary
}
