package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders the report as a Markdown document. Indented insights,
// such as quoted error lines, become nested list items.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# File Summary: %s\n\n", r.Source)
	if r.Summary.Fallback {
		fmt.Fprintf(&b, "> %s\n\n", FallbackNotice)
	}
	fmt.Fprintf(&b, "**Type:** %s\n", r.Summary.Kind.Label())

	b.WriteString("\n## Basic Statistics\n\n")
	for _, stat := range basicStats(r) {
		fmt.Fprintf(&b, "- %s: %s\n", stat[0], stat[1])
	}

	if r.Summary.Statistics.Len() > 0 {
		b.WriteString("\n## Detailed Statistics\n\n")
		for _, name := range r.Summary.Statistics.Keys() {
			value, _ := r.Summary.Statistics.Get(name)
			fmt.Fprintf(&b, "- %s: %s\n", StatLabel(name), value)
		}
	}

	if len(r.Summary.Insights) > 0 {
		b.WriteString("\n## Key Insights\n\n")
		for _, insight := range r.Summary.Insights {
			if trimmed := strings.TrimLeft(insight, " "); trimmed != insight {
				fmt.Fprintf(&b, "  - %s\n", trimmed)
				continue
			}
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}

	return b.String()
}

// MarkdownTerminal renders the report as Markdown styled for a terminal of
// the given width.
func MarkdownTerminal(r Report, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(Markdown(r))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
