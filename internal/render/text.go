package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Text renders the report in the default plain layout. When styled is set,
// section headings are emphasized for terminal display.
func Text(r Report, styled bool) string {
	heading := func(s string) string {
		if styled {
			return headingStyle.Render(s)
		}
		return s
	}

	var b strings.Builder
	if r.Summary.Fallback {
		b.WriteString(FallbackNotice + "\n")
	}

	fmt.Fprintf(&b, "%s %s\n", heading("File Summary:"), r.Source)
	fmt.Fprintf(&b, "Type: %s\n", r.Summary.Kind.Label())

	b.WriteString("\n" + heading("Basic Statistics:") + "\n")
	for _, stat := range basicStats(r) {
		fmt.Fprintf(&b, "%s: %s\n", stat[0], stat[1])
	}

	if r.Summary.Statistics.Len() > 0 {
		b.WriteString("\n" + heading("Detailed Statistics:") + "\n")
		for _, name := range r.Summary.Statistics.Keys() {
			value, _ := r.Summary.Statistics.Get(name)
			fmt.Fprintf(&b, "%s: %s\n", StatLabel(name), value)
		}
	}

	if len(r.Summary.Insights) > 0 {
		b.WriteString("\n" + heading("Key Insights:") + "\n")
		for _, insight := range r.Summary.Insights {
			fmt.Fprintf(&b, "   • %s\n", insight)
		}
	}

	return b.String()
}
