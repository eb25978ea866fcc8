package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chriscorrea/skim/internal/classify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxListedFunctions caps the function names quoted in insights
const maxListedFunctions = 5

// SourceAnalyzer summarizes Rust source by matching each trimmed line
// against declaration prefixes. It does not parse: block comments spanning
// lines, trailing comments and string contents are not recognized.
type SourceAnalyzer struct{}

// Analyze collects functions, structs, enums and imports, and counts comment
// lines and TODO/FIXME markers.
func (a *SourceAnalyzer) Analyze(doc *Document) Summary {
	summary := newSummary(classify.SourceCode, doc)
	upper := cases.Upper(language.Und)

	var functions, structs, enums, imports []string
	comments, todos := 0, 0

	for _, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "fn ") || strings.Contains(trimmed, " fn ") {
			if name, ok := functionName(trimmed); ok {
				functions = append(functions, name)
			}
		}

		if strings.HasPrefix(trimmed, "struct ") {
			if name, ok := secondField(trimmed); ok {
				structs = append(structs, name)
			}
		}
		if strings.HasPrefix(trimmed, "enum ") {
			if name, ok := secondField(trimmed); ok {
				enums = append(enums, name)
			}
		}

		if strings.HasPrefix(trimmed, "use ") {
			imports = append(imports, trimmed)
		}

		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			comments++
		}

		upperLine := upper.String(trimmed)
		if strings.Contains(upperLine, "TODO") || strings.Contains(upperLine, "FIXME") {
			todos++
		}
	}

	if len(functions) > 0 {
		listed := functions
		if len(listed) > maxListedFunctions {
			listed = listed[:maxListedFunctions]
		}
		summary.Insights = append(summary.Insights,
			fmt.Sprintf("Functions (%d): %s", len(functions), strings.Join(listed, ", ")))
	}
	if len(structs) > 0 {
		summary.Insights = append(summary.Insights, "Structs: "+strings.Join(structs, ", "))
	}
	if len(enums) > 0 {
		summary.Insights = append(summary.Insights, "Enums: "+strings.Join(enums, ", "))
	}
	if todos > 0 {
		summary.Insights = append(summary.Insights, fmt.Sprintf("TODOs/FIXMEs found: %d", todos))
	}

	summary.Statistics.Set("functions", strconv.Itoa(len(functions)))
	summary.Statistics.Set("structs", strconv.Itoa(len(structs)))
	summary.Statistics.Set("enums", strconv.Itoa(len(enums)))
	summary.Statistics.Set("imports", strconv.Itoa(len(imports)))

	commentRatio := 0.0
	if doc.Stats.Lines > 0 {
		commentRatio = float64(comments) / float64(doc.Stats.Lines) * 100
	}
	summary.Statistics.Set("comment_ratio", fmt.Sprintf("%.1f%%", commentRatio))

	return summary
}

// functionName returns the text between the first "fn " and the following
// "(", trimmed. Lines without a "(" after "fn " yield nothing.
func functionName(line string) (string, bool) {
	start := strings.Index(line, "fn ")
	if start < 0 {
		return "", false
	}

	rest := line[start+len("fn "):]
	paren := strings.IndexByte(rest, '(')
	if paren < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:paren]), true
}

// secondField returns the second whitespace-delimited field of line verbatim.
func secondField(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}
