// Package analysis turns the raw content of a source into a Summary.
//
// Content is split into lines and measured once (see Document); the kind of
// the source then selects exactly one Analyzer to run over that shared data:
//
//	summary := analysis.Analyze(content, "md")
//	// summary.Statistics, summary.Insights
//
// Analyzers are total. Any text, including empty text, yields a valid
// Summary; missing insights or zero averages are normal results.
package analysis

import (
	"fmt"
	"log/slog"

	"github.com/chriscorrea/skim/internal/classify"
	"github.com/chriscorrea/skim/internal/counter"
)

// Document is the content of a source with its lines and basic counts.
type Document struct {
	Content string
	Lines   []string
	Stats   counter.Stats
}

// NewDocument splits and measures content.
func NewDocument(content string) *Document {
	lines := counter.SplitLines(content)
	return &Document{
		Content: content,
		Lines:   lines,
		Stats:   counter.Basic(content, lines),
	}
}

// Analyzer summarizes a document of one content kind.
type Analyzer interface {
	Analyze(doc *Document) Summary
}

// Registry selects the analyzer for each content kind. Kinds without an
// analyzer are summarized by the fallback analyzer.
type Registry struct {
	analyzers map[classify.Kind]Analyzer
	fallback  Analyzer
}

// NewRegistry creates an empty registry that falls back to fallback.
func NewRegistry(fallback Analyzer) *Registry {
	return &Registry{
		analyzers: make(map[classify.Kind]Analyzer),
		fallback:  fallback,
	}
}

// DefaultRegistry returns a registry with the text, markdown, log and source
// code analyzers, falling back to the text analyzer.
func DefaultRegistry() *Registry {
	text := &TextAnalyzer{}
	r := NewRegistry(text)
	for kind, analyzer := range map[classify.Kind]Analyzer{
		classify.PlainText:  text,
		classify.Markdown:   &MarkdownAnalyzer{},
		classify.Log:        &LogAnalyzer{},
		classify.SourceCode: &SourceAnalyzer{},
	} {
		if err := r.Register(kind, analyzer); err != nil {
			panic(err)
		}
	}
	return r
}

// Register sets the analyzer used for kind, replacing any existing one.
func (r *Registry) Register(kind classify.Kind, analyzer Analyzer) error {
	if analyzer == nil {
		return fmt.Errorf("cannot register nil analyzer for kind %q", kind)
	}
	if kind == classify.Unknown {
		return fmt.Errorf("cannot register analyzer for kind %q", kind)
	}

	r.analyzers[kind] = analyzer
	return nil
}

// Has reports whether kind has its own analyzer.
func (r *Registry) Has(kind classify.Kind) bool {
	_, ok := r.analyzers[kind]
	return ok
}

// Analyze summarizes content as kind.
func (r *Registry) Analyze(content string, kind classify.Kind) Summary {
	doc := NewDocument(content)

	if !r.Has(kind) {
		slog.Debug("No analyzer for kind, analyzing as plain text", "kind", kind)
		summary := r.fallback.Analyze(doc)
		summary.Fallback = true
		return summary
	}

	slog.Debug("Analyzing content", "kind", kind, "lines", doc.Stats.Lines)
	return r.analyzers[kind].Analyze(doc)
}

var defaultRegistry = DefaultRegistry()

// Analyze classifies ext and summarizes content with the matching analyzer.
func Analyze(content, ext string) Summary {
	return defaultRegistry.Analyze(content, classify.Classify(ext))
}

// AnalyzeKind summarizes content as an already classified kind.
func AnalyzeKind(content string, kind classify.Kind) Summary {
	return defaultRegistry.Analyze(content, kind)
}

// ratio formats part/whole with one decimal, or "0.0" when whole is zero.
func ratio(part, whole float64) string {
	if whole == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", part/whole)
}
