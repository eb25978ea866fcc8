// Package app contains the core application logic for the skim CLI tool.
// It handles reading a source, summarizing it and rendering the summary,
// separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/chriscorrea/skim/internal/analysis"
	"github.com/chriscorrea/skim/internal/classify"
	"github.com/chriscorrea/skim/internal/counter"
	"github.com/chriscorrea/skim/internal/extract"
	"github.com/chriscorrea/skim/internal/fetch"
	"github.com/chriscorrea/skim/internal/render"
	"github.com/chriscorrea/skim/internal/spinner"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// plain text output format (default)
	Text OutputFormat = iota
	// markdown output format
	Markdown
	// JSON output format
	JSON
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Markdown:
		return "Markdown"
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Config holds all configuration options for the skim application.
type Config struct {
	Source       string       // file path, URL, or "-" for stdin
	Extension    string       // overrides the extension taken from Source when set
	OutputFormat OutputFormat // output format (txt/md/json)
	CountTokens  bool         // also report the cl100k_base token count
	Selector     string       // CSS selector for web pages
	IncludeAll   bool         // convert whole web pages without readability filtering
	Styled       bool         // style output for a terminal
	Width        int          // terminal width for styled markdown (default 80)
	Quiet        bool         // suppress info messages
	Debug        bool
}

// Run executes the main skim application logic with the given configuration.
//
// Processing Pipeline:
// 1. Load the source content and its extension hint (loadSource)
// 2. Summarize the content with the analyzer for its kind
// 3. Render the summary in the configured format
//
// ctx allows for cancellation and timeout control of URL fetches.
func Run(ctx context.Context, cfg Config) (string, error) {
	if cfg.Source == "" {
		return "", fmt.Errorf("no source provided")
	}

	content, ext, err := loadSource(ctx, cfg)
	if err != nil {
		return "", err
	}
	if cfg.Extension != "" {
		ext = cfg.Extension
	}
	if content == "" && !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: %s is empty\n", displayName(cfg.Source))
	}

	report := render.Report{
		Source:  displayName(cfg.Source),
		Summary: analysis.Analyze(content, ext),
	}
	slog.Debug("Summarized source", "source", cfg.Source, "extension", ext, "kind", report.Summary.Kind, "fallback", report.Summary.Fallback)

	if cfg.CountTokens {
		tokens, err := counter.NewTokenCounter()
		if err != nil {
			return "", fmt.Errorf("failed to count tokens: %w", err)
		}
		report.Tokens = tokens.Count(content)
		report.ShowTokens = true
		slog.Debug("Counted tokens", "counter", tokens.Name(), "count", report.Tokens)
	}

	return renderReport(report, cfg)
}

// loadSource reads the source content and the extension hint that classifies it.
//
// URLs whose path has a recognized extension are read as-is; any other URL is
// taken to be a web page and converted to Markdown first.
func loadSource(ctx context.Context, cfg Config) (string, string, error) {
	ext := classify.Extension(cfg.Source)

	if !fetch.IsURL(cfg.Source) || classify.Classify(ext) != classify.Unknown {
		content, err := fetch.Read(ctx, cfg.Source)
		if err != nil {
			return "", "", fmt.Errorf("failed to read source: %w", err)
		}
		return content, ext, nil
	}

	if !cfg.Quiet {
		progress := spinner.Start(ctx, os.Stderr, "Fetching "+cfg.Source)
		defer progress.Stop()
	}

	reader, err := fetch.GetContent(ctx, cfg.Source)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch content: %w", err)
	}
	defer reader.Close()

	baseURL, _ := url.Parse(cfg.Source) // nil on error is fine for extraction
	markdown, err := extract.ToMarkdown(reader, extract.Options{
		Selector:   cfg.Selector,
		IncludeAll: cfg.IncludeAll,
		BaseURL:    baseURL,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to extract content: %w", err)
	}

	return markdown, "md", nil
}

// renderReport formats the report according to cfg.
func renderReport(report render.Report, cfg Config) (string, error) {
	switch cfg.OutputFormat {
	case JSON:
		return render.JSON(report)
	case Markdown:
		if !cfg.Styled {
			return render.Markdown(report), nil
		}
		width := cfg.Width
		if width <= 0 {
			width = 80
		}
		out, err := render.MarkdownTerminal(report, width)
		if err != nil {
			// plain markdown is still readable
			slog.Debug("Falling back to plain markdown", "error", err)
			return render.Markdown(report), nil
		}
		return out, nil
	default:
		return render.Text(report, cfg.Styled), nil
	}
}

// displayName is the source name shown in summaries.
func displayName(source string) string {
	if source == "-" {
		return "stdin"
	}
	return source
}
