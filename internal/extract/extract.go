// Package extract converts fetched web pages to Markdown so they can be
// summarized as Markdown documents.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Options controls which part of a page is converted.
type Options struct {
	Selector   string   // CSS selector; takes precedence over IncludeAll
	IncludeAll bool     // convert the whole page instead of the main article
	BaseURL    *url.URL // page location for readability scoring (may be nil)
}

// ToMarkdown converts HTML read from content to Markdown.
//
// By default go-readability picks out the main article. A Selector narrows
// the page to the matching elements instead, and IncludeAll converts the
// page as-is. Headings use "#" and code blocks are fenced, so the result
// reads like hand-written Markdown.
func ToMarkdown(content io.Reader, opts Options) (string, error) {
	html, err := selectHTML(content, opts)
	if err != nil {
		return "", err
	}

	markdown, err := newConverter().ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	markdown = strings.TrimSpace(markdown)
	for strings.Contains(markdown, "\n\n\n") {
		markdown = strings.ReplaceAll(markdown, "\n\n\n", "\n\n")
	}

	slog.Debug("Converted HTML to Markdown", "htmlLength", len(html), "markdownLength", len(markdown))
	return markdown, nil
}

// newConverter builds a converter that emits ATX headings and fenced code.
func newConverter() *md.Converter {
	return md.NewConverter("", true, &md.Options{
		HeadingStyle:   "atx",
		CodeBlockStyle: "fenced",
		Fence:          "```",
	})
}

// selectHTML returns the part of the page to convert.
func selectHTML(content io.Reader, opts Options) (string, error) {
	switch {
	case opts.Selector != "":
		return selectElements(content, opts.Selector)
	case opts.IncludeAll:
		data, err := io.ReadAll(content)
		if err != nil {
			return "", fmt.Errorf("failed to read HTML content: %w", err)
		}
		return string(data), nil
	default:
		return mainContent(content, opts.BaseURL)
	}
}

// mainContent uses go-readability to extract the main article
func mainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	slog.Debug("Extracted main content", "title", article.Title, "length", article.Length)
	return article.Content, nil
}

// selectElements keeps only the elements matching selector, each wrapped in
// its own tag so block structure survives conversion.
func selectElements(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		inner, err := s.Html()
		if err != nil {
			return
		}
		tag := goquery.NodeName(s)
		parts = append(parts, fmt.Sprintf("<%s>%s</%s>", tag, inner, tag))
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return strings.Join(parts, "\n"), nil
}
