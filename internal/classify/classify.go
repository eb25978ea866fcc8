// Package classify maps a source's file extension to the kind of content it
// holds. The kind decides which analyzer summarizes the content.
//
// Classification is a fixed, case-sensitive table lookup: it never fails, and
// anything outside the table (including a missing extension) is Unknown.
package classify

import (
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Kind is the closed set of content kinds a source can be classified as.
type Kind int

const (
	// Unknown covers every extension outside the table
	Unknown Kind = iota
	// PlainText is .txt
	PlainText
	// Markdown is .md
	Markdown
	// Log is .log
	Log
	// SourceCode is .rs
	SourceCode
)

// extensions is the classification table; keys carry no leading dot
var extensions = map[string]Kind{
	"txt": PlainText,
	"md":  Markdown,
	"log": Log,
	"rs":  SourceCode,
}

// String returns the identifier used in logs and JSON output.
func (k Kind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Markdown:
		return "markdown"
	case Log:
		return "log"
	case SourceCode:
		return "source"
	default:
		return "unknown"
	}
}

// Label returns the human-readable type name shown in summaries.
func (k Kind) Label() string {
	switch k {
	case PlainText:
		return "Plain Text"
	case Markdown:
		return "Markdown"
	case Log:
		return "Log File"
	case SourceCode:
		return "Rust Source Code"
	default:
		return "Unknown"
	}
}

// Classify returns the Kind for an extension hint such as "md" or ".md".
// Matching is exact and case-sensitive: "MD" is Unknown.
func Classify(ext string) Kind {
	ext = strings.TrimPrefix(ext, ".")
	kind, ok := extensions[ext]
	if !ok {
		kind = Unknown
	}

	slog.Debug("Classified extension", "extension", ext, "kind", kind)
	return kind
}

// Extension returns the extension hint (without the dot) for a file path or
// http(s) URL, or "" when there is none.
func Extension(source string) string {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		u, err := url.Parse(source)
		if err != nil {
			return ""
		}
		return extensionOf(path.Base(u.Path))
	}

	return extensionOf(filepath.Base(source))
}

// extensionOf treats a leading dot as part of the name, so ".md" has none.
func extensionOf(base string) string {
	ext := path.Ext(base)
	if ext == base {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// Supported lists the extensions that map to a known kind, in a stable order
// suitable for help text.
func Supported() []string {
	return []string{"txt", "md", "log", "rs"}
}
