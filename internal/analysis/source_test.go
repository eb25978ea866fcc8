package analysis

import (
	"strings"
	"testing"

	"github.com/chriscorrea/skim/internal/classify"
	"github.com/stretchr/testify/assert"
)

func TestSourceAnalyzer(t *testing.T) {
	s := AnalyzeKind("fn foo() {}\nstruct Bar;\n// note\nTODO fix", classify.SourceCode)

	assert.Equal(t, classify.SourceCode, s.Kind)
	assert.Equal(t, 4, s.Lines)
	assert.Equal(t, []string{
		"Functions (1): foo",
		"Structs: Bar;",
		"TODOs/FIXMEs found: 1",
	}, s.Insights)
	assert.Equal(t, "1", stat(t, s, "functions"))
	assert.Equal(t, "1", stat(t, s, "structs"))
	assert.Equal(t, "0", stat(t, s, "enums"))
	assert.Equal(t, "0", stat(t, s, "imports"))
	assert.Equal(t, "25.0%", stat(t, s, "comment_ratio"))
	assert.Equal(t, []string{"functions", "structs", "enums", "imports", "comment_ratio"}, s.Statistics.Keys())
}

func TestSourceAnalyzerDeclarations(t *testing.T) {
	content := strings.Join([]string{
		"use std::io;",
		"use std::fmt::Display;",
		"",
		"/* block */",
		"pub struct Config {",
		"struct Point { x: i32 }",
		"enum Shape {",
		"pub fn new() -> Self {",
		"    fn helper(x: i32) {",
		"async fn fetch (url: &str) {",
		"fn broken",
		"impl X { pub fn a() {} }",
		"// FIXME later",
		"fn six() {}",
		"fn seven() {}",
	}, "\n")

	s := AnalyzeKind(content, classify.SourceCode)

	assert.Equal(t, []string{
		"Functions (6): new, helper, fetch, a, six",
		"Structs: Point",
		"Enums: Shape",
		"TODOs/FIXMEs found: 1",
	}, s.Insights)
	assert.Equal(t, "6", stat(t, s, "functions"))
	assert.Equal(t, "1", stat(t, s, "structs"))
	assert.Equal(t, "1", stat(t, s, "enums"))
	assert.Equal(t, "2", stat(t, s, "imports"))
	assert.Equal(t, "13.3%", stat(t, s, "comment_ratio"))
}

func TestSourceAnalyzerEmpty(t *testing.T) {
	s := AnalyzeKind("", classify.SourceCode)

	assert.Empty(t, s.Insights)
	assert.Equal(t, "0.0%", stat(t, s, "comment_ratio"))
	assert.Equal(t, "0", stat(t, s, "functions"))
}

func TestSourceAnalyzerTodoCaseInsensitive(t *testing.T) {
	s := AnalyzeKind("// todo: tidy\nlet x = 1; // fixme\nlet y = 2;", classify.SourceCode)

	assert.Equal(t, []string{"TODOs/FIXMEs found: 2"}, s.Insights)
	// only the first line starts with a comment marker
	assert.Equal(t, "33.3%", stat(t, s, "comment_ratio"))
}

func TestFunctionName(t *testing.T) {
	tests := []struct {
		line string
		name string
		ok   bool
	}{
		{"fn main() {", "main", true},
		{"pub(crate) fn run<T>(x: T)", "run<T>", true},
		{"fn spaced  (x)", "spaced", true},
		{"fn nothing", "", false},
		{"no function here", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, ok := functionName(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}
