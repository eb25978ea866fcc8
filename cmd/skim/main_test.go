package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/skim/internal/app"
)

// isolateConfig keeps config files from the developer's machine out of tests.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Chdir(dir)
	return dir
}

// resolve parses flags the way the root command does and builds the config.
func resolve(t *testing.T, flags []string, args []string) (app.Config, error) {
	t.Helper()
	cmd := newRootCmd()
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", flags, err)
	}
	v, err := newViper(cmd)
	if err != nil {
		t.Fatalf("newViper() error = %v", err)
	}
	return buildConfig(v, args)
}

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		env      map[string]string
		expected app.Config
	}{
		{
			name:     "defaults",
			expected: app.Config{Source: "notes.txt", OutputFormat: app.Text},
		},
		{
			name:     "json output with tokens",
			flags:    []string{"--json", "--tokens"},
			expected: app.Config{Source: "notes.txt", OutputFormat: app.JSON, CountTokens: true},
		},
		{
			name:     "markdown output",
			flags:    []string{"--md", "-q"},
			expected: app.Config{Source: "notes.txt", OutputFormat: app.Markdown, Quiet: true},
		},
		{
			name:     "extension override drops the dot",
			flags:    []string{"--as", ".log"},
			expected: app.Config{Source: "notes.txt", OutputFormat: app.Text, Extension: "log"},
		},
		{
			name:     "web page flags",
			flags:    []string{"-s", "article", "-i", "-D"},
			expected: app.Config{Source: "notes.txt", OutputFormat: app.Text, Selector: "article", IncludeAll: true, Debug: true},
		},
		{
			name:     "environment variables",
			env:      map[string]string{"SKIM_JSON": "true", "SKIM_INCLUDE_ALL": "true"},
			expected: app.Config{Source: "notes.txt", OutputFormat: app.JSON, IncludeAll: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			// test output is never a terminal
			flags := append([]string{"--no-color"}, tt.flags...)
			got, err := resolve(t, flags, []string{"notes.txt"})
			if err != nil {
				t.Fatalf("buildConfig() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("buildConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestBuildConfig_UnsupportedOverride(t *testing.T) {
	isolateConfig(t)

	_, err := resolve(t, []string{"--as", "py"}, []string{"main.py"})
	if err == nil {
		t.Fatal("buildConfig() expected error for unsupported type")
	}
	if !strings.Contains(err.Error(), `unsupported type "py"`) {
		t.Errorf("buildConfig() error = %q", err)
	}
}

func TestBuildConfig_ConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	if err := os.WriteFile(filepath.Join(dir, "skim.yaml"), []byte("md: true\ntokens: true\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	got, err := resolve(t, []string{"--no-color"}, []string{"notes.txt"})
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if got.OutputFormat != app.Markdown || !got.CountTokens {
		t.Errorf("buildConfig() = %+v, want markdown output with tokens", got)
	}
}

func TestRootCmd(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("2024-01-01 10:00:00 ERROR boom\n"), 0o600); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	t.Run("summarizes a file", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--no-color", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out.String(), "Type: Log File") {
			t.Errorf("unexpected output:\n%s", out.String())
		}
	})

	t.Run("requires exactly one source", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"a.txt", "b.txt"})

		if err := cmd.Execute(); err == nil {
			t.Error("Execute() expected error for two sources")
		}
	})

	t.Run("format flags are exclusive", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--md", "--json", path})

		if err := cmd.Execute(); err == nil {
			t.Error("Execute() expected error for --md with --json")
		}
	})
}
