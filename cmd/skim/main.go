package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/chriscorrea/skim/internal/app"
	"github.com/chriscorrea/skim/internal/classify"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newViper layers flags over SKIM_* environment variables and an optional
// skim.yaml config file.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	v.SetEnvPrefix("SKIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("skim")
	v.SetConfigType("yaml")
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		v.AddConfigPath(filepath.Join(dir, "skim"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "skim"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// buildConfig constructs an app.Config from resolved settings and arguments
func buildConfig(v *viper.Viper, args []string) (app.Config, error) {
	// determine output format
	var outputFormat app.OutputFormat
	switch {
	case v.GetBool("json"):
		outputFormat = app.JSON
	case v.GetBool("md"):
		outputFormat = app.Markdown
	default:
		outputFormat = app.Text // default if no format flag
	}

	ext := strings.TrimPrefix(v.GetString("as"), ".")
	if ext != "" && classify.Classify(ext) == classify.Unknown {
		return app.Config{}, fmt.Errorf("unsupported type %q for --as (supported: %s)",
			ext, strings.Join(classify.Supported(), ", "))
	}

	styled, width := false, 0
	if !v.GetBool("no-color") {
		styled, width = app.TerminalInfo(int(os.Stdout.Fd()))
	}

	return app.Config{
		Source:       args[0],
		Extension:    ext,
		OutputFormat: outputFormat,
		CountTokens:  v.GetBool("tokens"),
		Selector:     v.GetString("selector"),
		IncludeAll:   v.GetBool("include-all"),
		Styled:       styled,
		Width:        width,
		Quiet:        v.GetBool("quiet"),
		Debug:        v.GetBool("debug"),
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skim <source>",
		Short: "A CLI tool for summarizing file content",
		Long: `Skim is a command-line tool that reads one source and prints a summary of it: line, word and character counts plus insights for the kind of content.

Supported types are chosen by extension:
  .txt  plain text (most frequent words)
  .md   markdown (document structure, links, images, code blocks)
  .log  log files (levels, time range, sample errors)
  .rs   Rust source (functions, structs, enums, TODOs)
Anything else is analyzed as plain text. Web pages are converted to markdown first.

Examples:
  skim notes.txt
  skim --json server.log
  cat output.txt | skim --as log -
  skim https://example.com`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid; later failures are not usage errors
			cmd.SilenceUsage = true

			v, err := newViper(cmd)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			// build config from flags and arguments
			config, err := buildConfig(v, args)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			// configure logging pending debug flag
			setupLogger(config.Debug)

			// create context with signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, config)
			if err != nil {
				return fmt.Errorf("skim failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	// output format flags are mutually exclusive
	cmd.Flags().Bool("text", false, "Output in plain text format (default)")
	cmd.Flags().Bool("md", false, "Output in Markdown format")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.MarkFlagsMutuallyExclusive("text", "md", "json")

	cmd.Flags().String("as", "", "Analyze the source as this type (txt, md, log, rs)")
	cmd.Flags().Bool("tokens", false, "Also report the token count")

	// web page flags
	cmd.Flags().StringP("selector", "s", "", "CSS selector for web pages")
	cmd.Flags().BoolP("include-all", "i", false, "Include all page content without readability filtering")

	// other flags
	cmd.Flags().Bool("no-color", false, "Disable styled terminal output")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress warning messages")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")

	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
