// Package cmd provides CLI commands for orcid2vivo.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "orcid2vivo",
	Short: "Crosswalk ORCID profiles to VIVO-ISF triples",
	Long: `orcid2vivo converts ORCID researcher profiles into VIVO-ISF RDF.

Works are enriched from their embedded BibTeX citations and from CrossRef
records looked up by DOI. Output is written as N-Triples, JSON Lines or CSV,
and can be loaded into PostgreSQL.

Examples:
  orcid2vivo crosswalk -i 0000-0003-1527-0030.json -o lw.nt
  orcid2vivo crosswalk profiles/*.json --database-url postgres://localhost/vivo
  orcid2vivo validate -i 0000-0003-1527-0030.json --verbose
  orcid2vivo vocabulary show`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// envOr returns value, or the named environment variable when value is empty.
func envOr(value, env string) string {
	if value != "" {
		return value
	}
	return os.Getenv(env)
}

func init() {
	setupLogger()
	rootCmd.AddCommand(crosswalkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(vocabularyCmd)
	rootCmd.AddCommand(formatsCmd)
}
