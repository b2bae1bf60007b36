package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

// Set via -ldflags at release time.
var (
	buildVersion = "dev"
	buildCommit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Benchmark persistent vector workloads across memory policies",
	Long: `vecbench runs persistent and transient vector workloads under each
of the available memory policies and reports timings alongside the
allocation counters the policies collect. It is the quickest way to see
what batching edits through a transient buys on a given workload.`,
	Version: buildVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// initLogger wires the global slog logger to stderr in verbose mode and
// discards everything otherwise.
func initLogger() {
	out := io.Discard
	level := slog.LevelInfo
	if verbose && !quiet {
		out = os.Stderr
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.SetVersionTemplate(fmt.Sprintf("vecbench {{.Version}} (commit %s)\n", buildCommit))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
