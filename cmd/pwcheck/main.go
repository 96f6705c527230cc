package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pwcheck/internal/trace"
	"pwcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pwcheck",
	Short: "Password strength checker",
	Long: `pwcheck rates password strength from character classes and length,
estimates entropy and suggests improvements. Without a subcommand it opens
the interactive checker window.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
	RunE:              runUI,
}

// init registers subcommands and persistent flags.
func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to pwcheck.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|info|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Int("trace-ring-size", trace.DefaultRingSize, "events kept in ring mode")
	rootCmd.Flags().String("ui", "auto", "checker window mode (auto|on|off)")
}

// main executes the root command and exits with status 1 on failure.
func main() {
	err := rootCmd.Execute()
	finishTracing(rootCmd, err)
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
