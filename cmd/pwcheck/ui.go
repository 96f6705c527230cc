package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pwcheck/internal/trace"
	"pwcheck/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive checker window",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func init() {
	uiCmd.Flags().String("ui", "auto", "checker window mode (auto|on|off)")
}

var errNoTerminal = errors.New("the checker window needs a terminal; use `pwcheck check` to rate passwords non-interactively")

func runUI(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	modeStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(modeStr)
	if err != nil {
		return err
	}
	if !shouldUseTUI(mode) {
		return errNoTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, span := trace.Start(cmd.Context(), trace.ScopeSession, "window")

	model := ui.NewChecker(cfg, ui.Options{
		Clipboard: ui.NewOSC52Clipboard(os.Stderr),
		Tracer:    trace.FromContext(ctx),
		Parent:    span.ID(),
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithOutput(os.Stdout),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		span.Fail(err)
		return fmt.Errorf("checker window: %w", err)
	}
	span.SetInt("evaluations", model.Evaluations()).End("")
	return nil
}
