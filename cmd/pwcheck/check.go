package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pwcheck/internal/observ"
	"pwcheck/internal/report"
	"pwcheck/internal/strength"
	"pwcheck/internal/trace"
)

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Rate a password without opening the window",
	Long: `Rate a password and print its category, entropy estimate and suggestions.

Without an argument the password is read from a hidden prompt when stdin is
a terminal, otherwise from the first line of stdin. Passing the password as
an argument leaves it in shell history; prefer the prompt.

With --batch every non-empty stdin line is rated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format (text|json|msgpack)")
	checkCmd.Flags().Bool("batch", false, "rate every line of stdin")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for --batch (0=auto)")
	checkCmd.Flags().String("require", "", "fail unless every password rates at least this category (e.g. strong)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	batch, err := cmd.Flags().GetBool("batch")
	if err != nil {
		return fmt.Errorf("failed to get batch flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	requireStr, err := cmd.Flags().GetString("require")
	if err != nil {
		return fmt.Errorf("failed to get require flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	format, err := report.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	var required *strength.Category
	if strings.TrimSpace(requireStr) != "" {
		cat, err := strength.ParseCategory(requireStr)
		if err != nil {
			return fmt.Errorf("invalid --require: %w", err)
		}
		required = &cat
	}
	if batch && len(args) > 0 {
		return errors.New("--batch reads passwords from stdin; do not pass an argument")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	colorOn, err := colorFor(cmd, stdoutFile(cmd))
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	var records []report.Record
	if batch {
		stage := timer.Begin("evaluate")
		records, err = report.EvaluateLines(cmd.Context(), cmd.InOrStdin(), jobs)
		if err != nil {
			return err
		}
		timer.End(stage, fmt.Sprintf("%d records", len(records)))
	} else {
		stage := timer.Begin("read")
		password, err := readPassword(cmd, args)
		if err != nil {
			return err
		}
		timer.End(stage, "")
		stage = timer.Begin("evaluate")
		a := strength.Evaluate(password)
		timer.End(stage, "")
		ctx := cmd.Context()
		trace.Point(trace.FromContext(ctx), trace.ScopeEval, "evaluate", trace.CurrentSpan(ctx), trace.Fields{}.
			Int("length", a.Length).
			Str("category", a.Category.Key()))
		rec, err := report.NewRecord(0, a)
		if err != nil {
			return err
		}
		records = []report.Record{rec}
	}

	stage := timer.Begin("render")
	w := report.NewWriter(cmd.OutOrStdout(), report.Options{
		Format:   format,
		Color:    colorOn,
		Decimals: cfg.UI.Decimals,
		Detailed: !batch,
	})
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if batch {
		if err := w.WriteSummary(report.Summarize(records)); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	timer.End(stage, "")
	if showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if required != nil {
		if rec, below := report.FirstBelow(records, *required); below {
			if rec.Line > 0 {
				return fmt.Errorf("line %d rated %s, below required %s", rec.Line, rec.Category, *required)
			}
			return fmt.Errorf("password rated %s, below required %s", rec.Category, *required)
		}
	}
	return nil
}

// readPassword takes the argument, a hidden prompt on a terminal, or the
// first line of stdin, in that order.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
