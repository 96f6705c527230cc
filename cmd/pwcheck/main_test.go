package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default, since cobra keeps
// parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	finishTracing(rootCmd, err)
	return out.String(), errOut.String(), err
}

func TestCheck_Argument(t *testing.T) {
	out, _, err := execute(t, "", "check", "Abcdef12!")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"Strong · 59.1 bits (score 5/6)", "✔ Special character", "meets all criteria"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheck_Stdin(t *testing.T) {
	out, _, err := execute(t, "password\r\nignored\n", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasPrefix(out, "Weak · 37.6 bits") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "Avoid common patterns/words") {
		t.Fatalf("missing warning:\n%s", out)
	}
}

func TestCheck_EmptyStdin(t *testing.T) {
	out, _, err := execute(t, "", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasPrefix(out, "Very Weak · 0.0 bits") || !strings.Contains(out, "minimum length") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestCheck_JSON(t *testing.T) {
	out, _, err := execute(t, "", "check", "--format", "json", "abc")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var rec struct {
		Length      int      `json:"length"`
		Category    string   `json:"category"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if rec.Length != 3 || rec.Category != "Very Weak" || len(rec.Suggestions) != 4 {
		t.Fatalf("record = %+v", rec)
	}
	if strings.Contains(out, `"abc"`) {
		t.Fatalf("json output leaked the password: %s", out)
	}
}

func TestCheck_Batch(t *testing.T) {
	out, _, err := execute(t, "abc\n\nAbcdef12!\npassword\n", "check", "--batch", "--jobs", "2")
	if err != nil {
		t.Fatalf("check --batch: %v", err)
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "line 1: Very Weak") {
		t.Fatalf("first line = %q", lines[0])
	}
	for _, want := range []string{"line 3: Strong", "line 4: Weak", "3 passwords: 1 Very Weak, 1 Weak, 1 Strong"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheck_Require(t *testing.T) {
	_, _, err := execute(t, "", "check", "--require", "strong", "password")
	if err == nil || !strings.Contains(err.Error(), "password rated Weak, below required Strong") {
		t.Fatalf("err = %v", err)
	}
	if _, _, err := execute(t, "", "check", "--require", "strong", "Abcdef12!"); err != nil {
		t.Fatalf("strong password should pass: %v", err)
	}
	_, _, err = execute(t, "Abcdef12!\nabc\n", "check", "--batch", "--require", "moderate")
	if err == nil || !strings.Contains(err.Error(), "line 2 rated Very Weak") {
		t.Fatalf("batch err = %v", err)
	}
	_, _, err = execute(t, "        \n", "check", "--batch", "--require", "strong")
	if err == nil || !strings.Contains(err.Error(), "line 1 rated Weak, below required Strong") {
		t.Fatalf("whitespace line err = %v", err)
	}
}

func TestCheck_InvalidFlags(t *testing.T) {
	cases := [][]string{
		{"check", "--format", "yaml", "x"},
		{"check", "--require", "mediocre", "x"},
		{"check", "--batch", "x"},
		{"--color", "sometimes", "check", "x"},
		{"check", "--trace-level", "loud", "x"},
	}
	for _, args := range cases {
		if _, _, err := execute(t, "", args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestCheck_ConfigDecimals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pwcheck.toml")
	if err := os.WriteFile(path, []byte("[ui]\ndecimals = 3\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, _, err := execute(t, "", "--config", path, "check", "password")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasPrefix(out, "Weak · 37.604 bits") {
		t.Fatalf("output:\n%s", out)
	}

	bad := filepath.Join(t.TempDir(), "pwcheck.toml")
	if err := os.WriteFile(bad, []byte("[ui]\nmood = 1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := execute(t, "", "--config", bad, "check", "x"); err == nil {
		t.Fatalf("unknown config key should fail")
	}
}

func TestCheck_TraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.ndjson")
	if _, _, err := execute(t, "", "--trace", path, "--trace-level", "debug", "check", "hunter2"); err != nil {
		t.Fatalf("check: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"name":"check"`) || !strings.Contains(out, `"name":"evaluate"`) {
		t.Fatalf("trace:\n%s", out)
	}
	if strings.Contains(out, "hunter2") {
		t.Fatalf("trace leaked the password:\n%s", out)
	}
}

func TestCheck_RingDumpOnFailure(t *testing.T) {
	_, errOut, err := execute(t, "", "--trace-mode", "ring", "--trace-level", "info", "check", "--require", "very-strong", "abc")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(errOut, "trace: last events before failure:") || !strings.Contains(errOut, "→ check") {
		t.Fatalf("stderr:\n%s", errOut)
	}
}

func TestUI_RequiresTerminal(t *testing.T) {
	_, _, err := execute(t, "", "ui", "--ui", "off")
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("err = %v, want errNoTerminal", err)
	}
	if _, _, err := execute(t, "", "ui", "--ui", "maybe"); err == nil {
		t.Fatalf("invalid --ui value should fail")
	}
}

func TestVersion_JSON(t *testing.T) {
	out, _, err := execute(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Tool != "pwcheck" || payload.Version == "" || payload.GitCommit == "" || payload.BuildDate == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestVersion_Pretty(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "pwcheck ") || !strings.Contains(out, versionTagline) {
		t.Fatalf("output = %q", out)
	}
	if _, _, err := execute(t, "", "version", "--format", "xml"); err == nil {
		t.Fatalf("unsupported format should fail")
	}
}

func TestReadModes(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	for in, want := range map[string]colorMode{"auto": colorAuto, "always": colorOn, "never": colorOff} {
		got, err := readColorMode(in)
		if err != nil || got != want {
			t.Fatalf("readColorMode(%q) = %q, %v", in, got, err)
		}
	}
	if useColor(colorOn, nil) != true || useColor(colorOff, os.Stdout) != false {
		t.Fatalf("explicit color modes ignored")
	}
	if useColor(colorAuto, nil) {
		t.Fatalf("auto color without a file should be off")
	}
}

func TestCheck_Timings(t *testing.T) {
	_, errOut, err := execute(t, "abc\npassword\n", "--timings", "check", "--batch")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"timings:", "evaluate", "// 2 records", "render", "total"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}
