package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if strings.Contains(Version, "\x1b[") {
		t.Errorf("Version must be plain text, got %q", Version)
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate
	}()

	// simulating build-time ldflags
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}

func TestPretty(t *testing.T) {
	cases := []struct {
		in      string
		colored bool
		plain   string
	}{
		{"0.1.0-dev", false, "0.1.0-dev"},
		{"0.1.0-dev", true, "0.1.0-dev"},
		{"1.2.3", true, "1.2.3"},
		{"1.2.3-rc.1+build.123", true, "1.2.3-rc.1+build.123"},
		{"nightly", true, "nightly"},
	}
	for _, tc := range cases {
		got := Pretty(tc.in, tc.colored)
		if stripped := stripANSI(got); stripped != tc.plain {
			t.Errorf("Pretty(%q, %v) = %q, want %q after stripping", tc.in, tc.colored, stripped, tc.plain)
		}
	}
	if got := Pretty("1.2.3", true); !strings.Contains(got, "\x1b[") {
		t.Errorf("colored Pretty should contain escapes, got %q", got)
	}
	if got := Pretty("1.2.3", false); got != "1.2.3" {
		t.Errorf("uncolored Pretty = %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func BenchmarkPretty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Pretty("1.2.3-dev", true)
	}
}
