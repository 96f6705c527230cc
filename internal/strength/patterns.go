package strength

import (
	"strings"
	"unicode/utf8"
)

const (
	WarnRepeat = "Avoid repeating the same character 3+ times"
	WarnCommon = "Avoid common patterns/words"
)

// commonPatterns are matched case-insensitively anywhere in the input.
var commonPatterns = []string{"password", "qwerty", "abc", "1234"}

// warnings reports weak patterns. They are advisory and do not affect
// the score.
func warnings(pw string) []string {
	var out []string
	if hasRun(pw, 3) {
		out = append(out, WarnRepeat)
	}
	lower := strings.ToLower(pw)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			out = append(out, WarnCommon)
			break
		}
	}
	return out
}

// hasRun reports whether some character occurs n or more times
// consecutively. Invalid bytes compare by byte value, not as U+FFFD.
func hasRun(s string, n int) bool {
	var prev rune
	count := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -rune(s[i]) - 1
		}
		if i > 0 && r == prev {
			count++
		} else {
			count = 1
		}
		if count >= n {
			return true
		}
		prev = r
		i += size
	}
	return false
}
