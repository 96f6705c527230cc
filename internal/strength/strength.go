// Package strength rates passwords using character-class and length
// heuristics plus a pool-size entropy estimate.
//
// Evaluate is pure: the same input always produces the same Assessment,
// and the input is never retained.
package strength

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Character pool sizes used by the entropy estimate.
const (
	LowerPoolSize  = 26
	UpperPoolSize  = 26
	DigitPoolSize  = 10
	SymbolPoolSize = 33 // printable ASCII punctuation plus space
)

// Length thresholds.
const (
	MinLength   = 8
	BonusLength = 12
)

// MaxScore is the highest score Evaluate can produce.
const MaxScore = 6

// Assessment is the result of a single evaluation.
type Assessment struct {
	Length      int
	HasLower    bool
	HasUpper    bool
	HasDigit    bool
	HasSpecial  bool
	PoolSize    int
	EntropyBits float64
	Score       int
	Category    Category
	Suggestions []string
	Warnings    []string
}

// Evaluate scores password. It never fails; empty input yields a
// Very Weak assessment with zero entropy.
func Evaluate(password string) Assessment {
	pw := norm.NFC.String(password)

	var a Assessment
	for _, r := range pw {
		a.Length++
		switch {
		case r >= 'a' && r <= 'z':
			a.HasLower = true
		case r >= 'A' && r <= 'Z':
			a.HasUpper = true
		case r >= '0' && r <= '9':
			a.HasDigit = true
		default:
			a.HasSpecial = true
		}
	}

	a.PoolSize = poolSize(a)
	a.Score = score(a)
	a.Category = categoryForScore(a.Score)
	if a.Length > 0 {
		a.EntropyBits = float64(a.Length) * math.Log2(float64(a.PoolSize))
	} else {
		a.Category = VeryWeak
	}
	a.Suggestions = suggestions(a)
	a.Warnings = warnings(pw)
	return a
}

func poolSize(a Assessment) int {
	n := 0
	if a.HasLower {
		n += LowerPoolSize
	}
	if a.HasUpper {
		n += UpperPoolSize
	}
	if a.HasDigit {
		n += DigitPoolSize
	}
	if a.HasSpecial {
		n += SymbolPoolSize
	}
	return n
}

func score(a Assessment) int {
	s := 0
	for _, c := range a.Criteria() {
		if c.Satisfied {
			s++
		}
	}
	if a.Length >= BonusLength {
		s++
	}
	return s
}

func suggestions(a Assessment) []string {
	out := make([]string, 0, len(criteria))
	for _, c := range a.Criteria() {
		if !c.Satisfied {
			out = append(out, c.Criterion.Suggestion())
		}
	}
	return out
}
