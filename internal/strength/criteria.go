package strength

import "strconv"

// Criterion is one scored requirement.
type Criterion uint8

const (
	CriterionLength Criterion = iota
	CriterionLower
	CriterionUpper
	CriterionDigit
	CriterionSpecial
)

// criteria is the fixed priority order for checklists and suggestions.
var criteria = []Criterion{
	CriterionLength,
	CriterionLower,
	CriterionUpper,
	CriterionDigit,
	CriterionSpecial,
}

// Label returns the checklist caption.
func (c Criterion) Label() string {
	switch c {
	case CriterionLength:
		return "Length ≥ " + strconv.Itoa(MinLength)
	case CriterionLower:
		return "Lowercase letter (a–z)"
	case CriterionUpper:
		return "Uppercase letter (A–Z)"
	case CriterionDigit:
		return "Number (0–9)"
	case CriterionSpecial:
		return "Special character (!@#...)"
	default:
		return "unknown"
	}
}

// Suggestion returns the hint shown when the criterion fails.
func (c Criterion) Suggestion() string {
	switch c {
	case CriterionLength:
		return "Use at least " + strconv.Itoa(MinLength) + " characters (minimum length)"
	case CriterionLower:
		return "Add lowercase letters (a–z)"
	case CriterionUpper:
		return "Add uppercase letters (A–Z)"
	case CriterionDigit:
		return "Add numbers (0–9)"
	case CriterionSpecial:
		return "Add special characters (!@#...)"
	default:
		return ""
	}
}

// CriterionResult pairs a criterion with its outcome.
type CriterionResult struct {
	Criterion Criterion
	Satisfied bool
}

// Criteria returns the checklist in fixed order.
func (a Assessment) Criteria() []CriterionResult {
	out := make([]CriterionResult, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, CriterionResult{Criterion: c, Satisfied: a.satisfies(c)})
	}
	return out
}

func (a Assessment) satisfies(c Criterion) bool {
	switch c {
	case CriterionLength:
		return a.Length >= MinLength
	case CriterionLower:
		return a.HasLower
	case CriterionUpper:
		return a.HasUpper
	case CriterionDigit:
		return a.HasDigit
	case CriterionSpecial:
		return a.HasSpecial
	default:
		return false
	}
}

// Fraction returns Score as a 0..1 fill ratio.
func (a Assessment) Fraction() float64 {
	return float64(a.Score) / float64(MaxScore)
}
