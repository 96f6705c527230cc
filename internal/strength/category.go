package strength

import (
	"fmt"
	"strings"
)

// Category is the discrete strength label derived from the score.
// Lower numeric values are weaker.
type Category uint8

const (
	VeryWeak Category = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// Categories lists every category from weakest to strongest.
var Categories = []Category{VeryWeak, Weak, Moderate, Strong, VeryStrong}

// String returns the human-readable label of the category.
func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "unknown"
	}
}

// Key returns the snake_case identifier used in config files and
// machine-readable output.
func (c Category) Key() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "_")
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c <= VeryStrong
}

// ParseCategory converts a label such as "very-strong", "Very Strong" or
// "very_strong" to a Category.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	switch norm {
	case "veryweak":
		return VeryWeak, nil
	case "weak":
		return Weak, nil
	case "moderate":
		return Moderate, nil
	case "strong":
		return Strong, nil
	case "verystrong":
		return VeryStrong, nil
	default:
		return VeryWeak, fmt.Errorf("invalid category: %q (expected: very-weak|weak|moderate|strong|very-strong)", s)
	}
}

// categoryForScore maps a point score to its category.
//
//	0-1 Very Weak, 2 Weak, 3 Moderate, 4-5 Strong, 6 Very Strong
func categoryForScore(score int) Category {
	switch {
	case score <= 1:
		return VeryWeak
	case score == 2:
		return Weak
	case score == 3:
		return Moderate
	case score <= 5:
		return Strong
	default:
		return VeryStrong
	}
}
