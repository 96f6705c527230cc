// Package report renders assessments outside the checker window and
// evaluates password lists in bulk.
package report

import (
	"fmt"

	"fortio.org/safecast"

	"pwcheck/internal/strength"
)

// Record is the serializable form of an assessment. It never holds the
// password itself.
type Record struct {
	Line        int      `json:"line,omitempty" msgpack:"line,omitempty"`
	Length      uint32   `json:"length" msgpack:"length"`
	HasLower    bool     `json:"has_lower" msgpack:"has_lower"`
	HasUpper    bool     `json:"has_upper" msgpack:"has_upper"`
	HasDigit    bool     `json:"has_digit" msgpack:"has_digit"`
	HasSpecial  bool     `json:"has_special" msgpack:"has_special"`
	PoolSize    uint8    `json:"pool_size" msgpack:"pool_size"`
	EntropyBits float64  `json:"entropy_bits" msgpack:"entropy_bits"`
	Score       uint8    `json:"score" msgpack:"score"`
	Category    string   `json:"category" msgpack:"category"`
	Suggestions []string `json:"suggestions" msgpack:"suggestions"`
	Warnings    []string `json:"warnings,omitempty" msgpack:"warnings,omitempty"`
}

// NewRecord converts a. line is the 1-based input line, 0 for single checks.
func NewRecord(line int, a strength.Assessment) (Record, error) {
	length, err := safecast.Conv[uint32](a.Length)
	if err != nil {
		return Record{}, fmt.Errorf("length %d: %w", a.Length, err)
	}
	pool, err := safecast.Conv[uint8](a.PoolSize)
	if err != nil {
		return Record{}, fmt.Errorf("pool size %d: %w", a.PoolSize, err)
	}
	score, err := safecast.Conv[uint8](a.Score)
	if err != nil {
		return Record{}, fmt.Errorf("score %d: %w", a.Score, err)
	}
	suggestions := a.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return Record{
		Line:        line,
		Length:      length,
		HasLower:    a.HasLower,
		HasUpper:    a.HasUpper,
		HasDigit:    a.HasDigit,
		HasSpecial:  a.HasSpecial,
		PoolSize:    pool,
		EntropyBits: a.EntropyBits,
		Score:       score,
		Category:    a.Category.String(),
		Suggestions: suggestions,
		Warnings:    a.Warnings,
	}, nil
}

// Level parses Category back into a strength.Category.
func (r Record) Level() (strength.Category, error) {
	return strength.ParseCategory(r.Category)
}

type checkItem struct {
	label string
	ok    bool
}

func (r Record) checklist() []checkItem {
	return []checkItem{
		{strength.CriterionLength.Label(), r.Length >= strength.MinLength},
		{strength.CriterionLower.Label(), r.HasLower},
		{strength.CriterionUpper.Label(), r.HasUpper},
		{strength.CriterionDigit.Label(), r.HasDigit},
		{strength.CriterionSpecial.Label(), r.HasSpecial},
	}
}

// Summary counts records per category.
type Summary struct {
	Total  int
	Counts map[strength.Category]int
}

// Summarize builds a Summary over records.
func Summarize(records []Record) Summary {
	s := Summary{Counts: make(map[strength.Category]int, len(strength.Categories))}
	for _, rec := range records {
		cat, err := rec.Level()
		if err != nil {
			continue
		}
		s.Total++
		s.Counts[cat]++
	}
	return s
}

// FirstBelow returns the first record whose category is below floor.
func FirstBelow(records []Record, floor strength.Category) (Record, bool) {
	for _, rec := range records {
		cat, err := rec.Level()
		if err != nil || cat < floor {
			return rec, true
		}
	}
	return Record{}, false
}
