package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"pwcheck/internal/strength"
)

// Format selects the output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat converts a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack:
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be text, json or msgpack)", s)
	}
}

// Options configure a Writer.
type Options struct {
	Format   Format
	Color    bool
	Decimals int
	// Detailed adds the criteria checklist to text output.
	Detailed bool
}

// Writer encodes records to an io.Writer.
type Writer struct {
	out     io.Writer
	opts    Options
	jsonEnc *json.Encoder
	mpEnc   *msgpack.Encoder
	palette map[strength.Category]*color.Color
	okC     *color.Color
	failC   *color.Color
	dimC    *color.Color
}

// NewWriter returns a Writer for out.
func NewWriter(out io.Writer, opts Options) *Writer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	w := &Writer{
		out:  out,
		opts: opts,
		palette: map[strength.Category]*color.Color{
			strength.VeryWeak:   color.New(color.FgRed, color.Bold),
			strength.Weak:       color.New(color.FgHiRed, color.Bold),
			strength.Moderate:   color.New(color.FgYellow, color.Bold),
			strength.Strong:     color.New(color.FgHiGreen, color.Bold),
			strength.VeryStrong: color.New(color.FgGreen, color.Bold),
		},
		okC:   color.New(color.FgGreen),
		failC: color.New(color.FgRed),
		dimC:  color.New(color.Faint),
	}
	for _, c := range w.colors() {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	switch opts.Format {
	case FormatJSON:
		w.jsonEnc = json.NewEncoder(out)
	case FormatMsgpack:
		w.mpEnc = msgpack.NewEncoder(out)
	}
	return w
}

func (w *Writer) colors() []*color.Color {
	out := []*color.Color{w.okC, w.failC, w.dimC}
	for _, c := range w.palette {
		out = append(out, c)
	}
	return out
}

// Write encodes one record.
func (w *Writer) Write(rec Record) error {
	switch w.opts.Format {
	case FormatJSON:
		return w.jsonEnc.Encode(rec)
	case FormatMsgpack:
		return w.mpEnc.Encode(rec)
	default:
		return w.writeText(rec)
	}
}

// WriteAll encodes records in order.
func (w *Writer) WriteAll(records []Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Headline renders "<Category> · <bits> bits", the label shared with the
// checker window.
func Headline(category string, bits float64, decimals int) string {
	return category + " · " + strconv.FormatFloat(bits, 'f', decimals, 64) + " bits"
}

func (w *Writer) writeText(rec Record) error {
	var b strings.Builder
	if rec.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", rec.Line)
	}
	cat, err := rec.Level()
	label := rec.Category
	if err == nil {
		label = w.palette[cat].Sprint(rec.Category)
	}
	b.WriteString(Headline(label, rec.EntropyBits, w.opts.Decimals))
	b.WriteString(w.dimC.Sprintf(" (score %d/%d)", rec.Score, strength.MaxScore))
	b.WriteString("\n")

	if w.opts.Detailed {
		for _, item := range rec.checklist() {
			mark := w.failC.Sprint("✖")
			if item.ok {
				mark = w.okC.Sprint("✔")
			}
			b.WriteString("  " + mark + " " + item.label + "\n")
		}
		if len(rec.Suggestions) == 0 {
			b.WriteString("  Great! The password meets all criteria.\n")
		} else {
			b.WriteString("  Suggestions:\n")
		}
	}
	for _, s := range rec.Suggestions {
		b.WriteString("  - " + s + "\n")
	}
	for _, warn := range rec.Warnings {
		b.WriteString("  ! " + warn + "\n")
	}
	_, err = io.WriteString(w.out, b.String())
	return err
}

// WriteSummary prints per-category totals. Only text output has a summary.
func (w *Writer) WriteSummary(s Summary) error {
	if w.opts.Format != FormatText || s.Total == 0 {
		return nil
	}
	parts := make([]string, 0, len(strength.Categories))
	for _, cat := range strength.Categories {
		if n := s.Counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, w.palette[cat].Sprint(cat.String())))
		}
	}
	noun := "passwords"
	if s.Total == 1 {
		noun = "password"
	}
	_, err := fmt.Fprintf(w.out, "%d %s: %s\n", s.Total, noun, strings.Join(parts, ", "))
	return err
}
