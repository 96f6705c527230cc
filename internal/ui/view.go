package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pwcheck/internal/report"
	"pwcheck/internal/strength"
)

const (
	idleHint  = "Type a password to see feedback and suggestions here."
	greatHint = "Great! Your password meets all criteria."
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#1b5e20"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#b71c1c"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m *Checker) View() string {
	if m.quitting {
		return ""
	}
	a := m.assessment
	color := m.cfg.Color(a.Category)
	textWidth := max(m.width-4, 20)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Strength Checker"))
	b.WriteString("\n\n")

	b.WriteString("Enter password:")
	if m.shown {
		b.WriteString(dimStyle.Render("  (shown)"))
	} else {
		b.WriteString(dimStyle.Render("  (hidden)"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString("Strength:\n")
	m.bar.FullColor = color
	b.WriteString(m.bar.ViewAs(a.Fraction()))
	b.WriteString("\n")
	label := report.Headline(a.Category.String(), a.EntropyBits, m.cfg.UI.Decimals)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(label))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (score %d/%d)", a.Score, strength.MaxScore)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Criteria"))
	b.WriteString("\n")
	for _, c := range a.Criteria() {
		if c.Satisfied {
			b.WriteString("  " + okStyle.Render("✔ "+c.Criterion.Label()) + "\n")
		} else {
			b.WriteString("  " + failStyle.Render("✖ "+c.Criterion.Label()) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Analysis"))
	b.WriteString("\n")
	for _, line := range m.analysisLines() {
		b.WriteString("  " + truncate(line, textWidth) + "\n")
	}
	for _, w := range a.Warnings {
		b.WriteString("  " + warnStyle.Render(truncate("! "+w, textWidth)) + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		style := okStyle
		if m.noticeErr {
			style = failStyle
		}
		b.WriteString(style.Render(truncate(m.notice, textWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// analysisLines renders the suggestions joined by a newline-dash separator.
func (m *Checker) analysisLines() []string {
	a := m.assessment
	switch {
	case m.input.Value() == "":
		return []string{idleHint}
	case len(a.Suggestions) == 0:
		return []string{greatHint}
	}
	return strings.Split("Suggestions:\n- "+strings.Join(a.Suggestions, "\n- "), "\n")
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
