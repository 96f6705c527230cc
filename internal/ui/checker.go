package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pwcheck/internal/config"
	"pwcheck/internal/strength"
	"pwcheck/internal/trace"
)

// Options wire the checker window to its collaborators.
type Options struct {
	Clipboard Clipboard
	Tracer    trace.Tracer
	// Parent is the span the window's events hang off.
	Parent uint64
}

// Checker is the whole state of the checker window. Every event handler
// works on this struct; there is no package-level state.
type Checker struct {
	cfg       config.Config
	keys      keyMap
	input     textinput.Model
	bar       progress.Model
	help      help.Model
	clipboard Clipboard
	tracer    trace.Tracer
	parent    uint64

	assessment strength.Assessment
	shown      bool
	notice     string
	noticeErr  bool
	width      int
	evals      int
	quitting   bool
}

type clipboardMsg struct {
	err error
}

// NewChecker builds a focused checker window showing the empty-input
// assessment.
func NewChecker(cfg config.Config, opts Options) *Checker {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a password"
	ti.EchoCharacter = cfg.MaskRune()
	ti.CharLimit = 0
	ti.Width = cfg.UI.Width
	ti.Focus()

	bar := progress.New(
		progress.WithSolidFill(cfg.Color(strength.VeryWeak)),
		progress.WithoutPercentage(),
		progress.WithWidth(cfg.UI.Width),
	)

	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}

	m := &Checker{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		input:     ti,
		bar:       bar,
		help:      help.New(),
		clipboard: opts.Clipboard,
		tracer:    tracer,
		parent:    opts.Parent,
		width:     cfg.UI.Width + 4,
	}
	m.setShown(cfg.UI.Show)
	m.evaluate()
	return m
}

// Init implements tea.Model.
func (m *Checker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Checker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.setShown(!m.shown)
			trace.Point(m.tracer, trace.ScopeSession, "toggle", m.parent, trace.Fields{}.Bool("shown", m.shown))
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.Clear()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCmd()
		}
	case clipboardMsg:
		if msg.err != nil {
			m.setNotice("Copy failed: "+msg.err.Error(), true)
			trace.Error(m.tracer, trace.ScopeSession, "copy", m.parent, msg.err)
		} else {
			m.setNotice("Password copied to clipboard.", false)
			trace.Point(m.tracer, trace.ScopeSession, "copy", m.parent, nil)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.notice = ""
		m.evaluate()
	}
	return m, cmd
}

// Clear empties the field and re-runs the evaluator.
func (m *Checker) Clear() {
	m.input.SetValue("")
	m.notice = ""
	trace.Point(m.tracer, trace.ScopeSession, "clear", m.parent, nil)
	m.evaluate()
}

// Assessment returns the assessment of the current field contents.
func (m *Checker) Assessment() strength.Assessment {
	return m.assessment
}

// Value returns the current field contents.
func (m *Checker) Value() string {
	return m.input.Value()
}

// Shown reports whether the field is rendered in plain text.
func (m *Checker) Shown() bool {
	return m.shown
}

// Evaluations returns how many times the evaluator ran.
func (m *Checker) Evaluations() int {
	return m.evals
}

func (m *Checker) evaluate() {
	m.assessment = strength.Evaluate(m.input.Value())
	m.evals++
	trace.Point(m.tracer, trace.ScopeEval, "evaluate", m.parent, trace.Fields{}.
		Int("length", m.assessment.Length).
		Str("category", m.assessment.Category.Key()))
}

func (m *Checker) setShown(shown bool) {
	m.shown = shown
	if shown {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

func (m *Checker) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Checker) copyCmd() tea.Cmd {
	value := m.input.Value()
	if value == "" {
		return nil
	}
	clip := m.clipboard
	return func() tea.Msg {
		if clip == nil {
			return clipboardMsg{err: ErrClipboardUnavailable}
		}
		return clipboardMsg{err: clip.Copy(value)}
	}
}

func (m *Checker) resize(width int) {
	if width <= 0 {
		return
	}
	m.width = width
	barWidth := min(m.cfg.UI.Width, width-4)
	if barWidth < config.MinWidth {
		barWidth = config.MinWidth
	}
	m.bar.Width = barWidth
	m.input.Width = barWidth
	m.help.Width = width
}
