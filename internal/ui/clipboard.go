package ui

import (
	"errors"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrClipboardUnavailable is reported when no clipboard is configured.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// OSC52Clipboard copies through the terminal using the OSC 52 escape
// sequence, so it also works over SSH.
type OSC52Clipboard struct {
	Out io.Writer
	// Env looks up environment variables; os.Getenv when nil.
	Env func(string) string
}

// NewOSC52Clipboard writes the escape sequence to out.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{Out: out, Env: os.Getenv}
}

// Copy implements Clipboard.
func (c *OSC52Clipboard) Copy(text string) error {
	if c == nil || c.Out == nil {
		return ErrClipboardUnavailable
	}
	getenv := c.Env
	if getenv == nil {
		getenv = os.Getenv
	}
	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.Out)
	return err
}
