// Package config loads pwcheck.toml, the presentation settings of the
// checker window and the text report.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"pwcheck/internal/strength"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "pwcheck.toml"

// Limits for [ui] values.
const (
	MaxDecimals = 4
	MinWidth    = 10
	MaxWidth    = 200
)

// ErrUnknownKey is wrapped by Load when the file has keys pwcheck does not know.
var ErrUnknownKey = errors.New("unknown key")

// Config is the decoded pwcheck.toml.
type Config struct {
	UI     UIConfig    `toml:"ui"`
	Colors ColorConfig `toml:"colors"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// UIConfig controls the checker window.
type UIConfig struct {
	Mask     string `toml:"mask"`
	Show     bool   `toml:"show"`
	Decimals int    `toml:"decimals"`
	Width    int    `toml:"width"`
}

// ColorConfig holds one color per category, either "#rrggbb" or an
// ANSI color number.
type ColorConfig struct {
	VeryWeak   string `toml:"very_weak"`
	Weak       string `toml:"weak"`
	Moderate   string `toml:"moderate"`
	Strong     string `toml:"strong"`
	VeryStrong string `toml:"very_strong"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			Mask:     "•",
			Show:     false,
			Decimals: 1,
			Width:    60,
		},
		Colors: ColorConfig{
			VeryWeak:   "#b71c1c",
			Weak:       "#fb8c00",
			Moderate:   "#fdd835",
			Strong:     "#43a047",
			VeryStrong: "#1b5e20",
		},
	}
}

// MaskRune returns the rune drawn in place of hidden characters.
func (c Config) MaskRune() rune {
	r, _ := utf8.DecodeRuneInString(c.UI.Mask)
	return r
}

// Color returns the configured color for cat.
func (c Config) Color(cat strength.Category) string {
	switch cat {
	case strength.VeryWeak:
		return c.Colors.VeryWeak
	case strength.Weak:
		return c.Colors.Weak
	case strength.Moderate:
		return c.Colors.Moderate
	case strength.Strong:
		return c.Colors.Strong
	default:
		return c.Colors.VeryStrong
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads path when it is set, otherwise the nearest FileName above
// startDir, otherwise the defaults.
func Resolve(path, startDir string) (Config, error) {
	if strings.TrimSpace(path) != "" {
		return Load(path)
	}
	found, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(found)
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.UI.Mask) != 1 {
		return fmt.Errorf("[ui].mask must be a single character, got %q", c.UI.Mask)
	}
	if c.UI.Decimals < 0 || c.UI.Decimals > MaxDecimals {
		return fmt.Errorf("[ui].decimals must be between 0 and %d, got %d", MaxDecimals, c.UI.Decimals)
	}
	if c.UI.Width < MinWidth || c.UI.Width > MaxWidth {
		return fmt.Errorf("[ui].width must be between %d and %d, got %d", MinWidth, MaxWidth, c.UI.Width)
	}
	for _, cat := range strength.Categories {
		if !validColor(c.Color(cat)) {
			return fmt.Errorf("[colors].%s: invalid color %q (expected #rrggbb or 0-255)", cat.Key(), c.Color(cat))
		}
	}
	return nil
}

func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return false
		}
		_, err := strconv.ParseUint(s[1:], 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
