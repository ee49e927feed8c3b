package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

// Colors. See https://github.com/git/git/blob/v2.26.2/color.h#L24-L53.
const (
	Normal      = ""
	Reset       = "\033[m"
	Bold        = "\033[1m"
	Red         = "\033[31m"
	Green       = "\033[32m"
	Yellow      = "\033[33m"
	Blue        = "\033[34m"
	Cyan        = "\033[36m"
	BoldRed     = "\033[1;31m"
	BoldGreen   = "\033[1;32m"
	BoldYellow  = "\033[1;33m"
	Faint       = "\033[2m"
	FaintItalic = "\033[2;3m"
)

// A ColorKey is a key into a ColorConfig map and also the key in the [color]
// section of the configuration file.
type ColorKey string

// ColorKeys.
const (
	Context    ColorKey = "context"    // unchanged lines
	Meta       ColorKey = "meta"       // header
	Frag       ColorKey = "frag"       // substitution marker
	Old        ColorKey = "old"        // removed lines and replaced text
	New        ColorKey = "new"        // added lines and replacement text
	LineNumber ColorKey = "lineNumber" // position column
)

// Keys returns every known key.
func Keys() []ColorKey {
	return []ColorKey{Context, Meta, Frag, Old, New, LineNumber}
}

// A ColorConfig is a color configuration. A nil or empty ColorConfig
// corresponds to no color.
type ColorConfig map[ColorKey]string

// A ColorConfigOption sets an option on a ColorConfig.
type ColorConfigOption func(ColorConfig)

// WithColor sets the color for key.
func WithColor(key ColorKey, color string) ColorConfigOption {
	return func(cc ColorConfig) {
		cc[key] = color
	}
}

var defaultColorConfig = ColorConfig{
	Context:    Normal,
	Meta:       Bold,
	Frag:       Yellow,
	Old:        Red,
	New:        Green,
	LineNumber: Normal,
}

// NewColorConfig returns a new ColorConfig.
func NewColorConfig(options ...ColorConfigOption) ColorConfig {
	cc := make(ColorConfig)
	for key, value := range defaultColorConfig {
		cc[key] = value
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

// Reset returns the ANSI escape sequence to reset the color with key set from
// cc. If no color was set then no reset is needed so it returns the empty
// string.
func (cc ColorConfig) Reset(key ColorKey) string {
	if cc[key] == "" {
		return ""
	}
	return Reset
}

// Paint wraps s in the color of key.
func (cc ColorConfig) Paint(key ColorKey, s string) string {
	c := cc[key]
	if c == "" {
		return s
	}
	return c + s + Reset
}

var (
	ErrBadColor = errors.New("bad color")
)

var knownColors = map[string]bool{
	"black": true, "red": true, "green": true, "yellow": true,
	"blue": true, "magenta": true, "cyan": true, "white": true, "default": true,
}

// ParseColor converts a color spec to an escape sequence. Specs follow
// github.com/mgutz/ansi: "foreground+attributes:background+attributes",
// e.g. "red+b", "green:black", "208+u". An empty spec or "normal" means no color.
func ParseColor(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "normal") {
		return Normal, nil
	}
	fg, bg, _ := strings.Cut(spec, ":")
	for _, part := range []string{fg, bg} {
		name, _, _ := strings.Cut(part, "+")
		if name == "" || knownColors[name] || isColorIndex(name) {
			continue
		}
		return "", fmt.Errorf("color '%s': %w", spec, ErrBadColor)
	}
	return ansi.ColorCode(spec), nil
}

func isColorIndex(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n <= 255
}
