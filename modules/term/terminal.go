package term

import (
	"os"
	"strings"

	"github.com/antgroup/levdiff/modules/strengthen"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type Level int

const (
	LevelNone Level = iota
	Level256
	Level16M
)

var (
	StderrLevel Level
	StdoutLevel Level
)

// DetectLevel reads the color support announced by the environment.
func DetectLevel() Level {
	if strengthen.SimpleAtob(os.Getenv("LEVDIFF_FORCE_TRUECOLOR"), false) {
		return Level16M
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return LevelNone
	}
	if _, ok := os.LookupEnv("WT_SESSION"); ok {
		return Level16M
	}
	colorTermEnv := os.Getenv("COLORTERM")
	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "24bit") ||
		strings.Contains(termEnv, "truecolor") ||
		strings.Contains(colorTermEnv, "24bit") ||
		strings.Contains(colorTermEnv, "truecolor") {
		return Level16M
	}
	if termEnv == "dumb" {
		return LevelNone
	}
	if strings.Contains(termEnv, "256") || strings.Contains(colorTermEnv, "256") || strings.HasPrefix(termEnv, "xterm") {
		return Level256
	}
	return LevelNone
}

// LevelOf returns the color level usable on f: none unless f is a terminal.
func LevelOf(f *os.File, level Level) Level {
	if IsTerminal(f.Fd()) {
		return level
	}
	return LevelNone
}

func init() {
	level := DetectLevel()
	StderrLevel = LevelOf(os.Stderr, level)
	StdoutLevel = LevelOf(os.Stdout, level)
}

func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
}

func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
