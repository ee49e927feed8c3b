package trace

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antgroup/levdiff/modules/term"
)

type Debuger interface {
	DbgPrint(format string, args ...any)
}

func NewDebuger(verbose bool) Debuger {
	return &debuger{verbose: verbose}
}

type debuger struct {
	verbose bool
}

var (
	debugMode bool
)

// EnableDebugMode turns on the package level DbgPrint.
func EnableDebugMode() {
	debugMode = true
}

func IsDebugMode() bool {
	return debugMode
}

func render(level term.Level, message string) []byte {
	var buffer bytes.Buffer
	lines := strings.Split(strings.TrimSuffix(message, "\n"), "\n")
	switch level {
	case term.Level16M:
		for _, s := range lines {
			_, _ = buffer.WriteString("\x1b[38;2;254;225;64m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		}
	case term.Level256:
		for _, s := range lines {
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		}
	default:
		for _, s := range lines {
			_, _ = buffer.WriteString("* ")
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// Fprint writes a debug message to w colored for level.
func Fprint(w io.Writer, level term.Level, format string, args ...any) {
	_, _ = w.Write(render(level, fmt.Sprintf(format, args...)))
}

// DbgPrint prints to stderr when debug mode is enabled.
func DbgPrint(format string, args ...any) {
	if !debugMode {
		return
	}
	Fprint(os.Stderr, term.StderrLevel, format, args...)
}

func (d debuger) DbgPrint(format string, args ...any) {
	if !d.verbose {
		return
	}
	Fprint(os.Stderr, term.StderrLevel, format, args...)
}

var (
	_ Debuger = &debuger{}
)
