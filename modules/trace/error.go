package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf logs the message with its caller and returns it as an error.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.WithFields(logrus.Fields{"func": fn, "line": line}).Error(msg)
	return errors.New(msg)
}

// Tracker reports the time spent between steps in debug mode.
type Tracker struct {
	debug bool
	last  time.Time
	out   io.Writer
}

func NewTracker(debugMode bool) *Tracker {
	return &Tracker{debug: debugMode, last: time.Now(), out: os.Stderr}
}

func (t *Tracker) StepNext(format string, a ...any) {
	if !t.debug {
		return
	}
	s := fmt.Sprintf(format, a...)
	now := time.Now()
	fmt.Fprintf(t.out, "\x1b[35m* %s use time: %v\x1b[0m\n", strings.Trim(s, "\n"), now.Sub(t.last))
	t.last = now
}
