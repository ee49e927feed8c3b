package trace

import (
	"bytes"
	"testing"

	"github.com/antgroup/levdiff/modules/term"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	var b bytes.Buffer
	Fprint(&b, term.Level256, "jack\nrose\n")
	require.Equal(t, "\x1b[33m* jack\x1b[0m\n\x1b[33m* rose\x1b[0m\n", b.String())

	b.Reset()
	Fprint(&b, term.LevelNone, "lines: %d", 3)
	require.Equal(t, "* lines: 3\n", b.String())
}

func TestDebug(t *testing.T) {
	term.StderrLevel = term.Level256
	d := NewDebuger(true)
	d.DbgPrint("jack")
	NewDebuger(false).DbgPrint("hidden")
}

func TestErrorf(t *testing.T) {
	var b bytes.Buffer
	out := logrus.StandardLogger().Out
	logrus.SetOutput(&b)
	defer logrus.SetOutput(out)
	err := Errorf("open %s error", "a.txt")
	require.EqualError(t, err, "open a.txt error")
	require.Contains(t, b.String(), "open a.txt error")
	require.Contains(t, b.String(), "TestErrorf")
}
