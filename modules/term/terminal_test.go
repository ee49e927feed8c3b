//go:build !windows

package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.True(t, IsTerminal(tty.Fd()))
	require.Equal(t, Level256, LevelOf(tty, Level256))

	fd, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer fd.Close()
	require.False(t, IsTerminal(fd.Fd()))
	require.Equal(t, LevelNone, LevelOf(fd, Level16M))
}
