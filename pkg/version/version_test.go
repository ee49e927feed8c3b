package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionString(t *testing.T) {
	s := GetVersionString()
	require.True(t, strings.Contains(s, GetVersion()))
	require.True(t, strings.Contains(s, GetBuildCommit()))
}

func TestUname(t *testing.T) {
	u, err := Uname()
	require.NoError(t, err)
	require.Equal(t, runtime.GOOS, u.OS)
	again, err := Uname()
	require.NoError(t, err)
	require.Same(t, u, again)
}
