package color

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColorConfig(t *testing.T) {
	cc := NewColorConfig(WithColor(Old, BoldRed))
	require.Equal(t, BoldRed, cc[Old])
	require.Equal(t, Green, cc[New])
	require.Equal(t, Reset, cc.Reset(New))
	require.Equal(t, "", cc.Reset(Context))
	require.Equal(t, "x", cc.Paint(Context, "x"))
	require.Equal(t, Green+"x"+Reset, cc.Paint(New, "x"))

	var none ColorConfig
	require.Equal(t, "x", none.Paint(Old, "x"))
}

func TestParseColor(t *testing.T) {
	s, err := ParseColor("red")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(s, "\033["))
	require.Contains(t, s, "31")

	s, err = ParseColor("normal")
	require.NoError(t, err)
	require.Equal(t, "", s)

	s, err = ParseColor("green+b:black")
	require.NoError(t, err)
	require.NotEmpty(t, s)

	_, err = ParseColor("208")
	require.NoError(t, err)

	_, err = ParseColor("chartreuse")
	require.ErrorIs(t, err, ErrBadColor)
}
