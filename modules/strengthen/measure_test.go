package strengthen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeasurer(t *testing.T) {
	m := NewMeasurer("levdiff-test", false)
	require.Empty(t, m.Path)
	m.Close()

	m = NewMeasurer("levdiff-test", true)
	if m.Path == "" {
		t.Skip("profiling unavailable")
	}
	defer os.Remove(m.Path)
	m.Close()
	m.Close()
	_, err := os.Stat(m.Path)
	require.NoError(t, err)
}
