package levenshtein

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{}},
		{"A", []string{"A"}},
		{"A\n", []string{"A"}},
		{"A\nB\nC\nD\nA", []string{"A", "B", "C", "D", "A"}},
		{"A\r\nB\r\n", []string{"A", "B"}},
		{"A\n\nB", []string{"A", "", "B"}},
		{"A\n\n", []string{"A", ""}},
		{"A\r", []string{"A\r"}},
	}
	for _, tt := range tests {
		s := NewSink()
		got := s.Texts(s.SplitLines(tt.text))
		require.Equal(t, tt.want, got, "%q", tt.text)

		s2 := NewSink()
		scanned, err := s2.ScanLines(strings.NewReader(tt.text))
		require.NoError(t, err)
		require.Equal(t, tt.want, s2.Texts(scanned), "%q", tt.text)
	}
}

func TestSinkIntern(t *testing.T) {
	s := NewSink()
	a := s.SplitLines("A\nB\nA\n")
	b := s.SplitLines("B\nC\n")
	require.Equal(t, []int{0, 1, 0}, a)
	require.Equal(t, []int{1, 2}, b)
	require.Equal(t, []string{"A", "B", "C"}, s.Lines)

	script := Diff(a, b, s.Options(nil))
	require.Equal(t, []Edit{
		{Op: Remove, Pos: 1, Text: "A"},
		{Op: Ignore, Pos: 1, Text: "B"},
		{Op: Substitute, Pos: 2, Text: "A", New: "C"},
	}, script)
}
