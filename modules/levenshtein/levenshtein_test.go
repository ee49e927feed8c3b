package levenshtein

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s ...string) []string { return s }

// editDistance keeps only one row of the table.
func editDistance(s1, s2 []string) int {
	row := make([]int, len(s2)+1)
	for x := range row {
		row[x] = x
	}
	for y := 1; y <= len(s1); y++ {
		previous := row[0]
		row[0] = y
		for x := 1; x <= len(s2); x++ {
			oldRow := row[x]
			p := previous
			if s1[y-1] != s2[x-1] {
				p++
			}
			row[x] = min(p, row[x-1]+1, row[x]+1)
			previous = oldRow
		}
	}
	return row[len(s2)]
}

func randomLines(r *rand.Rand, n int, alphabet string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(alphabet[r.IntN(len(alphabet))])
	}
	return out
}

func TestDiffScenarios(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 []string
		want   []Edit
	}{
		{
			name: "substitute in the middle",
			s1:   lines("a", "b", "c"),
			s2:   lines("a", "x", "c"),
			want: []Edit{
				{Op: Ignore, Pos: 1, Text: "a"},
				{Op: Substitute, Pos: 2, Text: "b", New: "x"},
				{Op: Ignore, Pos: 3, Text: "c"},
			},
		},
		{
			name: "trailing removal",
			s1:   lines("a", "b"),
			s2:   lines("a"),
			want: []Edit{
				{Op: Ignore, Pos: 1, Text: "a"},
				{Op: Remove, Pos: 2, Text: "b"},
			},
		},
		{
			name: "single substitution beats remove plus add",
			s1:   lines("a"),
			s2:   lines("b"),
			want: []Edit{
				{Op: Substitute, Pos: 1, Text: "a", New: "b"},
			},
		},
		{
			name: "remove preferred over substitute on a tie",
			s1:   lines("a", "b"),
			s2:   lines("c"),
			want: []Edit{
				{Op: Substitute, Pos: 1, Text: "a", New: "c"},
				{Op: Remove, Pos: 2, Text: "b"},
			},
		},
		{
			name: "remove preferred over add and substitute on a tie",
			s1:   lines("a", "b"),
			s2:   lines("b", "a"),
			want: []Edit{
				{Op: Add, Pos: 1, Text: "b"},
				{Op: Ignore, Pos: 2, Text: "a"},
				{Op: Remove, Pos: 2, Text: "b"},
			},
		},
		{
			name: "leading removal",
			s1:   lines("x", "a"),
			s2:   lines("a"),
			want: []Edit{
				{Op: Remove, Pos: 1, Text: "x"},
				{Op: Ignore, Pos: 1, Text: "a"},
			},
		},
		{
			name: "both empty",
			s1:   nil,
			s2:   nil,
			want: []Edit{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.s1, tt.s2, nil)
			require.Equal(t, tt.want, got)
			require.Equal(t, StatOf(got).Distance(), Distance(tt.s1, tt.s2))
		})
	}
}

func TestDiffIdentity(t *testing.T) {
	s := lines("package main", "", "func main() {", "}", "")
	script := Diff(s, s, nil)
	require.Len(t, script, len(s))
	for i, e := range script {
		assert.Equal(t, Ignore, e.Op)
		assert.Equal(t, s[i], e.Text)
		assert.Equal(t, i+1, e.Pos)
	}
}

func TestDiffPureInsertion(t *testing.T) {
	s2 := lines("a", "b", "c")
	script := Diff(nil, s2, nil)
	require.Len(t, script, len(s2))
	for i, e := range script {
		assert.Equal(t, Edit{Op: Add, Pos: i + 1, Text: s2[i]}, e)
	}
}

func TestDiffPureDeletion(t *testing.T) {
	s1 := lines("a", "b", "c")
	script := Diff(s1, []string{}, nil)
	require.Len(t, script, len(s1))
	for i, e := range script {
		assert.Equal(t, Edit{Op: Remove, Pos: i + 1, Text: s1[i]}, e)
	}
}

func TestDiffRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(20241016, 7))
	for n := 0; n < 300; n++ {
		s1 := randomLines(r, r.IntN(12), "abcd")
		s2 := randomLines(r, r.IntN(12), "abcd")
		table := NewTable(s1, s2, nil)
		script := table.Backtrack()

		want := editDistance(s1, s2)
		require.Equal(t, want, table.Distance(), "%v -> %v", s1, s2)
		require.Equal(t, want, StatOf(script).Distance(), "%v -> %v", s1, s2)
		require.LessOrEqual(t, len(script), len(s1)+len(s2))

		out, err := Apply(s1, script)
		require.NoError(t, err, "%v -> %v", s1, s2)
		require.Equal(t, s2, out)

		require.Equal(t, script, Diff(s1, s2, nil), "deterministic")
	}
}

type word struct {
	s string
}

func (w word) String() string { return "<" + w.s + ">" }

func TestDiffRender(t *testing.T) {
	s1 := []word{{"a"}, {"b"}}
	s2 := []word{{"a"}, {"c"}}
	script := Diff(s1, s2, nil)
	require.Equal(t, []Edit{
		{Op: Ignore, Pos: 1, Text: "<a>"},
		{Op: Substitute, Pos: 2, Text: "<b>", New: "<c>"},
	}, script)

	ints := Diff([]int{1, 2, 3}, []int{1, 3}, nil)
	require.Equal(t, []Edit{
		{Op: Ignore, Pos: 1, Text: "1"},
		{Op: Remove, Pos: 2, Text: "2"},
		{Op: Ignore, Pos: 2, Text: "3"},
	}, ints)
}

func TestApplyMismatch(t *testing.T) {
	_, err := Apply(lines("a"), []Edit{{Op: Remove, Pos: 1, Text: "b"}})
	require.ErrorIs(t, err, ErrScriptMismatch)

	_, err = Apply(lines("a", "b"), []Edit{{Op: Ignore, Pos: 1, Text: "a"}})
	require.ErrorIs(t, err, ErrScriptMismatch)

	_, err = Apply(nil, []Edit{{Op: Ignore, Pos: 1, Text: "a"}})
	require.ErrorIs(t, err, ErrScriptMismatch)

	_, err = Apply(nil, []Edit{{Op: Operation(42)}})
	require.ErrorIs(t, err, ErrUnknownOperation)
}

func TestOperationText(t *testing.T) {
	for _, op := range []Operation{Ignore, Add, Remove, Substitute} {
		b, err := op.MarshalText()
		require.NoError(t, err)
		var got Operation
		require.NoError(t, got.UnmarshalText(b))
		require.Equal(t, op, got)
	}
	var o Operation
	require.ErrorIs(t, o.UnmarshalText([]byte("swap")), ErrUnknownOperation)
	require.Equal(t, `substitute(2, "b", "x")`, Edit{Op: Substitute, Pos: 2, Text: "b", New: "x"}.String())
}
