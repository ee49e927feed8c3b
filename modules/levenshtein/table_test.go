package levenshtein

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableCells(t *testing.T) {
	table := NewTable(lines("a", "b", "c"), lines("a", "x", "c"), nil)
	n1, n2 := table.Dims()
	require.Equal(t, 3, n1)
	require.Equal(t, 3, n2)
	require.Equal(t, 1, table.Distance())

	e, ok := table.Edit(0, 0)
	require.True(t, ok)
	require.Equal(t, Edit{Op: Ignore}, e)

	for j := 1; j <= n2; j++ {
		cost, ok := table.Cost(0, j)
		require.True(t, ok)
		require.Equal(t, j, cost)
		e, _ := table.Edit(0, j)
		require.Equal(t, Add, e.Op)
		require.Equal(t, j, e.Pos)
	}
	for i := 1; i <= n1; i++ {
		cost, ok := table.Cost(i, 0)
		require.True(t, ok)
		require.Equal(t, i, cost)
		e, _ := table.Edit(i, 0)
		require.Equal(t, Remove, e.Op)
		require.Equal(t, i, e.Pos)
	}

	_, ok = table.Cost(4, 0)
	require.False(t, ok)
	_, ok = table.Edit(-1, 0)
	require.False(t, ok)
}

func TestTableTrace(t *testing.T) {
	s1 := lines("a", "b")
	s2 := lines("b", "a", "c")
	var order [][2]int
	table := NewTable(s1, s2, &Options[string]{
		Trace: func(tb *Table, i, j int) {
			_, ok := tb.Cost(i, j)
			require.True(t, ok)
			order = append(order, [2]int{i, j})
		},
	})
	want := [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {2, 0},
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}
	require.Equal(t, want, order)
	require.Equal(t, Diff(s1, s2, nil), table.Backtrack())
}

func TestTableDump(t *testing.T) {
	var snapshots []string
	NewTable(lines("a"), lines("b"), &Options[string]{
		Trace: func(tb *Table, i, j int) {
			var b bytes.Buffer
			require.NoError(t, tb.Dump(&b))
			snapshots = append(snapshots, b.String())
		},
	})
	require.Len(t, snapshots, 3)
	require.Equal(t, "  0 (I)   1 (A) \n      -       - \n\n", snapshots[0])
	require.Equal(t, "  0 (I)   1 (A) \n  1 (R)       - \n\n", snapshots[1])
	require.Equal(t, "  0 (I)   1 (A) \n  1 (R)   1 (S) \n\n", snapshots[2])
}

func TestTableDumpEmpty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, NewTable[string](nil, nil, nil).Dump(&b))
	require.Equal(t, "  0 (I) \n\n", b.String())
}
