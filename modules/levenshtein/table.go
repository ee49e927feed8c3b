package levenshtein

import (
	"bufio"
	"io"
)

// Tracer observes a table after the cell (i, j) has been written.
type Tracer func(t *Table, i, j int)

type cell struct {
	cost int
	edit Edit
	set  bool
}

// Table is the (n1+1)x(n2+1) cost table. Cell (i, j) holds the minimal cost of
// transforming the first i elements of s1 into the first j elements of s2 and
// the edit that achieves it.
type Table struct {
	rows, cols int
	cells      []cell
	trace      Tracer
}

// NewTable fills the cost table for s1 and s2.
//
// Cells are written row 0 first, then column 0, then the rest in row-major
// order. When several edits reach the same minimal cost the first of Remove,
// Add, Substitute wins.
func NewTable[E comparable](s1, s2 []E, opts *Options[E]) *Table {
	n1, n2 := len(s1), len(s2)
	t := &Table{
		rows:  n1 + 1,
		cols:  n2 + 1,
		cells: make([]cell, (n1+1)*(n2+1)),
		trace: opts.tracer(),
	}
	render := opts.render()
	r1 := make([]string, n1)
	for i, e := range s1 {
		r1[i] = render(e)
	}
	r2 := make([]string, n2)
	for j, e := range s2 {
		r2[j] = render(e)
	}
	t.cells[0] = cell{cost: 0, edit: Edit{Op: Ignore}, set: true}
	for j := 1; j <= n2; j++ {
		t.put(0, j, j, Edit{Op: Add, Pos: j, Text: r2[j-1]})
	}
	for i := 1; i <= n1; i++ {
		t.put(i, 0, i, Edit{Op: Remove, Pos: i, Text: r1[i-1]})
	}
	for i := 1; i <= n1; i++ {
		for j := 1; j <= n2; j++ {
			diag := t.cells[t.index(i-1, j-1)].cost
			if s1[i-1] == s2[j-1] {
				t.put(i, j, diag, Edit{Op: Ignore, Pos: j, Text: r1[i-1]})
				continue
			}
			cost := t.cells[t.index(i-1, j)].cost + 1
			edit := Edit{Op: Remove, Pos: i, Text: r1[i-1]}
			if c := t.cells[t.index(i, j-1)].cost + 1; c < cost {
				cost = c
				edit = Edit{Op: Add, Pos: j, Text: r2[j-1]}
			}
			if c := diag + 1; c < cost {
				cost = c
				edit = Edit{Op: Substitute, Pos: j, Text: r1[i-1], New: r2[j-1]}
			}
			t.put(i, j, cost, edit)
		}
	}
	return t
}

func (t *Table) index(i, j int) int {
	return i*t.cols + j
}

func (t *Table) put(i, j int, cost int, e Edit) {
	t.cells[t.index(i, j)] = cell{cost: cost, edit: e, set: true}
	if t.trace != nil {
		t.trace(t, i, j)
	}
}

// Dims returns the lengths of the two sequences the table was built from.
func (t *Table) Dims() (n1, n2 int) {
	return t.rows - 1, t.cols - 1
}

// Cost returns the cost stored at (i, j). ok is false for a cell that has not
// been written yet or lies outside the table.
func (t *Table) Cost(i, j int) (cost int, ok bool) {
	if !t.inside(i, j) {
		return 0, false
	}
	c := t.cells[t.index(i, j)]
	return c.cost, c.set
}

// Edit returns the edit stored at (i, j).
func (t *Table) Edit(i, j int) (e Edit, ok bool) {
	if !t.inside(i, j) {
		return Edit{}, false
	}
	c := t.cells[t.index(i, j)]
	return c.edit, c.set
}

func (t *Table) inside(i, j int) bool {
	return i >= 0 && j >= 0 && i < t.rows && j < t.cols
}

// Distance returns the edit distance between the two sequences.
func (t *Table) Distance() int {
	return t.cells[len(t.cells)-1].cost
}

// Backtrack walks the table from (n1, n2) back to the origin and returns the
// edits in the order they apply.
func (t *Table) Backtrack() []Edit {
	i, j := t.rows-1, t.cols-1
	script := make([]Edit, 0, i+j)
	for i > 0 || j > 0 {
		e := t.cells[t.index(i, j)].edit
		script = append(script, e)
		switch e.Op {
		case Add:
			j--
		case Remove:
			i--
		default:
			i--
			j--
		}
	}
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}
	return script
}

var (
	opCode = map[Operation]byte{
		Add:        'A',
		Remove:     'R',
		Substitute: 'S',
		Ignore:     'I',
	}
)

// Dump writes a snapshot of the table, one row per line, followed by an empty line.
func (t *Table) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var num [20]byte
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			c := t.cells[t.index(i, j)]
			if !c.set {
				_, _ = bw.WriteString("      - ")
				continue
			}
			_, _ = bw.Write(padLeft(num[:0], c.cost, 3))
			_, _ = bw.WriteString(" (")
			_ = bw.WriteByte(opCode[c.edit.Op])
			_, _ = bw.WriteString(") ")
		}
		_ = bw.WriteByte('\n')
	}
	_ = bw.WriteByte('\n')
	return bw.Flush()
}
