package levenshtein

import (
	"errors"
	"fmt"
	"strings"
)

// https://en.wikipedia.org/wiki/Levenshtein_distance
// https://en.wikipedia.org/wiki/Wagner%E2%80%93Fischer_algorithm

// Operation defines the operation of an edit.
type Operation int8

const (
	// Ignore keeps a line unchanged.
	Ignore Operation = iota
	// Add inserts a line from the second sequence.
	Add
	// Remove deletes a line of the first sequence.
	Remove
	// Substitute replaces a line of the first sequence with a line of the second.
	Substitute
)

var (
	operationNameMap = map[Operation]string{
		Ignore:     "ignore",
		Add:        "add",
		Remove:     "remove",
		Substitute: "substitute",
	}
	operationValueMap = map[string]Operation{
		"ignore":     Ignore,
		"add":        Add,
		"remove":     Remove,
		"substitute": Substitute,
	}
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
)

func (o Operation) String() string {
	if n, ok := operationNameMap[o]; ok {
		return n
	}
	return "unknown"
}

func (o Operation) MarshalText() ([]byte, error) {
	if n, ok := operationNameMap[o]; ok {
		return []byte(n), nil
	}
	return nil, fmt.Errorf("operation %d: %w", o, ErrUnknownOperation)
}

func (o *Operation) UnmarshalText(text []byte) error {
	v, ok := operationValueMap[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("operation '%s': %w", text, ErrUnknownOperation)
	}
	*o = v
	return nil
}

// Edit is one step of an edit script.
//
// Pos is the table coordinate the edit was recorded at: the index into the
// second sequence for Add, Ignore and Substitute, the index into the first
// sequence for Remove. It is not a line number of the rendered script.
type Edit struct {
	Op   Operation `json:"op"`
	Pos  int       `json:"pos"`
	Text string    `json:"text"`          // Substitute: the old line
	New  string    `json:"new,omitempty"` // Substitute only
}

func (e Edit) String() string {
	if e.Op == Substitute {
		return fmt.Sprintf("%s(%d, %q, %q)", e.Op, e.Pos, e.Text, e.New)
	}
	return fmt.Sprintf("%s(%d, %q)", e.Op, e.Pos, e.Text)
}

// Options controls how NewTable builds a table.
type Options[E comparable] struct {
	// Render returns the canonical string form of an element.
	Render func(E) string
	// Trace is called after every cell write except the origin sentinel.
	Trace Tracer
}

func (o *Options[E]) render() func(E) string {
	if o != nil && o.Render != nil {
		return o.Render
	}
	return stringify[E]
}

func (o *Options[E]) tracer() Tracer {
	if o == nil {
		return nil
	}
	return o.Trace
}

func stringify[E comparable](e E) string {
	if s, ok := any(e).(string); ok {
		return s
	}
	return fmt.Sprint(e)
}

// Diff returns the minimal edit script transforming s1 into s2.
func Diff[E comparable](s1, s2 []E, opts *Options[E]) []Edit {
	return NewTable(s1, s2, opts).Backtrack()
}

// Distance returns the edit distance between s1 and s2.
func Distance[E comparable](s1, s2 []E) int {
	return NewTable(s1, s2, nil).Distance()
}
