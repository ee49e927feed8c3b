package levenshtein

import (
	"errors"
	"fmt"
)

var (
	ErrScriptMismatch = errors.New("script does not match input")
)

// Apply replays script over s1 and returns the transformed sequence.
func Apply(s1 []string, script []Edit) ([]string, error) {
	out := make([]string, 0, len(s1))
	var i int
	consume := func(n int, e Edit) error {
		if i >= len(s1) {
			return fmt.Errorf("edit %d %s: input exhausted: %w", n, e.Op, ErrScriptMismatch)
		}
		if s1[i] != e.Text {
			return fmt.Errorf("edit %d %s: want %q, got %q: %w", n, e.Op, e.Text, s1[i], ErrScriptMismatch)
		}
		i++
		return nil
	}
	for n, e := range script {
		switch e.Op {
		case Ignore:
			if err := consume(n, e); err != nil {
				return nil, err
			}
			out = append(out, e.Text)
		case Add:
			out = append(out, e.Text)
		case Remove:
			if err := consume(n, e); err != nil {
				return nil, err
			}
		case Substitute:
			if err := consume(n, e); err != nil {
				return nil, err
			}
			out = append(out, e.New)
		default:
			return nil, fmt.Errorf("edit %d: %w", n, ErrUnknownOperation)
		}
	}
	if i != len(s1) {
		return nil, fmt.Errorf("%d input lines left over: %w", len(s1)-i, ErrScriptMismatch)
	}
	return out, nil
}

// Stat summarizes an edit script.
type Stat struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Substitutions int `json:"substitutions"`
	Unchanged     int `json:"unchanged"`
}

// Distance is the number of edits that change something.
func (s *Stat) Distance() int {
	return s.Additions + s.Deletions + s.Substitutions
}

func StatOf(script []Edit) *Stat {
	s := &Stat{}
	for _, e := range script {
		switch e.Op {
		case Add:
			s.Additions++
		case Remove:
			s.Deletions++
		case Substitute:
			s.Substitutions++
		case Ignore:
			s.Unchanged++
		}
	}
	return s
}
