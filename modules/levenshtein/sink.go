package levenshtein

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Sink interns lines so that two inputs can be compared by index.
type Sink struct {
	Lines []string
	Index map[string]int
}

func NewSink() *Sink {
	return &Sink{
		Lines: make([]string, 0, 200),
		Index: make(map[string]int),
	}
}

func (s *Sink) addLine(line string) int {
	if lineIndex, ok := s.Index[line]; ok {
		return lineIndex
	}
	index := len(s.Lines)
	s.Index[line] = index
	s.Lines = append(s.Lines, line)
	return index
}

// Line returns the text of an interned line.
func (s *Sink) Line(i int) string {
	return s.Lines[i]
}

// Texts resolves interned lines back to text.
func (s *Sink) Texts(E []int) []string {
	ss := make([]string, 0, len(E))
	for _, e := range E {
		ss = append(ss, s.Lines[e])
	}
	return ss
}

// Options returns core options rendering interned lines as their text.
func (s *Sink) Options(trace Tracer) *Options[int] {
	return &Options[int]{Render: s.Line, Trace: trace}
}

func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// SplitLines splits text at "\n" or "\r\n". The last line needs no terminator
// and a trailing terminator does not produce an empty line.
func (s *Sink) SplitLines(text string) []int {
	lines := make([]int, 0, 200)
	for pos := 0; pos < len(text); {
		part := text[pos:]
		newPos := strings.IndexByte(part, '\n')
		if newPos == -1 {
			lines = append(lines, s.addLine(part))
			break
		}
		lines = append(lines, s.addLine(trimLine(part[:newPos+1])))
		pos += newPos + 1
	}
	return lines
}

// ScanLines is SplitLines over a reader.
func (s *Sink) ScanLines(r io.Reader) ([]int, error) {
	lines := make([]int, 0, 200)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if len(line) != 0 {
			if strings.HasSuffix(line, "\n") {
				line = trimLine(line)
			}
			lines = append(lines, s.addLine(line))
		}
		if err != nil {
			break
		}
	}
	return lines, nil
}
