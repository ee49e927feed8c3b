package levenshtein

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antgroup/levdiff/modules/levenshtein/color"
)

const (
	substituteArrow = " ⇆  "
)

var (
	operationChar = map[Operation]byte{
		Add:        '+',
		Remove:     '-',
		Substitute: '~',
		Ignore:     ' ',
	}

	operationColorKey = map[Operation]color.ColorKey{
		Add:        color.New,
		Remove:     color.Old,
		Substitute: color.Frag,
		Ignore:     color.Context,
	}
)

// Encoder writes an edit script as a classic line diff, one line per edit:
//
//	pos mark| text
type Encoder struct {
	io.Writer

	// color is the color configuration. The default is no color.
	color    color.ColorConfig
	renumber bool
	from, to *File
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{Writer: w}
}

// SetColor sets e's color configuration and returns e.
func (e *Encoder) SetColor(colorConfig color.ColorConfig) *Encoder {
	e.color = colorConfig
	return e
}

// SetRenumber makes e print 1..N instead of the recorded table positions.
func (e *Encoder) SetRenumber(renumber bool) *Encoder {
	e.renumber = renumber
	return e
}

// SetHeader makes e print a header naming both inputs before the script.
func (e *Encoder) SetHeader(from, to *File) *Encoder {
	e.from, e.to = from, to
	return e
}

// digits returns the number of decimal digits of n; zero has one.
func digits(n int) int {
	if n <= 0 {
		return 1
	}
	return len(strconv.Itoa(n))
}

func padLeft(b []byte, n int, width int) []byte {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b = append(b, ' ')
	}
	return append(b, s...)
}

func (e *Encoder) writeHeader(b *strings.Builder) {
	if e.from == nil || e.to == nil {
		return
	}
	_, _ = b.WriteString(e.color[color.Meta])
	fmt.Fprintf(b, "diff %s %s\nindex %s..%s", e.from.Name, e.to.Name, e.from.ShortHash(), e.to.ShortHash())
	_, _ = b.WriteString(e.color.Reset(color.Meta))
	_ = b.WriteByte('\n')
}

func (e *Encoder) writeEdit(b *strings.Builder, pos, width int, o *Edit) {
	var num [20]byte
	_, _ = b.WriteString(e.color[color.LineNumber])
	_, _ = b.Write(padLeft(num[:0], pos, width))
	_, _ = b.WriteString(e.color.Reset(color.LineNumber))
	_ = b.WriteByte(' ')
	if o.Op == Ignore {
		_, _ = b.WriteString(" | ")
		_, _ = b.WriteString(e.color.Paint(color.Context, o.Text))
		_ = b.WriteByte('\n')
		return
	}
	key := operationColorKey[o.Op]
	_, _ = b.WriteString(e.color.Paint(key, string(operationChar[o.Op])))
	_, _ = b.WriteString("| ")
	switch o.Op {
	case Substitute:
		_, _ = b.WriteString(e.color.Paint(color.Old, o.Text))
		_, _ = b.WriteString(substituteArrow)
		_, _ = b.WriteString(e.color.Paint(color.New, o.New))
	default:
		_, _ = b.WriteString(e.color.Paint(key, o.Text))
	}
	_ = b.WriteByte('\n')
}

// Encode writes script.
func (e *Encoder) Encode(script []Edit) error {
	b := &strings.Builder{}
	e.writeHeader(b)
	width := digits(len(script))
	for i := range script {
		pos := script[i].Pos
		if e.renumber {
			pos = i + 1
		}
		e.writeEdit(b, pos, width, &script[i])
	}
	if _, err := io.WriteString(e.Writer, b.String()); err != nil {
		return err
	}
	return nil
}

type jsonScript struct {
	From   *File  `json:"from,omitempty"`
	To     *File  `json:"to,omitempty"`
	Stat   *Stat  `json:"stat"`
	Script []Edit `json:"script"`
}

// EncodeJSON writes script and its summary as a JSON document.
func (e *Encoder) EncodeJSON(script []Edit) error {
	if script == nil {
		script = []Edit{}
	}
	enc := json.NewEncoder(e.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(&jsonScript{
		From:   e.from,
		To:     e.to,
		Stat:   StatOf(script),
		Script: script,
	})
}

// EncodeStat writes a one-line summary of script.
func (e *Encoder) EncodeStat(script []Edit) error {
	s := StatOf(script)
	_, err := fmt.Fprintf(e.Writer, "%s, %s, %s, distance %d\n",
		e.color.Paint(color.New, fmt.Sprintf("%d addition(+)", s.Additions)),
		e.color.Paint(color.Old, fmt.Sprintf("%d deletion(-)", s.Deletions)),
		e.color.Paint(color.Frag, fmt.Sprintf("%d substitution(~)", s.Substitutions)),
		s.Distance())
	return err
}
