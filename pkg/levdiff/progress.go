// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"io"
	"os"

	"github.com/antgroup/levdiff/modules/levenshtein"
	"github.com/antgroup/levdiff/modules/term"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const (
	progressBatch = 4096
)

// termWidth function returns the visible width of the current terminal
// and can be redefined for testing
var termWidth = func() (width int, err error) {
	width, _, err = term.GetSize(int(os.Stderr.Fd()))
	if err == nil {
		return width, nil
	}
	return 0, err
}

// fillProgress shows how much of the cost table has been written.
type fillProgress struct {
	p       *mpb.Progress
	bar     *mpb.Bar
	pending int
}

func newFillProgress(w io.Writer, cells int64) *fillProgress {
	width, err := termWidth()
	if err != nil {
		width = 80
	}
	if width > 80 {
		width = 80
	}
	p := mpb.New(
		mpb.WithOutput(w),
		mpb.WithAutoRefresh(),
		mpb.WithWidth(width),
	)
	filler := term.StderrLevel.Blue("#")
	task := "Filling table"
	bar := p.New(cells,
		mpb.BarStyle().Filler(filler).Padding(" "),
		mpb.PrependDecorators(
			decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &fillProgress{p: p, bar: bar}
}

func (f *fillProgress) trace(_ *levenshtein.Table, _, _ int) {
	f.pending++
	if f.pending == progressBatch {
		f.bar.IncrBy(f.pending)
		f.pending = 0
	}
}

// Wait completes the bar and waits for its last render.
func (f *fillProgress) Wait() {
	if f.pending != 0 {
		f.bar.IncrBy(f.pending)
		f.pending = 0
	}
	f.bar.SetTotal(-1, true)
	f.p.Wait()
}

func composeTracers(tracers ...levenshtein.Tracer) levenshtein.Tracer {
	active := make([]levenshtein.Tracer, 0, len(tracers))
	for _, t := range tracers {
		if t != nil {
			active = append(active, t)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(t *levenshtein.Table, i, j int) {
		for _, fn := range active {
			fn(t, i, j)
		}
	}
}
