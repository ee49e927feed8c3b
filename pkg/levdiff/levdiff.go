// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/antgroup/levdiff/modules/levenshtein"
	"github.com/antgroup/levdiff/modules/levenshtein/color"
	"github.com/antgroup/levdiff/modules/term"
	"github.com/antgroup/levdiff/modules/trace"
	"github.com/antgroup/levdiff/pkg/config"
	"github.com/sirupsen/logrus"
)

// tableDump writes the whole table after every cell write and keeps the first
// write error.
type tableDump struct {
	w   io.Writer
	err error
}

func (d *tableDump) trace(t *levenshtein.Table, _, _ int) {
	if d.err != nil {
		return
	}
	d.err = t.Dump(d.w)
}

// Run diffs opts.From against opts.To and renders the edit script.
func Run(ctx context.Context, opts *Options) error {
	tracker := trace.NewTracker(opts.Verbose || trace.IsDebugMode())
	from, to, sink, err := opts.readInputs(ctx)
	if err != nil {
		return err
	}
	tracker.StepNext("read %s (%d lines) and %s (%d lines)", from.file.Name, len(from.lines), to.file.Name, len(to.lines))

	var dump *tableDump
	var progress *fillProgress
	var tracers []levenshtein.Tracer
	if opts.Trace {
		dump = &tableDump{w: opts.traceOut()}
		tracers = append(tracers, dump.trace)
	}
	if opts.Progress {
		cells := int64(len(from.lines)+1)*int64(len(to.lines)+1) - 1
		progress = newFillProgress(opts.progressOut(), cells)
		tracers = append(tracers, progress.trace)
	}
	table := levenshtein.NewTable(from.lines, to.lines, sink.Options(composeTracers(tracers...)))
	if progress != nil {
		progress.Wait()
	}
	if dump != nil && dump.err != nil {
		return fmt.Errorf("dump table: %w", dump.err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	script := table.Backtrack()
	tracker.StepNext("fill and backtrack %d x %d table", len(from.lines)+1, len(to.lines)+1)
	logrus.WithFields(logrus.Fields{
		"from":     from.file.Hash,
		"to":       to.file.Hash,
		"edits":    len(script),
		"distance": table.Distance(),
	}).Debug("diff done")

	if err := opts.render(ctx, from.file, to.file, script); err != nil {
		return err
	}
	if opts.ExitCode && table.Distance() != 0 {
		return &ErrExitCode{ExitCode: 1, Message: fmt.Sprintf("%s and %s differ", from.file.Name, to.file.Name)}
	}
	return nil
}

// openOutput picks the destination and whether it should be colored.
func (o *Options) openOutput(ctx context.Context) (io.Writer, bool, func() error, error) {
	always := o.Color == config.ColorAlways && !o.JSON
	if len(o.Output) != 0 {
		fd, err := os.Create(o.Output)
		if err != nil {
			return nil, false, nil, trace.Errorf("create output %s: %v", o.Output, err)
		}
		return fd, always, fd.Close, nil
	}
	if o.Stdout != nil {
		return o.Stdout, always, nil, nil
	}
	useColor := !o.JSON && (always || (o.Color != config.ColorNever && term.StdoutLevel != term.LevelNone))
	paging := !o.NoPager && term.IsTerminal(os.Stdout.Fd())
	p := NewPrinter(ctx, lookupPager(o.Pager), paging, useColor)
	return p, p.UseColor(), func() error {
		if err := p.Close(); err != nil {
			trace.DbgPrint("close pager: %v", err)
		}
		return nil
	}, nil
}

func (o *Options) render(ctx context.Context, from, to *levenshtein.File, script []levenshtein.Edit) (err error) {
	w, useColor, closeFn, err := o.openOutput(ctx)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer func() {
			if cerr := closeFn(); err == nil {
				err = cerr
			}
		}()
	}
	enc := levenshtein.NewEncoder(w).SetRenumber(o.Renumber)
	if useColor {
		cc := o.Colors
		if cc == nil {
			cc = color.NewColorConfig()
		}
		enc.SetColor(cc)
	}
	if o.Header || o.JSON {
		enc.SetHeader(from, to)
	}
	switch {
	case o.JSON:
		return enc.EncodeJSON(script)
	case o.Stat:
		return enc.EncodeStat(script)
	}
	return enc.Encode(script)
}
