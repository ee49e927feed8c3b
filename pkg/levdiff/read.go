// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/antgroup/levdiff/modules/levenshtein"
	"github.com/antgroup/levdiff/modules/strengthen"
	"github.com/antgroup/levdiff/modules/trace"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type input struct {
	file  *levenshtein.File
	text  string
	lines []int
}

func (o *Options) readOne(ctx context.Context, name string) (*input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var r io.Reader
	if name == Stdin {
		r = o.stdin()
	} else {
		fd, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer fd.Close() // nolint
		r = fd
	}
	file, text, err := levenshtein.ReadText(r, &levenshtein.ReadOptions{
		Name:    name,
		MaxSize: o.MaxSize,
		Charset: o.Encoding,
		Text:    o.Text,
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"name":        file.Name,
		"size":        file.Size,
		"compression": file.Compression,
		"charset":     file.Charset,
	}).Debug("read input")
	return &input{file: file, text: text}, nil
}

// readInputs reads both sides concurrently, then interns their lines in
// order through a shared sink.
func (o *Options) readInputs(ctx context.Context) (*input, *input, *levenshtein.Sink, error) {
	if o.From == Stdin && o.To == Stdin {
		return nil, nil, nil, ErrStdinTwice
	}
	var from, to *input
	g, newCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if from, err = o.readOne(newCtx, o.From); err != nil {
			return fmt.Errorf("read %s: %w", o.From, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if to, err = o.readOne(newCtx, o.To); err != nil {
			return fmt.Errorf("read %s: %w", o.To, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	sink := levenshtein.NewSink()
	from.lines = sink.SplitLines(from.text)
	to.lines = sink.SplitLines(to.text)
	for _, in := range []*input{from, to} {
		trace.DbgPrint("%s: %s, %d lines, hash %s", in.file.Name, strengthen.FormatSize(in.file.Size), len(in.lines), in.file.ShortHash())
	}
	return from, to, sink, nil
}
