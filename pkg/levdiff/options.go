// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"io"
	"os"

	"github.com/antgroup/levdiff/modules/levenshtein/color"
	"github.com/antgroup/levdiff/pkg/config"
)

const (
	Stdin = "-"
)

type Options struct {
	From, To string // "-" reads stdin
	Output   string // write to this file instead of stdout
	Color    config.ColorMode
	Colors   color.ColorConfig // nil means the default colors
	Renumber bool
	Trace    bool // dump the cost table after every cell write
	Stat     bool
	JSON     bool
	Header   bool
	ExitCode bool // exit with 1 when the inputs differ
	Text     bool // skip the binary check
	Encoding string
	MaxSize  int64
	Pager    *string // configured pager command
	NoPager  bool
	Progress bool
	Verbose  bool

	Stdin       io.Reader
	Stdout      io.Writer
	TraceOut    io.Writer
	ProgressOut io.Writer
}

func (o *Options) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func (o *Options) traceOut() io.Writer {
	if o.TraceOut != nil {
		return o.TraceOut
	}
	return os.Stderr
}

func (o *Options) progressOut() io.Writer {
	if o.ProgressOut != nil {
		return o.ProgressOut
	}
	return os.Stderr
}
