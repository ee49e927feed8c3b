// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/antgroup/levdiff/modules/chardet"
	"github.com/antgroup/levdiff/modules/env"
	"github.com/antgroup/levdiff/modules/levenshtein/color"
	"github.com/antgroup/levdiff/modules/term"
	"github.com/antgroup/levdiff/pkg/config"
	"github.com/antgroup/levdiff/pkg/levdiff"
)

type Diff struct {
	From     string    `arg:"" name:"from" help:"Original file, '-' reads stdin"`
	To       string    `arg:"" name:"to" help:"Modified file, '-' reads stdin"`
	Color    string    `name:"color" help:"Use colored output, supported: auto|always|never" placeholder:"<when>"`
	Renumber bool      `name:"renumber" help:"Number the output lines 1..N instead of table positions"`
	Trace    bool      `name:"trace" help:"Dump the cost table to stderr after every cell write"`
	Stat     bool      `name:"stat" help:"Show a summary instead of the script"`
	JSON     bool      `short:"j" name:"json" help:"Data will be returned in JSON format"`
	Header   bool      `name:"header" help:"Print the names and hashes of both inputs"`
	ExitCode bool      `name:"exit-code" help:"Exit with 1 if there were differences and 0 otherwise"`
	Text     bool      `short:"a" name:"text" help:"Treat all files as text"`
	Encoding string    `name:"encoding" help:"Character set of both inputs, e.g. gbk" placeholder:"<charset>"`
	MaxSize  int64     `name:"max-size" type:"size" help:"Refuse inputs larger than this after decompression, e.g. 100m" placeholder:"<size>"`
	Output   string    `name:"output" help:"Output to a specific file instead of stdout" placeholder:"<file>"`
	NoPager  bool      `name:"no-pager" help:"Do not pipe output into a pager"`
	Progress bool      `name:"progress" help:"Show a progress bar while filling the table"`
	stdin    io.Reader `kong:"-"`
	stdout   io.Writer `kong:"-"`
}

func (c *Diff) colorMode(cfg *config.Config) (config.ColorMode, error) {
	if len(c.Color) == 0 {
		return cfg.Diff.ColorMode(), nil
	}
	return config.ParseColorMode(c.Color)
}

func (c *Diff) maxSize(cfg *config.Config) int64 {
	if c.MaxSize != 0 {
		return c.MaxSize
	}
	return cfg.Diff.Limit()
}

func (c *Diff) encoding(cfg *config.Config) string {
	if len(c.Encoding) != 0 {
		return c.Encoding
	}
	return cfg.Diff.Encoding
}

func traceFromEnv() bool {
	v, err := env.GetBool(env.TRACE, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", term.StderrLevel.Yellow("warning:"), err)
	}
	return v
}

func checkEncoding(charset string) error {
	if _, err := chardet.DecodeFromCharset(nil, charset); err != nil {
		return fmt.Errorf("%w, supported: %s", err, strings.Join(chardet.Names(), ", "))
	}
	return nil
}

// NewOptions merges flags over the loaded configuration; flags win.
func (c *Diff) NewOptions(g *Globals, cfg *config.Config) (*levdiff.Options, error) {
	mode, err := c.colorMode(cfg)
	if err != nil {
		return nil, err
	}
	colorOpts, err := cfg.Color.Options()
	if err != nil {
		return nil, err
	}
	encoding := c.encoding(cfg)
	if err := checkEncoding(encoding); err != nil {
		return nil, err
	}
	return &levdiff.Options{
		From:     c.From,
		To:       c.To,
		Output:   c.Output,
		Color:    mode,
		Colors:   color.NewColorConfig(colorOpts...),
		Renumber: c.Renumber || cfg.Diff.Renumber.True(),
		Trace:    c.Trace || cfg.Diff.Trace.True() || traceFromEnv(),
		Stat:     c.Stat,
		JSON:     c.JSON,
		Header:   c.Header,
		ExitCode: c.ExitCode,
		Text:     c.Text,
		Encoding: encoding,
		MaxSize:  c.maxSize(cfg),
		Pager:    cfg.Diff.Pager,
		NoPager:  c.NoPager,
		Progress: c.Progress,
		Verbose:  g.Verbose,
		Stdin:    c.stdin,
		Stdout:   c.stdout,
	}, nil
}

func (c *Diff) Run(g *Globals) error {
	cfg, err := config.Load(g.Values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s load config: %v\n", term.StderrLevel.Red("levdiff:"), err)
		return err
	}
	opts, err := c.NewOptions(g, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", term.StderrLevel.Red("levdiff:"), err)
		return err
	}
	g.DbgPrint("diff %s %s color=%s renumber=%v trace=%v max-size=%d", opts.From, opts.To, opts.Color, opts.Renumber, opts.Trace, opts.MaxSize)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := levdiff.Run(ctx, opts); err != nil {
		if !levdiff.IsExitCode(err, 1) {
			fmt.Fprintf(os.Stderr, "%s %v\n", term.StderrLevel.Red("levdiff:"), err)
		}
		return err
	}
	return nil
}
