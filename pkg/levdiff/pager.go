// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/antgroup/levdiff/modules/env"
	"github.com/antgroup/levdiff/modules/trace"
	"github.com/kballard/go-shellquote"
)

const (
	defaultPager = "less"
)

// lookupPager resolves the pager command: LEVDIFF_PAGER, then the configured
// pager, then PAGER. An empty command disables paging.
//
// https://github.com/sharkdp/bat/blob/master/src/less.rs
func lookupPager(configured *string) string {
	if pager, ok := os.LookupEnv(env.LEVDIFF_PAGER); ok {
		return pager
	}
	if configured != nil {
		return *configured
	}
	if pager, ok := env.LookupPager(); ok {
		return pager
	}
	return defaultPager
}

type Printer struct {
	w        io.Writer
	useColor bool
	closeFn  func() error
}

func (p *Printer) Close() error {
	if p.closeFn == nil {
		return nil
	}
	return p.closeFn()
}

func (p *Printer) UseColor() bool {
	return p.useColor
}

func (p *Printer) Write(b []byte) (n int, err error) {
	return p.w.Write(b)
}

// NewPrinter pipes output through the pager when paging is enabled and falls
// back to stdout when the pager cannot be started.
func NewPrinter(ctx context.Context, pager string, paging, useColor bool) *Printer {
	if !paging {
		return &Printer{useColor: useColor, w: os.Stdout}
	}
	args, err := shellquote.Split(pager)
	if err != nil || len(args) == 0 {
		// PAGER disabled
		return &Printer{useColor: useColor, w: os.Stdout}
	}
	pagerExe, err := exec.LookPath(args[0])
	if err != nil {
		trace.DbgPrint("pager %s not found: %v", args[0], err)
		return &Printer{useColor: useColor, w: os.Stdout}
	}
	cmd := exec.CommandContext(ctx, pagerExe, args[1:]...)

	cmd.Env = env.SanitizerEnv("PAGER", "LESS", "LV") // AVOID PAGER ENV
	// PAGER_ENV: LESS=FRX LV=-c
	cmd.Env = append(cmd.Env, "LESS=FRX", "LV=-c")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &Printer{useColor: useColor, w: os.Stdout}
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return &Printer{useColor: useColor, w: os.Stdout}
	}
	return &Printer{useColor: useColor, w: stdin, closeFn: func() error {
		_ = stdin.Close()
		if err := cmd.Wait(); err != nil {
			return err
		}
		return nil
	}}
}
