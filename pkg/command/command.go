// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/antgroup/levdiff/modules/trace"
	"github.com/antgroup/levdiff/pkg/version"
)

type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	Values  []string    `short:"X" name:"config" sep:"none" help:"Override default configuration, format: <key>=<value>"`
	Debug   bool        `name:"debug" help:"Enable debug mode; write a CPU profile"`
}

func (g *Globals) DbgPrint(format string, args ...any) {
	trace.NewDebuger(g.Verbose).DbgPrint(format, args...)
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Fprintln(app.Stdout, version.GetVersionString())
	app.Exit(0)
	return nil
}

type Debuger interface {
	DbgPrint(format string, args ...any)
}

var (
	ErrArgRequired = errors.New("arg required")
)

var (
	_ Debuger = &Globals{}
)
