// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antgroup/levdiff/modules/strengthen"
	"github.com/antgroup/levdiff/modules/trace"
	"github.com/antgroup/levdiff/pkg/command"
	"github.com/antgroup/levdiff/pkg/levdiff"
	"github.com/antgroup/levdiff/pkg/version"
	"github.com/sirupsen/logrus"
)

type App struct {
	command.Globals
	Diff    command.Diff    `cmd:"diff" default:"withargs" help:"Compare two files line by line using edit distance"`
	Version command.Version `cmd:"version" help:"Display version information"`
}

func initLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.WarnLevel)
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.NamedMapper("size", command.SizeDecoder()),
		kong.Name("levdiff"),
		kong.Description("levdiff - line diff by Levenshtein distance"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": version.GetVersionString(),
		},
	)
	now := time.Now()
	initLogger(app.Verbose)
	m := strengthen.NewMeasurer("levdiff", app.Debug)
	if app.Verbose {
		trace.EnableDebugMode()
	}
	err := ctx.Run(&app.Globals)
	m.Close()
	if app.Verbose {
		trace.DbgPrint("time spent: %v", time.Since(now))
	}
	if err == nil {
		return
	}
	var e *levdiff.ErrExitCode
	if errors.As(err, &e) {
		os.Exit(e.ExitCode)
	}
	os.Exit(127)
}
