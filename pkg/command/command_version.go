// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/antgroup/levdiff/pkg/version"
)

type Version struct {
	BuildOptions bool      `name:"build-options" help:"Also print build options"`
	JSON         bool      `short:"j" name:"json" help:"Data will be returned in JSON format"`
	out          io.Writer `kong:"-"`
}

func (c *Version) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

func (c *Version) formatJSON() error {
	m := map[string]string{
		"version": version.GetVersion(),
		"commit":  version.GetBuildCommit(),
		"time":    version.GetBuildTime(),
		"arch":    runtime.GOARCH,
		"os":      runtime.GOOS,
	}
	if c.BuildOptions {
		if info, ok := debug.ReadBuildInfo(); ok {
			m["go_version"] = strings.TrimPrefix(info.GoVersion, "go")
			for _, s := range info.Settings {
				if len(s.Value) == 0 {
					continue
				}
				m[s.Key] = s.Value
			}
		}
		if u, err := version.Uname(); err == nil {
			m["processor"] = u.Processor
			m["cores"] = strconv.Itoa(u.Cores)
			m["kernel"] = u.Release
		}
	}
	return json.NewEncoder(c.stdout()).Encode(m)
}

func (c *Version) Run(g *Globals) error {
	if c.JSON {
		return c.formatJSON()
	}
	w := c.stdout()
	fmt.Fprintf(w, "levdiff %s (%s), built %v\n", version.GetVersion(), version.GetBuildCommit(), version.GetBuildTime())
	if !c.BuildOptions {
		return nil
	}
	if u, err := version.Uname(); err == nil {
		fmt.Fprintf(w, "system: %s %s %s\ncpu:    %s (%d cores)\n", u.Name, u.Release, u.Machine, u.Processor, u.Cores)
	} else {
		g.DbgPrint("uname: %v", err)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	fmt.Fprintf(w, "arch: %s\nos:   %s\ngo:   %s\n", runtime.GOARCH, runtime.GOOS, strings.TrimPrefix(info.GoVersion, "go"))
	for _, s := range info.Settings {
		if len(s.Value) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n  %s\n", s.Key, s.Value)
	}
	return nil
}
