// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/purduesigbots/pros/cli"
	"github.com/purduesigbots/pros/devtools/internal"
	"github.com/purduesigbots/pros/patch"
)

const (
	defaultInclude = "firmware/libv5rts/sdk/vexv5/include"
	defaultOut     = "firmware/libv5rts/sdk/vexv5/patched_include"
)

func main() { cli.Main(new(app)) }

type app struct {
	include string
	out     string
	dry     bool
	jobs    int
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.include, "include", defaultInclude, "Directory `path` holding the unpatched SDK headers.")
	fs.StringVar(&a.out, "out", defaultOut, "Directory `path` the patched headers are written into.")
	fs.BoolVar(&a.dry, "dry", false, "Log the headers that would be patched, without writing anything.")
	fs.IntVar(&a.jobs, "jobs", 0, "Patch up to `n` headers at once (0 means one per CPU).")
}

func (a *app) Run(ctx context.Context) error {
	if !filepath.IsAbs(a.include) || !filepath.IsAbs(a.out) {
		internal.EnsureRoot()
	}
	env := cli.GetEnv(ctx)

	err := patch.Apply(ctx, patch.Options{
		Include: a.include,
		Out:     a.out,
		DryRun:  a.dry,
		Jobs:    a.jobs,
	})
	if errors.Is(err, patch.ErrAlreadyPatched) {
		env.Logf("libv5rts already patched")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to patch libv5rts: %w", err)
	}
	if !a.dry {
		env.Logf("libv5rts patched successfully")
	}
	return nil
}
