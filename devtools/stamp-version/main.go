// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/purduesigbots/pros/cli"
	"github.com/purduesigbots/pros/devtools/internal"
	"github.com/purduesigbots/pros/semver"
)

func main() { cli.Main(new(app)) }

type app struct {
	repo      string
	header    string
	out       string
	printOnly bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.repo, "repo", ".", "Derive the version from the repository at `path`.")
	fs.StringVar(&a.header, "header", "include/api.h", "Stamp the version macros in the header at `path`.")
	fs.StringVar(&a.out, "o", "version", "Write the version string to `file`.")
	fs.BoolVar(&a.printOnly, "print-only", false, "Print the derived version without writing anything.")
}

func (a *app) Run(ctx context.Context) error {
	if !filepath.IsAbs(a.repo) || !filepath.IsAbs(a.header) || !filepath.IsAbs(a.out) {
		internal.EnsureRoot()
	}
	env := cli.GetEnv(ctx)

	v, err := semver.FromGit(ctx, a.repo)
	if err != nil {
		return fmt.Errorf("deriving version: %w", err)
	}
	env.Logf("Semantic version is %s", v)
	if a.printOnly {
		fmt.Fprintln(env.Stdout, v)
		return nil
	}

	if err := os.WriteFile(a.out, []byte(v.String()), 0o644); err != nil {
		return fmt.Errorf("writing version file: %w", err)
	}

	header, err := os.ReadFile(a.header)
	if err != nil {
		return fmt.Errorf("reading %s: %w", a.header, err)
	}
	if err := os.WriteFile(a.header, semver.Stamp(header, v), 0o644); err != nil {
		return fmt.Errorf("stamping %s: %w", a.header, err)
	}
	return nil
}
