// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/purduesigbots/pros/cli/clitest"
)

const apiHeader = `#define PROS_VERSION_MAJOR 0
#define PROS_VERSION_MINOR 0
#define PROS_VERSION_PATCH 0
#define PROS_VERSION_STRING "0.0.0"
`

// taggedRepo builds a repository with a single commit tagged 3.2.1 and
// an api.h carrying placeholder version macros.
func taggedRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "api.h"), []byte(apiHeader), 0o644); err != nil {
		t.Fatal(err)
	}
	run("init", "-q")
	run("add", ".")
	run("commit", "-q", "-m", "initial")
	run("tag", "-a", "3.2.1", "-m", "3.2.1")
	return dir
}

func TestRun(t *testing.T) {
	stamped := taggedRepo(t)
	printed := taggedRepo(t)

	clitest.Run(t, func(t *testing.T) *app { return new(app) }, map[string]clitest.Case[*app]{
		"stamps the header and version file": {
			Args: []string{
				"-repo", stamped,
				"-header", filepath.Join(stamped, "api.h"),
				"-o", filepath.Join(stamped, "version"),
			},
			WantInStderr: "Semantic version is 3.2.1",
			CheckFunc: func(t *testing.T, a *app) {
				version, err := os.ReadFile(filepath.Join(stamped, "version"))
				if err != nil {
					t.Fatal(err)
				}
				if string(version) != "3.2.1" {
					t.Fatalf("version file holds %q, want %q", version, "3.2.1")
				}

				header, err := os.ReadFile(filepath.Join(stamped, "api.h"))
				if err != nil {
					t.Fatal(err)
				}
				want := `#define PROS_VERSION_MAJOR 3
#define PROS_VERSION_MINOR 2
#define PROS_VERSION_PATCH 1
#define PROS_VERSION_STRING "3.2.1"
`
				if string(header) != want {
					t.Fatalf("stamped header:\n%s\nwant:\n%s", header, want)
				}
			},
		},
		"print-only writes nothing": {
			Args: []string{
				"-repo", printed,
				"-header", filepath.Join(printed, "api.h"),
				"-o", filepath.Join(printed, "version"),
				"-print-only",
			},
			WantInStdout: "3.2.1",
			CheckFunc: func(t *testing.T, a *app) {
				if _, err := os.Stat(filepath.Join(printed, "version")); err == nil {
					t.Fatal("print-only must not write the version file")
				}
				header, err := os.ReadFile(filepath.Join(printed, "api.h"))
				if err != nil {
					t.Fatal(err)
				}
				if string(header) != apiHeader {
					t.Fatal("print-only must not touch the header")
				}
			},
		},
		"fails outside a repository": {
			Args:        []string{"-repo", t.TempDir()},
			WantErrType: &exec.ExitError{},
		},
	})
}
