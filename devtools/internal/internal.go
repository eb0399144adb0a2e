// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package internal holds helpers shared by the devtools commands.
package internal

import (
	"log"
	"os"
	"path/filepath"
)

// EnsureRoot changes the working directory to the repository root, found
// by walking up from the current directory to the one containing go.mod.
// The commands resolve their default paths against the root, so running
// them from a subdirectory must not change their behavior. A missing root
// terminates the run: it is a build precondition.
func EnsureRoot() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if err := os.Chdir(dir); err != nil {
				log.Fatal(err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Fatal("unable to locate the repository root: no go.mod found")
		}
		dir = parent
	}
}
