// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

/*
Stamp-version derives the kernel's semantic version from git history and
records it in two places: a plain-text version file consumed by the rest
of the build, and the PROS_VERSION macros in the public API header.

A build at a release tag uses the tag's version as is. Builds past a tag
bump the patch number and append a pre-release marker ("commit", or
"dirty" for a tree with local modifications) plus the short commit hash.

Run it from anywhere inside the repository:

	go tool stamp-version

Pass -print-only to print the derived version without writing anything.
*/
package main

import (
	_ "embed"

	"github.com/purduesigbots/pros/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
