// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

/*
Patch-headers rewrites the libv5rts SDK headers so the kernel, built with
the hard-float ABI, can link against the SDK, which is built with the
soft-float one. Every function declaration gains an attribute pinning its
calling convention to AAPCS.

The patched copies are written into a sibling directory of the SDK's
include directory, leaving the originals untouched. The existence of that
directory marks the SDK as patched: re-running the tool is then a no-op.

Run it without arguments from anywhere inside the repository:

	go tool patch-headers

Pass -dry to see which headers would be patched without writing anything.
*/
package main

import (
	_ "embed"

	"github.com/purduesigbots/pros/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
