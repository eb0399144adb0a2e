// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package semver

import (
	"fmt"
	"strings"
)

// Stamp rewrites the version macros in the API header to match v. The
// four PROS_VERSION defines are replaced wholesale; every other line
// passes through untouched.
func Stamp(header []byte, v Version) []byte {
	var sb strings.Builder
	sb.Grow(len(header))
	for _, line := range strings.SplitAfter(string(header), "\n") {
		switch {
		case strings.Contains(line, "#define PROS_VERSION_MAJOR"):
			fmt.Fprintf(&sb, "#define PROS_VERSION_MAJOR %d\n", v.Major)
		case strings.Contains(line, "#define PROS_VERSION_MINOR"):
			fmt.Fprintf(&sb, "#define PROS_VERSION_MINOR %d\n", v.Minor)
		case strings.Contains(line, "#define PROS_VERSION_PATCH"):
			fmt.Fprintf(&sb, "#define PROS_VERSION_PATCH %d\n", v.Patch)
		case strings.Contains(line, "#define PROS_VERSION_STRING "):
			fmt.Fprintf(&sb, "#define PROS_VERSION_STRING %q\n", v)
		default:
			sb.WriteString(line)
		}
	}
	return []byte(sb.String())
}
