// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package semver derives the kernel version from the repository's git
// history and stamps it into the public API header.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a three-part semantic version with optional pre-release and
// build metadata.
type Version struct {
	Major, Minor, Patch int
	// Pre marks untagged builds: "commit" for a clean tree past the last
	// release tag, "dirty" for one with local modifications.
	Pre string
	// Build is the short hash of the commit the version describes.
	Build string
}

// String formats v as X.Y.Z[-pre][+build].
func (v Version) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		sb.WriteString("-" + v.Pre)
	}
	if v.Build != "" {
		sb.WriteString("+" + v.Build)
	}
	return sb.String()
}

// Parse parses a version in the format produced by [Version.String].
func Parse(s string) (Version, error) {
	var v Version
	rest := s
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		v.Build = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		v.Pre = rest[i+1:]
		rest = rest[:i]
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("version %q does not have three numeric components", s)
	}
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("version %q: bad major component: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("version %q: bad minor component: %w", s, err)
	}
	if v.Patch, err = strconv.Atoi(parts[2]); err != nil {
		return Version{}, fmt.Errorf("version %q: bad patch component: %w", s, err)
	}
	return v, nil
}
