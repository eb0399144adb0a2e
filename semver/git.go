// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package semver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FromGit derives the version from the state of the repository at dir.
//
// A build exactly at a release tag gets the tag's version verbatim. Any
// other build bumps the patch number of the last tag and marks itself as a
// pre-release, "commit" for a clean tree or "dirty" for one with local
// modifications, carrying the short commit hash as build metadata.
func FromGit(ctx context.Context, dir string) (Version, error) {
	desc, err := git(ctx, dir, "describe", "--dirty", "--abbrev")
	if err != nil {
		return Version{}, err
	}

	tag, _, untagged := strings.Cut(desc, "-")
	v, err := Parse(tag)
	if err != nil {
		return Version{}, err
	}
	if !untagged {
		return v, nil
	}

	v.Patch++
	if strings.HasSuffix(desc, "-dirty") {
		v.Pre = "dirty"
	} else {
		v.Pre = "commit"
	}
	v.Build, err = git(ctx, dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return Version{}, err
	}
	return v, nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, bytes.TrimSpace(stderr.Bytes()))
	}
	return string(bytes.TrimSpace(out)), nil
}
