// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package version reports identifying information about the currently
// running binary, read from its embedded build info.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/purduesigbots/pros/syncx"
)

// Info describes the running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string `json:"name"`
	// Version is the module version the binary was built from, or "devel"
	// for a build outside a released module.
	Version string `json:"version"`
	// Commit is the short hash of the commit the binary was built from,
	// with a "-dirty" suffix for builds with local modifications. Empty if
	// the build carries no VCS information.
	Commit string `json:"commit,omitempty"`
	// GoVersion is the version of the Go toolchain that built the binary.
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// String implements [fmt.Stringer].
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s)", i.Commit)
	}
	fmt.Fprintf(&sb, "\nbuilt with %s for %s/%s\n", i.GoVersion, i.OS, i.Arch)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns the build information of the running binary. The result
// is computed once and cached.
func Version() Info { return info.Get(load) }

func load() Info {
	i := Info{
		Name:      CmdName(),
		Version:   "devel",
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
			if len(i.Commit) > 8 {
				i.Commit = i.Commit[:8]
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if modified && i.Commit != "" {
		i.Commit += "-dirty"
	}
	return i
}

var cmdName syncx.Lazy[string]

// CmdName returns the base name of the running binary, without the ".exe"
// suffix on Windows.
func CmdName() string {
	return cmdName.Get(func() string {
		exe, err := os.Executable()
		if err != nil {
			return "pros"
		}
		return strings.TrimSuffix(filepath.Base(exe), ".exe")
	})
}
