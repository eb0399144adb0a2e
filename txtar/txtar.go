// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package txtar implements a trivial text-based file archive format,
// modeled on the format used by the Go project's test fixtures.
//
// The format is line-oriented. An archive is an optional comment followed
// by a sequence of files, each introduced by a marker line of the form
//
//	-- filename --
//
// and followed by the file's contents up to the next marker line. The
// format makes no provision for file contents containing marker lines or
// for files without a final newline; both are silently normalized.
package txtar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a single file in an archive.
type File struct {
	Name string
	Data []byte
}

// Archive is a collection of files with an optional leading comment.
type Archive struct {
	Comment []byte
	Files   []File
}

// Format serializes an archive back into its textual form. Files that do
// not end with a newline gain one, so Parse(Format(a)) reproduces a up to
// that normalization.
func Format(a *Archive) []byte {
	var buf bytes.Buffer
	buf.Write(fixNL(a.Comment))
	for _, f := range a.Files {
		fmt.Fprintf(&buf, "-- %s --\n", f.Name)
		buf.Write(fixNL(f.Data))
	}
	return buf.Bytes()
}

// ParseFile parses the named file as an archive.
func ParseFile(name string) (*Archive, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Parse parses data as an archive. Parsing never fails: unterminated or
// malformed input simply ends up in the comment or the last file.
func Parse(data []byte) *Archive {
	a := &Archive{Comment: []byte{}, Files: []File{}}
	var name string
	a.Comment, name, data = findMarker(data)
	for name != "" {
		f := File{Name: name}
		f.Data, name, data = findMarker(data)
		a.Files = append(a.Files, f)
	}
	return a
}

// findMarker scans data for the next marker line. It returns everything
// before the marker (with a newline fixup applied), the file name named by
// the marker, and the rest of the data after the marker line. A missing
// marker returns the whole input as before.
func findMarker(data []byte) (before []byte, name string, after []byte) {
	rest := data
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i+1], rest[i+1:]
		} else {
			rest = nil
		}
		if name = markerName(line); name != "" {
			return fixNL(data[:len(data)-len(line)-len(rest)]), name, rest
		}
	}
	return fixNL(data), "", nil
}

// markerName extracts the file name from a marker line, or returns ""
// if the line is not a marker.
func markerName(line []byte) string {
	s := strings.TrimSuffix(string(line), "\n")
	if !strings.HasPrefix(s, "-- ") || !strings.HasSuffix(s, " --") {
		return ""
	}
	return strings.TrimSpace(s[len("-- ") : len(s)-len(" --")])
}

// fixNL appends a final newline to data if it is non-empty and lacks one.
func fixNL(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return data
	}
	return append(append([]byte{}, data...), '\n')
}

// FromDir builds an archive from the contents of a directory tree. File
// names in the archive are slash-separated and relative to dir.
func FromDir(dir string) (*Archive, error) {
	a := new(Archive)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		a.Files = append(a.Files, File{Name: filepath.ToSlash(rel), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Extract writes each file of the archive into dir, creating parent
// directories as needed. File names that escape dir are rejected.
func Extract(a *Archive, dir string) error {
	for _, f := range a.Files {
		name := filepath.FromSlash(f.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("txtar: file name %q escapes the target directory", f.Name)
		}
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
