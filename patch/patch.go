// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package patch rewrites the vendor SDK headers so that the kernel, built
// with the hard-float ABI, can link against libv5rts, which is built with
// the soft-float one. Every function declaration in a header gets an
// attribute forcing the AAPCS calling convention for that one function;
// mixing the two ABIs without it silently corrupts floating-point
// arguments at the call boundary.
//
// The rewriter is a heuristic line classifier tuned to the layout of the
// libv5rts headers, not a C parser. Lines it cannot positively identify
// pass through untouched.
package patch

import (
	"bytes"
	"strings"
)

// Attr is the attribute inserted before every function declaration.
const Attr = `__attribute__((pcs("aapcs")))`

// Category is the classification of a single header line.
type Category int

const (
	// Continuation is a line inside a multi-line preprocessor macro. It is
	// determined by the state of [Transform], never returned by
	// [Classify], and is the only category dropped from the output.
	Continuation Category = iota
	// Comment lines start with "/" or "*" after stripping whitespace.
	Comment
	// Directive lines are preprocessor directives, starting with "#".
	Directive
	// Block lines open or close a brace block, including extern "C".
	Block
	// TypeDecl lines open a typedef, struct or enum.
	TypeDecl
	// Blank lines are empty or all-whitespace.
	Blank
	// Other is anything left that does not contain ");". Unrecognized
	// header syntax lands here and passes through unmodified.
	Other
	// Decl is a function declaration. The only category whose lines are
	// rewritten.
	Decl
)

var categoryNames = [...]string{
	"Continuation", "Comment", "Directive", "Block", "TypeDecl", "Blank", "Other", "Decl",
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// rules is the classifier's decision table. Rules are tried in order and
// the first match wins, so a comment or macro that happens to contain ");"
// is never mistaken for a declaration. Each predicate gets the line both
// stripped of surrounding whitespace and raw.
var rules = []struct {
	cat   Category
	match func(stripped, raw string) bool
}{
	{Comment, func(s, _ string) bool { return hasAnyPrefix(s, "/", "*") }},
	{Directive, func(s, _ string) bool { return strings.HasPrefix(s, "#") }},
	{Block, func(s, _ string) bool { return hasAnyPrefix(s, "}", "{", "extern") }},
	{TypeDecl, func(s, _ string) bool { return hasAnyPrefix(s, "typedef", "struct", "enum") }},
	{Blank, func(s, _ string) bool { return s == "" }},
	{Other, func(_, raw string) bool { return !strings.Contains(raw, ");") }},
}

// Classify assigns a category to a single line, ignoring macro
// continuation state. Lines matching no rule are declarations.
func Classify(line string) Category {
	stripped := strings.TrimSpace(line)
	for _, r := range rules {
		if r.match(stripped, line) {
			return r.cat
		}
	}
	return Decl
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Transform rewrites one header. Declaration lines gain the [Attr] prefix,
// the bodies of multi-line macros are dropped, and everything else is
// copied through byte for byte, line terminators included. The result
// depends only on src.
func Transform(src []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(src) + len(src)/16)

	inMacro := false
	for rest := src; len(rest) > 0; {
		var line, eol string
		line, eol, rest = cutLine(rest)

		if inMacro {
			// Macro body lines are dropped, even when they contain ");".
			if !strings.HasSuffix(line, `\`) {
				inMacro = false
			}
			continue
		}

		switch Classify(line) {
		case Directive:
			if strings.HasSuffix(line, `\`) {
				inMacro = true
			}
		case Decl:
			out.WriteString(Attr)
			out.WriteByte(' ')
		}
		out.WriteString(line)
		out.WriteString(eol)
	}
	return out.Bytes()
}

// cutLine splits off the first line of b, returning its content without
// the terminator, the terminator itself ("\n", "\r\n", or "" at end of
// input), and the remainder.
func cutLine(b []byte) (line, eol string, rest []byte) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return string(b), "", nil
	}
	line, rest = string(b[:i]), b[i+1:]
	eol = "\n"
	if strings.HasSuffix(line, "\r") {
		line, eol = strings.TrimSuffix(line, "\r"), "\r\n"
	}
	return line, eol, rest
}
