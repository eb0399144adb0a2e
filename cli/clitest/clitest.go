// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven test harness for [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/purduesigbots/pros/cli"
)

// Case describes a single invocation of an application under test.
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the application.
	Args []string
	// Env holds the environment variables visible to the application.
	Env map[string]string
	// Stdin is the application's standard input. Empty if nil.
	Stdin io.Reader
	// WantErr, if set, requires the run to fail with an error matching it
	// per [errors.Is].
	WantErr error
	// WantErrType, if set, requires the run to fail with an error whose
	// type matches it per [errors.As].
	WantErrType any
	// WantInStdout and WantInStderr are substrings that must appear in the
	// respective stream.
	WantInStdout string
	WantInStderr string
	// WantNothingPrinted requires both streams to be empty.
	WantNothingPrinted bool
	// CheckFunc runs after the invocation, with the application instance,
	// for custom assertions.
	CheckFunc func(*testing.T, App)
}

// Run executes each case against a fresh application instance constructed
// by setup.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(t.Context(), env), app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want an error matching %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType))
				if !errors.As(err, target.Interface()) {
					t.Fatalf("want an error of type %T, got %v", tc.WantErrType, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("nothing must be printed to stdout, got: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("nothing must be printed to stderr, got: %q", stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
