// © 2025 Purdue University ACM SIGBots. All rights reserved.
// Use of this source code is governed by the MPL-2.0
// license that can be found in the LICENSE.md file.

package patch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/purduesigbots/pros/logger"
	"github.com/purduesigbots/pros/syncx"
)

// ErrAlreadyPatched reports that the destination directory already exists,
// so the SDK is assumed to have been patched by an earlier run.
var ErrAlreadyPatched = errors.New("already patched")

// Options configures a patch run.
type Options struct {
	// Include is the directory holding the unpatched SDK headers.
	Include string
	// Out is the directory the patched headers are written into. Its
	// existence is the run-once guard: when present, [Apply] does nothing
	// and returns [ErrAlreadyPatched].
	Out string
	// DryRun logs the headers that would be patched without creating Out
	// or writing anything.
	DryRun bool
	// Jobs caps how many headers are patched concurrently. Zero or
	// negative means one per CPU.
	Jobs int
}

// Headers returns the names of the header files directly inside dir, in
// lexical order. Subdirectories and non-header files are skipped.
func Headers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".h") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Apply patches every header in opts.Include into opts.Out. Each header is
// transformed independently, so the files are processed concurrently; the
// first failure in enumeration order is returned after all workers finish.
func Apply(ctx context.Context, opts Options) error {
	if _, err := os.Stat(opts.Out); err == nil {
		return ErrAlreadyPatched
	}
	if !opts.DryRun {
		if err := os.MkdirAll(opts.Out, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", opts.Out, err)
		}
	}

	files, err := Headers(opts.Include)
	if err != nil {
		return err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	var (
		lwg  = syncx.NewLimitedWaitGroup(jobs)
		errs syncx.Map[string, error]
	)
	for _, name := range files {
		lwg.Go(func() {
			if err := patchFile(ctx, opts, name); err != nil {
				errs.Store(name, err)
			}
		})
	}
	lwg.Wait()

	for _, name := range files {
		if err, ok := errs.Load(name); ok {
			return err
		}
	}
	return nil
}

func patchFile(ctx context.Context, opts Options, name string) error {
	src, err := os.ReadFile(filepath.Join(opts.Include, name))
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	patched := Transform(src)
	if opts.DryRun {
		logger.Info(ctx, "would patch header", slog.String("file", name))
		return nil
	}
	if err := os.WriteFile(filepath.Join(opts.Out, name), patched, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	logger.Debug(ctx, "patched header",
		slog.String("file", name),
		slog.Int("bytes", len(patched)))
	return nil
}
