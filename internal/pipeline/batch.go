package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result records the outcome of one file in a batch.
type Result struct {
	Input  string
	Output string
	Err    error
}

// ConvertDir converts every file in dir matching glob, fanning out
// over at most workers parallel conversions (workers <= 0 means one
// per logical CPU). Per-file failures are recorded in the returned
// results and never abort the batch; the call returns once every
// dispatched conversion has finished. Results follow the glob order
// of the inputs.
func ConvertDir(dir, glob string, workers int, opts Options) ([]Result, error) {
	inputs, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("bad file glob %q: %w", glob, err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// One slot per input, written only by that input's goroutine.
	results := make([]Result, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			out, err := Convert(input, OutputPath(input), opts)
			results[i] = Result{Input: input, Output: out, Err: err}
			if err != nil {
				slog.Error("could not convert to stamp PNG", "input", input, "error", err)
			}
			return nil
		})
	}
	// Task errors stay in results, so this only joins the group.
	_ = g.Wait()

	return results, nil
}
