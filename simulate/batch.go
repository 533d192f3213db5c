// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/fisheries/params"
)

// Job is one independent run in a batch.
type Job struct {
	Name    string
	Record  *params.Record
	Config  params.Config
	Options []Option
}

// BatchResult pairs a job with its outcome. Exactly one of Results and Err
// is set.
type BatchResult struct {
	Name    string
	Results *Results
	Err     error
}

// Batch runs jobs on at most workers goroutines and returns results in job
// order. workers <= 0 selects runtime.GOMAXPROCS(0).
//
// Cancelling ctx stops new runs from starting; their results carry
// ctx.Err(). A run that has already started completes.
func Batch(ctx context.Context, jobs []Job, workers int) []BatchResult {
	out := make([]BatchResult, len(jobs))
	if len(jobs) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				j := jobs[i]
				out[i].Name = j.Name
				if err := ctx.Err(); err != nil {
					out[i].Err = err
					continue
				}
				out[i].Results, out[i].Err = Run(j.Record, j.Config, j.Options...)
			}
		}()
	}

	for i := range jobs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return out
}
