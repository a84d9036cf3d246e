// Package parallel provides the one multi-arity parallel row-zip primitive
// every operator's witness generator uses, factored out per §9's "Parallel
// zip-iteration" design note instead of each component hand-rolling its own
// goroutine fan-out the way the teacher's core/field_batch.go does for
// batch inversion.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkThreshold mirrors the teacher's own batch-inversion cutoff: below
// this many rows, the goroutine dispatch overhead is not worth it.
const chunkThreshold = 1000

// ZipRows calls fn(i) once for every row index in [0, n), fanning out
// across chunks of roughly equal size when n is large enough to be worth
// the dispatch, and sequentially otherwise. fn must only touch row i's
// slice of each column — the same "disjoint rows of freshly allocated
// columns" contract §5 describes for witness generation. The first error
// any chunk returns is propagated; other in-flight chunks still run to
// completion before ZipRows returns (errgroup's own fail-fast behavior is
// not needed here because callers must not observe partial writes either
// way, and trace generation never errors per-row).
func ZipRows(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	if n < chunkThreshold {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	g, _ := errgroup.WithContext(context.Background())
	for start := 0; start < n; start += chunkSize {
		start := start
		end := start + chunkSize
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
