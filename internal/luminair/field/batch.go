package field

import (
	"fmt"
	"sync"
)

// parallelBatchThreshold is the batch size from which
// ParallelBatchInverseQM31 splits work across goroutines, mirroring the teacher's
// ParallelBatchInversion chunking threshold for big batches.
const parallelBatchThreshold = 1000

// BatchInverseQM31 inverts every element of in using Montgomery's trick:
// accumulate running products, invert once, then back-substitute. This is
// the only place the LogUp interaction-trace generators (C5) invert field
// elements, since every denominator in a column needs inverting and a
// per-row Inv() call would dominate interaction-trace cost otherwise.
func BatchInverseQM31(in []QM31) ([]QM31, error) {
	n := len(in)
	if n == 0 {
		return []QM31{}, nil
	}
	if n == 1 {
		if in[0].IsZero() {
			return nil, fmt.Errorf("field: cannot invert zero element at index 0")
		}
		return []QM31{in[0].Inv()}, nil
	}
	for i, v := range in {
		if v.IsZero() {
			return nil, fmt.Errorf("field: cannot invert zero element at index %d", i)
		}
	}

	acc := make([]QM31, n)
	acc[0] = in[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(in[i])
	}

	accInv := acc[n-1].Inv()

	out := make([]QM31, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(in[i])
	}
	out[0] = accInv
	return out, nil
}

// ParallelBatchInverseQM31 runs BatchInverseQM31 over independent chunks in
// parallel for large batches, then reassembles results in order. Below
// parallelBatchThreshold it degrades to the sequential path.
func ParallelBatchInverseQM31(in []QM31, numWorkers int) ([]QM31, error) {
	n := len(in)
	if n < parallelBatchThreshold || numWorkers <= 1 {
		return BatchInverseQM31(in)
	}

	chunkSize := (n + numWorkers - 1) / numWorkers
	out := make([]QM31, n)

	var wg sync.WaitGroup
	errCh := make(chan error, numWorkers)

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			inverted, err := BatchInverseQM31(in[start:end])
			if err != nil {
				errCh <- err
				return
			}
			copy(out[start:end], inverted)
		}(start, end)
	}

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}
	return out, nil
}
