// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import "sync"

// parallelReduce sums f(0)..f(n-1) using nWorkers goroutines, each owning a
// contiguous tile of indices and a private partial sum; partials are then
// added together in a fixed tile order so the final total is reproducible
// for a given worker count; totals for different worker counts differ only
// by round-off (spec.md 5 and 9). nWorkers <= 1 runs serially.
func parallelReduce(n, nWorkers int, f func(int) float64) float64 {
	if n == 0 {
		return 0
	}
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > n {
		nWorkers = n
	}
	if nWorkers == 1 {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += f(i)
		}
		return sum
	}

	partials := make([]float64, nWorkers)
	tile := (n + nWorkers - 1) / nWorkers
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		lo := w * tile
		hi := lo + tile
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			s := 0.0
			for i := lo; i < hi; i++ {
				s += f(i)
			}
			partials[w] = s
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0.0
	for _, p := range partials {
		total += p
	}
	return total
}
