package parlay_go

import (
	"runtime"
	"sync"
)

// Fill sets every element of dst to v, splitting the work across logical CPUs
func Fill[T any](dst []T, v T) {
	n := len(dst)
	if n == 0 { // To avoid "integer divide by zero" when calculating chunk later
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(d []T) {
			defer wg.Done()
			for j := range d {
				d[j] = v
			}
		}(dst[start:end])
	}
	wg.Wait()
}
