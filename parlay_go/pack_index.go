package parlay_go

import "runtime"

// PackIndex returns, in increasing order, every i in [0, n) for which keep(i) is true.
// keep is called concurrently from several goroutines.
func PackIndex(n int, keep func(i int) bool) []int {
	if n == 0 {
		return nil
	}
	team := NewTeam(min(runtime.GOMAXPROCS(0), n))

	// Static blocks are ordered by worker id, so concatenating locals keeps the order
	locals := make([][]int, team.Size())
	team.Run(func(w *Worker) {
		w.For(n, Static, 0, func(lo, hi int) {
			var local []int
			for i := lo; i < hi; i++ {
				if keep(i) {
					local = append(local, i)
				}
			}
			locals[w.ID] = local
		})
	})

	total := 0
	for _, l := range locals {
		total += len(l)
	}
	if total == 0 {
		return nil
	}
	result := make([]int, 0, total)
	for _, l := range locals {
		result = append(result, l...)
	}
	return result
}
