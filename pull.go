package hybridbfs

import (
	"hybridbfs/graphutils"
	"hybridbfs/parlay_go"
)

// pullStep runs one bottom-up round: every unvisited vertex scans its incoming
// edges for a parent in the current frontier (as recorded by view). The first
// parent found fixes the vertex's distance, and the vertex is published into next.
//
// Concurrency contract: the vertex range is partitioned so that each vertex is
// scanned by exactly one worker, which is therefore its only writer in this round.
// The distance slot is written without synchronization; any schedule used here
// must keep that single-owner property (Static, Dynamic and Guided all do).
//
// Every worker of the team must call pullStep; the caller synchronizes afterwards.
func pullStep(w *parlay_go.Worker, g *graphutils.Graph, view *MembershipView, next *Frontier, dist []int32, sched parlay_go.Schedule, chunk int) {
	batch := acquireBatch()
	defer releaseBatch(batch)

	local := *batch
	w.For(g.NumNodes, sched, chunk, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			if dist[v] != NotVisited {
				continue
			}
			for _, u := range g.InEdges(v) {
				if view.Contains(u) {
					dist[v] = dist[u] + 1
					local = append(local, int32(v))
					break // First parent suffices
				}
			}
		}
	})

	next.publish(local)
	*batch = local
}
