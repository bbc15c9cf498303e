package hybridbfs

import (
	"hybridbfs/bitutils"
	"hybridbfs/graphutils"
	"hybridbfs/parlay_go"
)

// pushStep runs one top-down round: every vertex of cur follows its outgoing
// edges and claims the unvisited targets, which are published into next.
//
// Concurrency contract: several workers can reach the same unvisited target in
// the same round, so admission goes through an atomic compare-and-swap on the
// target's distance slot. Exactly one worker wins; the others skip the vertex.
// Frontier indices are handed out dynamically because out-degrees vary widely.
//
// Every worker of the team must call pushStep; the caller synchronizes afterwards.
func pushStep(w *parlay_go.Worker, g *graphutils.Graph, cur, next *Frontier, dist []int32, chunk int) {
	batch := acquireBatch()
	defer releaseBatch(batch)

	local := *batch
	frontier := cur.Vertices()
	w.For(len(frontier), parlay_go.Dynamic, chunk, func(lo, hi int) {
		for _, u := range frontier[lo:hi] {
			// u was admitted in an earlier round; its slot is stable
			d := dist[u] + 1
			for _, v := range g.OutEdges(int(u)) {
				if bitutils.ClaimInt32(&dist[v], NotVisited, d) {
					local = append(local, v)
				}
			}
		}
	})

	next.publish(local)
	*batch = local
}
