// Package hybridbfs computes single-source hop distances on large directed
// graphs with a team of worker goroutines.
//
// Three strategies are offered:
//
//   - PushOnly (top-down): each round, frontier vertices claim their unvisited
//     out-neighbors with a compare-and-swap on the distance slot.
//   - PullOnly (bottom-up): each round, every unvisited vertex looks through its
//     in-neighbors for a member of the frontier.
//   - Hybrid: push while the frontier is smaller than Threshold*NumNodes, pull otherwise.
//
// All strategies produce identical distances for the same graph and root,
// regardless of the number of workers.
//
// The whole traversal runs inside one parallel region (parlay_go.Team). Each
// round goes through four barriers: after the next frontier is cleared, after
// the expansion step publishes its batches, after the frontiers are swapped and,
// when a MembershipView is in use, after the view is rebuilt.
//
// Usage
//
//	g, err := graphutils.LoadGraph("web.bin")
//	if err != nil {
//		// handle
//	}
//	dist := make([]int32, g.NumNodes)
//	err = hybridbfs.TraverseHybrid(g, dist,
//		hybridbfs.WithWorkers(8),
//		hybridbfs.WithThreshold(0.05),
//	)
//
// Unreachable vertices hold NotVisited (-1) afterwards.
package hybridbfs
