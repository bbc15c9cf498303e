package hybridbfs

import "hybridbfs/graphutils"

// SequentialBFS runs a plain single-threaded FIFO BFS from root and returns the
// same distances the parallel strategies produce. It serves as a reference.
// root must be a vertex of g.
func SequentialBFS(g *graphutils.Graph, root int) []int32 {
	D := make([]int32, g.NumNodes)
	for i := range D {
		D[i] = NotVisited
	}
	D[root] = 0

	queue := make([]int32, 0, g.NumNodes)
	queue = append(queue, int32(root))
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		nd := D[u] + 1
		for _, v := range g.OutEdges(int(u)) {
			if D[v] == NotVisited {
				D[v] = nd
				queue = append(queue, v)
			}
		}
	}
	return D
}
