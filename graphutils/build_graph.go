package graphutils

import (
	"fmt"
	"math"
)

// FromCSR builds a Graph from forward CSR arrays and derives the reverse adjacency.
// offsets must have n+1 non-decreasing entries ending at len(edges); every target must be < n.
func FromCSR(offsets []uint64, edges []uint32) (*Graph, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("%w: offsets must have at least one entry", ErrMalformedGraph)
	}
	n := len(offsets) - 1
	m := len(edges)
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d vertices exceed int32 ids", ErrMalformedGraph, n)
	}
	if offsets[0] != 0 || offsets[n] != uint64(m) {
		return nil, fmt.Errorf("%w: offsets span [%d, %d], want [0, %d]", ErrMalformedGraph, offsets[0], offsets[n], m)
	}

	out := make([]int64, n+1)
	for u := 0; u < n; u++ {
		if offsets[u+1] < offsets[u] {
			return nil, fmt.Errorf("%w: offsets decrease at vertex %d", ErrMalformedGraph, u)
		}
		out[u+1] = int64(offsets[u+1])
	}
	targets := make([]int32, m)
	for i, v := range edges {
		if int(v) >= n {
			return nil, fmt.Errorf("%w: edge %d targets vertex %d of %d", ErrMalformedGraph, i, v, n)
		}
		targets[i] = int32(v)
	}

	g := &Graph{NumNodes: n, NumEdges: m, OutgoingStarts: out, OutgoingEdges: targets}
	g.IncomingStarts, g.IncomingEdges = transpose(n, out, targets)
	return g, nil
}

// FromAdjacency builds a Graph from an adjacency list (G[u] = out-neighbors of u)
func FromAdjacency(G [][]int) (*Graph, error) {
	n := len(G)
	offsets := make([]uint64, n+1)
	var edges []uint32
	for u, nbrs := range G {
		offsets[u+1] = offsets[u] + uint64(len(nbrs))
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: vertex %d has neighbor %d of %d", ErrMalformedGraph, u, v, n)
			}
			edges = append(edges, uint32(v))
		}
	}
	return FromCSR(offsets, edges)
}

// FromEdgeList builds a Graph with n vertices from directed (u, v) pairs
func FromEdgeList(n int, pairs [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedGraph, n)
	}
	G := make([][]int, n)
	for _, e := range pairs {
		u, v := e[0], e[1]
		if u < 0 || u >= n {
			return nil, fmt.Errorf("%w: edge source %d of %d", ErrMalformedGraph, u, n)
		}
		G[u] = append(G[u], v)
	}
	return FromAdjacency(G)
}

// AdjacencyLists turns the forward CSR back into an adjacency list [][]int
func (g *Graph) AdjacencyLists() [][]int {
	G := make([][]int, g.NumNodes)
	for u := 0; u < g.NumNodes; u++ {
		for _, v := range g.OutEdges(u) {
			G[u] = append(G[u], int(v))
		}
	}
	return G
}

// transpose builds reverse CSR arrays with a counting sort over targets.
// Sources of each vertex's incoming edges come out in increasing order.
func transpose(n int, starts []int64, targets []int32) ([]int64, []int32) {
	inStarts := make([]int64, n+1)
	for _, v := range targets {
		inStarts[v+1]++
	}
	for v := 0; v < n; v++ {
		inStarts[v+1] += inStarts[v]
	}
	next := make([]int64, n)
	copy(next, inStarts[:n])
	sources := make([]int32, len(targets))
	for u := 0; u < n; u++ {
		for i := starts[u]; i < starts[u+1]; i++ {
			v := targets[i]
			sources[next[v]] = int32(u)
			next[v]++
		}
	}
	return inStarts, sources
}
