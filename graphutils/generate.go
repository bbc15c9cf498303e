package graphutils

import (
	"fmt"
	"math/rand/v2"
)

// Chain returns 0->1->...->n-1
func Chain(n int) *Graph {
	G := make([][]int, n)
	for u := 0; u+1 < n; u++ {
		G[u] = []int{u + 1}
	}
	return mustBuild(G)
}

// Star returns 0->1..k plus `isolated` vertices with no edges (ids k+1 onwards)
func Star(k, isolated int) *Graph {
	G := make([][]int, 1+k+isolated)
	for v := 1; v <= k; v++ {
		G[0] = append(G[0], v)
	}
	return mustBuild(G)
}

// Complete returns the complete directed graph on n vertices (no self loops)
func Complete(n int) *Graph {
	G := make([][]int, n)
	for u := 0; u < n; u++ {
		G[u] = make([]int, 0, n-1)
		for v := 0; v < n; v++ {
			if u != v {
				G[u] = append(G[u], v)
			}
		}
	}
	return mustBuild(G)
}

// Random returns a graph with n vertices where every vertex gets `degree`
// out-edges to uniformly random targets (duplicates and self loops allowed)
func Random(n, degree int, seed uint64) *Graph {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	G := make([][]int, n)
	for u := 0; u < n; u++ {
		G[u] = make([]int, degree)
		for i := range G[u] {
			G[u][i] = rng.IntN(n)
		}
	}
	return mustBuild(G)
}

// Burst returns a graph whose frontier is tiny for the first rounds and then
// jumps to a large fraction of the vertices, so a direction-switching traversal
// runs push rounds first and pull rounds afterwards.
//
// Layout (n >= 4): 0 -> 1; hub 1 -> [2, h); each v in [h, n) has one parent in [2, h)
// plus an edge back to 0; h = n/2.
func Burst(n int) *Graph {
	if n < 4 {
		return Chain(n)
	}
	h := n / 2
	G := make([][]int, n)
	G[0] = []int{1}
	for v := 2; v < h; v++ {
		G[1] = append(G[1], v)
	}
	width := h - 2
	for v := h; v < n; v++ {
		p := 2 + (v-h)%width
		G[p] = append(G[p], v)
		G[v] = append(G[v], 0)
	}
	return mustBuild(G)
}

// SelectRoot picks a random vertex with at least one outgoing edge, falling back to 0.
// Candidates are tried in a random order, so every vertex with edges is equally likely.
func SelectRoot(g *Graph, seed uint64) int {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	for _, v := range rng.Perm(g.NumNodes) {
		if g.OutDegree(v) > 0 {
			return v
		}
	}
	return 0
}

// Generate builds a graph by kind name, as used by the CLI's gen command
func Generate(kind string, nodes, degree int, seed uint64) (*Graph, error) {
	if nodes < 1 {
		return nil, fmt.Errorf("generate %s: need at least 1 node, got %d", kind, nodes)
	}
	switch kind {
	case "chain":
		return Chain(nodes), nil
	case "star":
		return Star(nodes-1, 0), nil
	case "complete":
		return Complete(nodes), nil
	case "random":
		return Random(nodes, degree, seed), nil
	case "burst":
		return Burst(nodes), nil
	default:
		return nil, fmt.Errorf("generate: unknown kind %q", kind)
	}
}

// Generators only produce in-range ids
func mustBuild(G [][]int) *Graph {
	g, err := FromAdjacency(G)
	if err != nil {
		panic(err)
	}
	return g
}
