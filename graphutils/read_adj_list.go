package graphutils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadAdjList reads a text adjacency list and builds a Graph.
// Each non-empty line is "u v1 v2 ...": directed edges u->v1, u->v2, ...
// Lines starting with '#' are comments. The vertex count is the largest id seen plus one.
func ReadAdjList(r io.Reader) (*Graph, error) {
	var G [][]int // Output graph (adjacency list)
	maxID := -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		tok := strings.Fields(sc.Text())
		if len(tok) == 0 || strings.HasPrefix(tok[0], "#") {
			continue
		}
		ids := make([]int, len(tok))
		for i, s := range tok {
			v, err := strconv.Atoi(s)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: bad vertex id %q", ErrMalformedGraph, line, s)
			}
			ids[i] = v
			maxID = max(maxID, v)
		}
		u := ids[0]
		for len(G) <= u { // Guarantee G is long enough so that index u exists
			G = append(G, nil)
		}
		G[u] = append(G[u], ids[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read adjacency list: %w", err)
	}
	for len(G) <= maxID {
		G = append(G, nil)
	}
	return FromAdjacency(G)
}
