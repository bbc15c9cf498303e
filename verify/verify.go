// Package verify checks a BFS distance buffer against the properties every
// correct hop-distance assignment must satisfy.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"hybridbfs/graphutils"
	"hybridbfs/parlay_go"
)

// ErrViolation is wrapped by every error returned from Check and Agree
var ErrViolation = errors.New("verify: property violated")

const notVisited = -1

// maxListed caps how many offending vertices an error message names
const maxListed = 8

// Property names a checked invariant
type Property string

const (
	RootZero     Property = "root-zero"     // dist[root] == 0
	EdgeStep     Property = "edge-step"     // u reachable, u->v: dist[v] <= dist[u]+1
	ParentExists Property = "parent-exists" // reachable v != root has an in-neighbor at dist[v]-1
	Range        Property = "range"         // every slot is -1 or in [0, NumNodes)
	Agreement    Property = "agreement"     // two buffers are identical
)

// Violation lists the vertices failing one property
type Violation struct {
	Property Property
	Vertices []int
}

func (v Violation) String() string {
	shown := v.Vertices
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	return fmt.Sprintf("%s at %d vertices %v", v.Property, len(v.Vertices), shown)
}

// Distances runs every single-buffer property over dist and returns the failures.
// Per-vertex checks run in parallel.
func Distances(g *graphutils.Graph, root int, dist []int32) []Violation {
	var out []Violation
	add := func(p Property, vs []int) {
		if len(vs) > 0 {
			out = append(out, Violation{Property: p, Vertices: vs})
		}
	}

	if dist[root] != 0 {
		add(RootZero, []int{root})
	}
	n := int32(g.NumNodes)
	add(Range, parlay_go.PackIndex(g.NumNodes, func(v int) bool {
		return dist[v] < notVisited || dist[v] >= n
	}))
	add(EdgeStep, parlay_go.PackIndex(g.NumNodes, func(u int) bool {
		if dist[u] == notVisited {
			return false
		}
		for _, v := range g.OutEdges(u) {
			if dist[v] == notVisited || dist[v] > dist[u]+1 {
				return true
			}
		}
		return false
	}))
	add(ParentExists, parlay_go.PackIndex(g.NumNodes, func(v int) bool {
		if v == root || dist[v] == notVisited {
			return false
		}
		for _, u := range g.InEdges(v) {
			if dist[u] != notVisited && dist[u] == dist[v]-1 {
				return false
			}
		}
		return true
	}))
	return out
}

// Check returns an error wrapping ErrViolation if dist fails any property
func Check(g *graphutils.Graph, root int, dist []int32) error {
	if len(dist) != g.NumNodes {
		return fmt.Errorf("%w: buffer has %d slots for %d vertices", ErrViolation, len(dist), g.NumNodes)
	}
	if root < 0 || root >= g.NumNodes {
		return fmt.Errorf("%w: root %d out of range", ErrViolation, root)
	}
	return asError(Distances(g, root, dist))
}

// Agree returns an error wrapping ErrViolation unless want and got are identical
func Agree(want, got []int32) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: lengths %d and %d differ", ErrViolation, len(want), len(got))
	}
	diff := parlay_go.PackIndex(len(want), func(i int) bool { return want[i] != got[i] })
	if len(diff) == 0 {
		return nil
	}
	return asError([]Violation{{Property: Agreement, Vertices: diff}})
}

func asError(vs []Violation) error {
	if len(vs) == 0 {
		return nil
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return fmt.Errorf("%w: %s", ErrViolation, strings.Join(parts, "; "))
}
