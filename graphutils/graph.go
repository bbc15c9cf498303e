package graphutils

import "errors"

// ErrMalformedGraph is returned when offsets or edge targets are inconsistent
var ErrMalformedGraph = errors.New("graph: malformed adjacency")

// Graph is an immutable directed graph in dual compressed form.
// OutgoingStarts[v]..OutgoingStarts[v+1] indexes v's out-neighbors in OutgoingEdges,
// IncomingStarts[v]..IncomingStarts[v+1] indexes v's in-neighbors in IncomingEdges.
type Graph struct {
	NumNodes       int
	NumEdges       int
	OutgoingStarts []int64 // NumNodes+1 entries
	OutgoingEdges  []int32 // NumEdges entries
	IncomingStarts []int64 // NumNodes+1 entries
	IncomingEdges  []int32 // NumEdges entries
}

// OutEdges returns the targets of v's outgoing edges
func (g *Graph) OutEdges(v int) []int32 {
	return g.OutgoingEdges[g.OutgoingStarts[v]:g.OutgoingStarts[v+1]]
}

// InEdges returns the sources of v's incoming edges
func (g *Graph) InEdges(v int) []int32 {
	return g.IncomingEdges[g.IncomingStarts[v]:g.IncomingStarts[v+1]]
}

// OutDegree returns the number of outgoing edges of v
func (g *Graph) OutDegree(v int) int {
	return int(g.OutgoingStarts[v+1] - g.OutgoingStarts[v])
}

// InDegree returns the number of incoming edges of v
func (g *Graph) InDegree(v int) int {
	return int(g.IncomingStarts[v+1] - g.IncomingStarts[v])
}
