package graphutils

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSRBuildsReverseAdjacency(t *testing.T) {
	// 0->1, 0->2, 1->2, 2->0
	g, err := FromCSR([]uint64{0, 2, 3, 4}, []uint32{1, 2, 2, 0})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes)
	assert.Equal(t, 4, g.NumEdges)
	assert.Equal(t, []int32{1, 2}, g.OutEdges(0))
	assert.Equal(t, []int32{2}, g.OutEdges(1))
	assert.Equal(t, []int32{2}, g.InEdges(0))
	assert.Equal(t, []int32{0}, g.InEdges(1))
	assert.Equal(t, []int32{0, 1}, g.InEdges(2))
	assert.Equal(t, 2, g.InDegree(2))
	assert.Equal(t, 1, g.OutDegree(2))
}

func TestFromCSRRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		offsets []uint64
		edges   []uint32
	}{
		{"no offsets", nil, nil},
		{"last offset short", []uint64{0, 1}, []uint32{0, 0}},
		{"decreasing", []uint64{0, 2, 1, 2}, []uint32{0, 1}},
		{"target out of range", []uint64{0, 1}, []uint32{5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromCSR(tc.offsets, tc.edges)
			assert.ErrorIs(t, err, ErrMalformedGraph)
		})
	}
}

func TestFromEdgeListAndAdjacencyLists(t *testing.T) {
	g, err := FromEdgeList(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3}, {2}, {3}, nil}, g.AdjacencyLists())

	_, err = FromEdgeList(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, ErrMalformedGraph)
	_, err = FromEdgeList(2, [][2]int{{-1, 0}})
	assert.ErrorIs(t, err, ErrMalformedGraph)
}

func TestBinRoundTrip(t *testing.T) {
	g := Random(200, 5, 7)
	var buf bytes.Buffer
	require.NoError(t, WriteGraphToBin(&buf, g))

	h, err := Peek(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, uint64(200), h.N)
	assert.Equal(t, uint64(1000), h.M)

	back, err := ReadGraphFromBin(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestReadGraphFromBinSizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint64{1, 0, 999, 0, 0}))
	_, err := ReadGraphFromBin(&buf)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestReadBytePD(t *testing.T) {
	var buf bytes.Buffer
	// n=3, m=3, degrees 2,0,1, edges 1 2 0
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint64{3, 3, 2, 0, 1, 1, 2, 0}))
	g, err := ReadBytePD(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, g.OutEdges(0))
	assert.Empty(t, g.OutEdges(1))
	assert.Equal(t, []int32{0}, g.OutEdges(2))
	assert.Equal(t, []int32{2}, g.InEdges(0))
}

func TestReadAdjList(t *testing.T) {
	src := `# tiny graph
0 1 2
1 3

2 3
`
	g, err := ReadAdjList(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumNodes)
	assert.Equal(t, 4, g.NumEdges)
	assert.Equal(t, []int32{1, 2}, g.InEdges(3))

	_, err = ReadAdjList(strings.NewReader("0 x\n"))
	assert.ErrorIs(t, err, ErrMalformedGraph)
}

func TestGenerators(t *testing.T) {
	assert.Equal(t, 3, Chain(4).NumEdges)
	assert.Equal(t, 0, Chain(1).NumEdges)

	s := Star(5, 1)
	assert.Equal(t, 7, s.NumNodes)
	assert.Equal(t, 5, s.OutDegree(0))
	assert.Zero(t, s.InDegree(6))

	assert.Equal(t, 5*4, Complete(5).NumEdges)

	b := Burst(100)
	assert.Equal(t, []int32{1}, b.OutEdges(0))
	assert.Equal(t, 48, b.OutDegree(1))

	r1, r2 := Random(50, 3, 11), Random(50, 3, 11)
	assert.Equal(t, r1, r2, "same seed must give the same graph")

	_, err := Generate("nope", 10, 1, 0)
	assert.Error(t, err)
	_, err = Generate("chain", 0, 1, 0)
	assert.Error(t, err)
}

func TestSelectRoot(t *testing.T) {
	g := Star(3, 4)
	assert.Equal(t, 0, SelectRoot(g, 1), "only vertex 0 has edges")
	assert.Equal(t, 0, SelectRoot(Star(0, 3), 1))
}
