package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridbfs/graphutils"
)

func chain(t *testing.T) *graphutils.Graph {
	t.Helper()
	g, err := graphutils.FromEdgeList(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	return g
}

func TestCheckAcceptsCorrectDistances(t *testing.T) {
	assert.NoError(t, Check(chain(t), 0, []int32{0, 1, 2, 3, -1}))
}

func TestCheckReportsEachProperty(t *testing.T) {
	g := chain(t)
	tests := []struct {
		name string
		root int
		dist []int32
		want Property
	}{
		{"root not zero", 0, []int32{1, 1, 2, 3, -1}, RootZero},
		{"distance skips a level", 0, []int32{0, 1, 3, 4, -1}, EdgeStep},
		{"reachable neighbor left unvisited", 0, []int32{0, 1, -1, -1, -1}, EdgeStep},
		{"no parent one level up", 0, []int32{0, 1, 1, 2, -1}, ParentExists},
		{"out of range", 0, []int32{0, 1, 2, 3, 7}, Range},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vs := Distances(g, tc.root, tc.dist)
			var props []Property
			for _, v := range vs {
				props = append(props, v.Property)
			}
			assert.Contains(t, props, tc.want)
			assert.ErrorIs(t, Check(g, tc.root, tc.dist), ErrViolation)
		})
	}
}

func TestCheckRejectsUnreachableAtDistanceZero(t *testing.T) {
	// 2 is only reachable from 3, which is itself unvisited
	g, err := graphutils.FromEdgeList(4, [][2]int{{0, 1}, {3, 2}})
	require.NoError(t, err)
	dist := []int32{0, 1, 0, -1}

	vs := Distances(g, 0, dist)
	require.Len(t, vs, 1)
	assert.Equal(t, ParentExists, vs[0].Property)
	assert.Equal(t, []int{2}, vs[0].Vertices)
	assert.ErrorIs(t, Check(g, 0, dist), ErrViolation)
	assert.NoError(t, Check(g, 0, []int32{0, 1, -1, -1}))
}

func TestCheckRejectsBadArguments(t *testing.T) {
	g := chain(t)
	assert.ErrorIs(t, Check(g, 0, []int32{0}), ErrViolation)
	assert.ErrorIs(t, Check(g, 9, make([]int32, 5)), ErrViolation)
}

func TestAgree(t *testing.T) {
	assert.NoError(t, Agree([]int32{0, 1, -1}, []int32{0, 1, -1}))

	err := Agree([]int32{0, 1, -1}, []int32{0, 2, 1})
	require.ErrorIs(t, err, ErrViolation)
	assert.Contains(t, err.Error(), "agreement at 2 vertices [1 2]")

	assert.ErrorIs(t, Agree([]int32{0}, []int32{0, 1}), ErrViolation)
}
