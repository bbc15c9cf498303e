package hybridbfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridbfs/parlay_go"
)

func frontierOf(capacity int, vs ...int32) *Frontier {
	f := NewFrontier(capacity)
	for _, v := range vs {
		f.Push(v)
	}
	return f
}

// After a rebuild the view holds exactly the current frontier; flags of the
// previous frontier do not linger into later rounds.
func TestMembershipRebuildDropsPreviousFrontier(t *testing.T) {
	const n = 200
	view := NewMembershipView(n)
	view.Mark(0)

	rounds := [][]int32{
		{0},
		{1, 2, 63, 64, 65},
		{3, 4, 127, 128, 199},
		{5},
	}
	team := parlay_go.NewTeam(4)
	for r := 1; r < len(rounds); r++ {
		prev := frontierOf(n, rounds[r-1]...)
		cur := frontierOf(n, rounds[r]...)
		team.Run(func(w *parlay_go.Worker) {
			view.Rebuild(w, prev, cur)
			w.Barrier()
		})

		require.Equal(t, len(rounds[r]), view.Count(), "round %d", r)
		for _, v := range rounds[r] {
			assert.True(t, view.Contains(v), "round %d: %d missing", r, v)
		}
		for _, v := range rounds[r-1] {
			assert.False(t, view.Contains(v), "round %d: stale %d", r, v)
		}
	}
}

func TestMembershipRebuildFromEmptyPrevious(t *testing.T) {
	view := NewMembershipView(10)
	view.Mark(0)
	cur := frontierOf(10, 4, 9)
	parlay_go.NewTeam(3).Run(func(w *parlay_go.Worker) {
		view.Rebuild(w, frontierOf(10, 0), cur)
		w.Barrier()
	})
	assert.False(t, view.Contains(0))
	assert.True(t, view.Contains(4))
	assert.True(t, view.Contains(9))
	assert.Equal(t, 2, view.Count())
}
