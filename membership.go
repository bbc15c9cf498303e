package hybridbfs

import (
	"hybridbfs/bitutils"
	"hybridbfs/parlay_go"
)

// MembershipView marks which vertices are in the current frontier, one bit per vertex.
// The pull step probes it instead of scanning the frontier sequence.
//
// The view is rebuilt once per round from the frontier pair: bits of the previous
// frontier are cleared and bits of the new one are set, so after every rebuild the
// view holds exactly the current frontier.
type MembershipView struct {
	words []uint64
	n     int
}

// NewMembershipView allocates an empty view over n vertices
func NewMembershipView(n int) *MembershipView {
	return &MembershipView{words: make([]uint64, bitutils.Words(n)), n: n}
}

// Contains reports whether v is in the frontier the view was last rebuilt from
func (m *MembershipView) Contains(v int32) bool {
	return bitutils.Test(m.words, int(v))
}

// Mark adds v to the view outside of a parallel region (seeding the root)
func (m *MembershipView) Mark(v int32) {
	bitutils.Set(m.words, int(v))
}

// Count returns the number of marked vertices
func (m *MembershipView) Count() int {
	return bitutils.Count(m.words)
}

// Rebuild is a collective operation: every worker of the team must call it.
// It unmarks prev's vertices and marks cur's in one statically partitioned loop.
// prev and cur are disjoint (a vertex is admitted in one round only), but their
// vertices can share bit words, hence the atomic bit operations.
// The caller must place a barrier between Rebuild and any reader.
func (m *MembershipView) Rebuild(w *parlay_go.Worker, prev, cur *Frontier) {
	old, now := prev.Vertices(), cur.Vertices()
	w.For(len(old)+len(now), parlay_go.Static, 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if i < len(old) {
				bitutils.Clear(m.words, int(old[i]))
			} else {
				bitutils.Set(m.words, int(now[i-len(old)]))
			}
		}
	})
}
