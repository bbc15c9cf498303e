package hybridbfs

import (
	"fmt"
	"log/slog"
	"strings"

	"hybridbfs/graphutils"
	"hybridbfs/parlay_go"
)

// NotVisited marks a distance slot whose vertex has not been reached
const NotVisited int32 = -1

// Strategy selects how rounds are expanded
type Strategy int

const (
	// PushOnly runs every round top-down
	PushOnly Strategy = iota
	// PullOnly runs every round bottom-up
	PullOnly
	// Hybrid picks push or pull per round from the frontier size
	Hybrid
)

// Strategies lists every strategy, in declaration order
var Strategies = []Strategy{PushOnly, PullOnly, Hybrid}

func (s Strategy) String() string {
	switch s {
	case PushOnly:
		return "push"
	case PullOnly:
		return "pull"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "push", "pull" or "hybrid" (case-insensitive) to a Strategy
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// Direction is the expansion step used by one round
type Direction int

const (
	// Push expands the frontier top-down along outgoing edges
	Push Direction = iota
	// Pull scans unvisited vertices bottom-up along incoming edges
	Pull
)

func (d Direction) String() string {
	if d == Pull {
		return "pull"
	}
	return "push"
}

// ChoosePull reports whether a round expanding frontierCount of numNodes vertices
// should run bottom-up. It is re-evaluated before every hybrid round.
func ChoosePull(frontierCount, numNodes int, threshold float64) bool {
	return float64(frontierCount) >= threshold*float64(numNodes)
}

// TraversePushOnly fills distances with hop counts from the root using top-down rounds only
func TraversePushOnly(g *graphutils.Graph, distances []int32, opts ...Option) error {
	return Traverse(g, distances, PushOnly, opts...)
}

// TraversePullOnly fills distances with hop counts from the root using bottom-up rounds only
func TraversePullOnly(g *graphutils.Graph, distances []int32, opts ...Option) error {
	return Traverse(g, distances, PullOnly, opts...)
}

// TraverseHybrid fills distances with hop counts from the root, switching direction per round
func TraverseHybrid(g *graphutils.Graph, distances []int32, opts ...Option) error {
	return Traverse(g, distances, Hybrid, opts...)
}

// Traverse computes, for every vertex, its hop distance from the root and writes
// it into distances (len NumNodes). Unreachable vertices get NotVisited.
// The previous contents of distances are ignored.
//
// Returns ErrGraphNil, ErrEmptyGraph, ErrDistanceBufferSize, ErrRootOutOfRange
// or ErrOptionViolation for invalid input; once started the traversal cannot fail.
func Traverse(g *graphutils.Graph, distances []int32, strategy Strategy, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if strategy != PushOnly && strategy != PullOnly && strategy != Hybrid {
		return fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, strategy)
	}
	if g.NumNodes < 1 {
		return ErrEmptyGraph
	}
	if len(distances) != g.NumNodes {
		return fmt.Errorf("%w: got %d, want %d", ErrDistanceBufferSize, len(distances), g.NumNodes)
	}
	if o.Root < 0 || o.Root >= g.NumNodes {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrRootOutOfRange, o.Root, g.NumNodes)
	}

	newTraversal(g, distances, strategy, o).run()
	return nil
}

// traversal is the state shared by the workers of one call
type traversal struct {
	g        *graphutils.Graph
	dist     []int32
	strategy Strategy
	opts     Options
	log      *slog.Logger

	cur, next *Frontier
	view      *MembershipView // nil for push-only
	team      *parlay_go.Team

	// Written by worker 0 inside Single sections only
	dir   Direction
	round int
}

func newTraversal(g *graphutils.Graph, dist []int32, strategy Strategy, o Options) *traversal {
	t := &traversal{
		g:        g,
		dist:     dist,
		strategy: strategy,
		opts:     o,
		log:      o.Logger,
		cur:      NewFrontier(g.NumNodes),
		next:     NewFrontier(g.NumNodes),
		team:     parlay_go.NewTeam(o.Workers),
	}
	if strategy != PushOnly {
		t.view = NewMembershipView(g.NumNodes)
	}
	return t
}

// direction returns the step for the coming round
func (t *traversal) direction() Direction {
	switch t.strategy {
	case PullOnly:
		return Pull
	case Hybrid:
		if ChoosePull(t.cur.Count(), t.g.NumNodes, t.opts.Threshold) {
			return Pull
		}
	}
	return Push
}

func (t *traversal) run() {
	parlay_go.Fill(t.dist, NotVisited)

	// Setup frontier with the root node
	root := int32(t.opts.Root)
	t.dist[root] = 0
	t.cur.Push(root)
	if t.view != nil {
		t.view.Mark(root)
	}
	t.log.Debug("traversal start", "strategy", t.strategy, "root", root,
		"nodes", t.g.NumNodes, "edges", t.g.NumEdges, "workers", t.team.Size())

	t.team.Run(func(w *parlay_go.Worker) {
		// cur only changes inside Single, so every worker sees the same count here
		for t.cur.Count() != 0 {
			// (a) one worker clears next and picks the direction
			w.Single(func() {
				t.next.Clear()
				t.dir = t.direction()
			})

			if t.dir == Pull {
				pullStep(w, t.g, t.view, t.next, t.dist, t.opts.PullSchedule, t.opts.PullChunk)
			} else {
				pushStep(w, t.g, t.cur, t.next, t.dist, t.opts.PushChunk)
			}
			// (b) every batch is published
			w.Barrier()

			// (c) swap current and next
			w.Single(t.finishRound)

			// (d) view matches the new frontier before anyone probes it
			if t.view != nil {
				t.view.Rebuild(w, t.next, t.cur)
				w.Barrier()
			}
		}
	})

	t.log.Debug("traversal done", "strategy", t.strategy, "rounds", t.round)
}

// finishRound runs on a single worker between barriers
func (t *traversal) finishRound() {
	stats := RoundStats{
		Round:        t.round,
		Direction:    t.dir,
		FrontierSize: t.cur.Count(),
		Discovered:   t.next.Count(),
	}
	t.cur, t.next = t.next, t.cur
	t.round++

	t.log.Debug("round", "round", stats.Round, "direction", stats.Direction,
		"frontier", stats.FrontierSize, "discovered", stats.Discovered)
	if t.opts.OnRound != nil {
		t.opts.OnRound(stats)
	}
}
