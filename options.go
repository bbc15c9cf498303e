package hybridbfs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"hybridbfs/parlay_go"
)

// Sentinel errors for traversal setup. Nothing fails once the traversal has started.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("bfs: graph has no vertices")

	// ErrDistanceBufferSize is returned when len(distances) != NumNodes.
	ErrDistanceBufferSize = errors.New("bfs: distance buffer length does not match vertex count")

	// ErrRootOutOfRange is returned when the root is not a vertex of the graph.
	ErrRootOutOfRange = errors.New("bfs: root vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// DefaultThreshold is the frontier fraction of all vertices at which the hybrid
// strategy switches from push to pull.
const DefaultThreshold = 0.03

// RoundStats describes one completed round, as passed to the OnRound hook
type RoundStats struct {
	Round        int       // index of the round; vertices admitted in it have distance Round+1
	Direction    Direction // expansion step that ran
	FrontierSize int       // vertices expanded
	Discovered   int       // vertices admitted (size of the next frontier)
}

// Option configures a traversal via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by the traversal.
type Option func(*Options)

// Options holds the tunables of a traversal
type Options struct {
	// Root is the source vertex (0 by default).
	Root int

	// Workers is the team size; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Threshold is the hybrid switch point as a fraction of all vertices.
	Threshold float64

	// PushChunk is the number of frontier entries handed out per dynamic chunk.
	PushChunk int

	// PullSchedule and PullChunk control how the vertex range is split in pull rounds.
	PullSchedule parlay_go.Schedule
	PullChunk    int

	// Logger receives per-round debug records. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnRound, if set, is called once per round by a single worker, after the
	// round's frontier is complete. It must not retain the frontier.
	OnRound func(RoundStats)

	err error
}

// DefaultOptions returns root 0, GOMAXPROCS workers, the 3% threshold,
// dynamic push chunks of 64 and guided pull chunks of at least 1024.
func DefaultOptions() Options {
	return Options{
		Root:         0,
		Workers:      0,
		Threshold:    DefaultThreshold,
		PushChunk:    64,
		PullSchedule: parlay_go.Guided,
		PullChunk:    1024,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRoot sets the source vertex.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// WithWorkers sets the number of workers; 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithThreshold sets the push/pull switch point as a fraction of all vertices.
// 0 makes every hybrid round pull; values above 1 make every round push.
func WithThreshold(f float64) Option {
	return func(o *Options) {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			o.err = fmt.Errorf("%w: Threshold must be a finite non-negative fraction (%v)", ErrOptionViolation, f)
			return
		}
		o.Threshold = f
	}
}

// WithChunkSize sets the dynamic chunk size of push rounds.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: chunk size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.PushChunk = n
	}
}

// WithPullSchedule sets how pull rounds split the vertex range.
// For Guided, chunk is the minimum chunk size.
func WithPullSchedule(sched parlay_go.Schedule, chunk int) Option {
	return func(o *Options) {
		switch {
		case sched != parlay_go.Static && sched != parlay_go.Dynamic && sched != parlay_go.Guided:
			o.err = fmt.Errorf("%w: unknown schedule %v", ErrOptionViolation, sched)
		case chunk < 1:
			o.err = fmt.Errorf("%w: pull chunk must be positive (%d)", ErrOptionViolation, chunk)
		default:
			o.PullSchedule = sched
			o.PullChunk = chunk
		}
	}
}

// WithLogger routes per-round debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a hook called after every round.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
