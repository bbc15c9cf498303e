package parlay_go

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Schedule selects how For splits an iteration range across workers
type Schedule int

const (
	// Static gives each worker one contiguous block, fixed by worker id
	Static Schedule = iota
	// Dynamic hands out fixed-size chunks from a shared cursor
	Dynamic
	// Guided hands out chunks proportional to the remaining work, never smaller than the chunk size
	Guided
)

func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Guided:
		return "guided"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// Team is a fixed set of worker goroutines that run one parallel region together.
// Inside the region workers meet at Barrier, run Single sections and share For loops.
type Team struct {
	workers int
	barrier *Barrier
	// Loop cursors alternate between consecutive For calls (see Worker.For)
	cursors [2]atomic.Int64
}

// NewTeam creates a team of the given size; workers <= 0 means runtime.GOMAXPROCS(0)
func NewTeam(workers int) *Team {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Team{workers: workers, barrier: NewBarrier(workers)}
}

// Size returns the number of workers
func (t *Team) Size() int {
	return t.workers
}

// Run starts every worker on fn and returns once all of them have returned.
// Every worker must make the same sequence of Barrier, Single and For calls.
func (t *Team) Run(fn func(w *Worker)) {
	t.cursors[0].Store(0)
	t.cursors[1].Store(0)

	var wg sync.WaitGroup
	wg.Add(t.workers)
	for id := 0; id < t.workers; id++ {
		go func(id int) {
			defer wg.Done()
			fn(&Worker{ID: id, team: t})
		}(id)
	}
	wg.Wait()
}

// Worker is one member of a running Team. It is owned by a single goroutine.
type Worker struct {
	ID   int
	team *Team
	seq  int // number of For loops this worker has entered
}

// Workers returns the team size
func (w *Worker) Workers() int {
	return w.team.workers
}

// Barrier blocks until every worker of the team reaches it
func (w *Worker) Barrier() {
	w.team.barrier.Wait()
}

// Single runs fn on worker 0 only, then synchronizes the whole team,
// so every worker observes fn's effects after Single returns.
func (w *Worker) Single(fn func()) {
	if w.ID == 0 {
		fn()
	}
	w.Barrier()
}

// For splits [0, n) across the team and calls body on each of this worker's sub-ranges.
// Every index is handed to exactly one worker. There is no barrier at the end of the
// loop; consecutive For calls must be separated by at least one Barrier or Single.
func (w *Worker) For(n int, sched Schedule, chunk int, body func(lo, hi int)) {
	t := w.team
	slot := w.seq & 1
	w.seq++
	// The other cursor was last used by the previous loop, which every worker
	// has left (a barrier separates it from this one). Reset it for the next loop.
	t.cursors[slot^1].Store(0)

	if n <= 0 {
		return
	}
	if chunk < 1 {
		chunk = 1
	}
	cursor := &t.cursors[slot]

	switch sched {
	case Dynamic:
		for {
			hi := int(cursor.Add(int64(chunk)))
			lo := hi - chunk
			if lo >= n {
				return
			}
			body(lo, min(hi, n))
		}
	case Guided:
		for {
			lo := int(cursor.Load())
			if lo >= n {
				return
			}
			size := max((n-lo)/(2*t.workers), chunk)
			hi := min(lo+size, n)
			if cursor.CompareAndSwap(int64(lo), int64(hi)) {
				body(lo, hi)
			}
		}
	default:
		lo, hi := StaticRange(n, t.workers, w.ID)
		if lo < hi {
			body(lo, hi)
		}
	}
}

// StaticRange returns the contiguous block of [0, n) owned by worker id out of workers
func StaticRange(n, workers, id int) (lo, hi int) {
	chunk := (n + workers - 1) / workers
	lo = id * chunk
	hi = lo + chunk
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
