package hybridbfs

import "sync/atomic"

// Frontier is the set of vertices admitted in one round, stored as an
// append-only sequence with a shared count. Capacity is fixed at creation
// (the vertex count is an upper bound because every vertex is admitted once).
//
// Many workers may publish into the same Frontier concurrently: each reserves
// a private range with ReserveBulk and fills it with AppendAt.
type Frontier struct {
	vertices []int32
	count    atomic.Int64
}

// NewFrontier allocates a frontier able to hold capacity vertices
func NewFrontier(capacity int) *Frontier {
	return &Frontier{vertices: make([]int32, capacity)}
}

// Clear resets the count to zero. It must be called by exactly one worker,
// with the team synchronized before and after.
func (f *Frontier) Clear() {
	f.count.Store(0)
}

// ReserveBulk atomically claims n slots and returns the offset of the first one.
// Ranges returned to different callers never overlap.
func (f *Frontier) ReserveBulk(n int) int {
	return int(f.count.Add(int64(n))) - n
}

// AppendAt copies batch into the range starting at offset, which must have
// been returned by ReserveBulk(len(batch)).
func (f *Frontier) AppendAt(offset int, batch []int32) {
	copy(f.vertices[offset:offset+len(batch)], batch)
}

// Push appends a single vertex. Not safe for concurrent use; intended for seeding.
func (f *Frontier) Push(v int32) {
	f.vertices[f.count.Load()] = v
	f.count.Add(1)
}

// Count returns the number of vertices in the frontier
func (f *Frontier) Count() int {
	return int(f.count.Load())
}

// Vertices returns the frontier contents. The slice aliases internal storage
// and is only meaningful until the next Clear.
func (f *Frontier) Vertices() []int32 {
	return f.vertices[:f.Count()]
}

// publish moves a worker's private batch into f with one reservation
func (f *Frontier) publish(batch []int32) {
	if len(batch) == 0 {
		return
	}
	f.AppendAt(f.ReserveBulk(len(batch)), batch)
}
