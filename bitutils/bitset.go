package bitutils

import (
	"math/bits"
	"sync/atomic"
)

// Words returns the number of uint64 words needed to hold n bits
func Words(n int) int {
	return (n + 63) >> 6
}

// Set atomically sets bit i in words
func Set(words []uint64, i int) {
	FetchOr(&words[i>>6], 1<<(uint(i)&63))
}

// Clear atomically clears bit i in words
func Clear(words []uint64, i int) {
	FetchAndNot(&words[i>>6], 1<<(uint(i)&63))
}

// Test reports whether bit i is set.
// Callers must order the read after the last Set/Clear (e.g. by a barrier).
func Test(words []uint64, i int) bool {
	return atomic.LoadUint64(&words[i>>6])&(1<<(uint(i)&63)) != 0
}

// Count returns the number of set bits
func Count(words []uint64) int {
	c := 0
	for i := range words {
		c += bits.OnesCount64(atomic.LoadUint64(&words[i]))
	}
	return c
}
