package bitutils

import "sync/atomic"

// FetchOr performs an atomic OR on *addr with mask and returns the previous value
func FetchOr(addr *uint64, mask uint64) uint64 {
	for {
		old := atomic.LoadUint64(addr) // Read the current value
		newVal := old | mask
		// Retry if someone else changed the word in the meantime
		if atomic.CompareAndSwapUint64(addr, old, newVal) {
			return old
		}
	}
}

// FetchAndNot atomically clears the bits of mask in *addr and returns the previous value
func FetchAndNot(addr *uint64, mask uint64) uint64 {
	for {
		old := atomic.LoadUint64(addr)
		if old&mask == 0 { // Nothing to clear
			return old
		}
		if atomic.CompareAndSwapUint64(addr, old, old&^mask) {
			return old
		}
	}
}

// ClaimInt32 atomically replaces *addr with val if it still holds sentinel.
// Exactly one caller wins for a given slot; losers get false.
func ClaimInt32(addr *int32, sentinel, val int32) bool {
	if atomic.LoadInt32(addr) != sentinel { // Cheap check before the CAS
		return false
	}
	return atomic.CompareAndSwapInt32(addr, sentinel, val)
}
