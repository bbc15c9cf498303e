package bitutils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOrReturnsPrevious(t *testing.T) {
	var w uint64 = 0b0101
	old := FetchOr(&w, 0b0010)
	assert.Equal(t, uint64(0b0101), old)
	assert.Equal(t, uint64(0b0111), w)

	old = FetchAndNot(&w, 0b0100)
	assert.Equal(t, uint64(0b0111), old)
	assert.Equal(t, uint64(0b0011), w)
}

func TestClaimInt32SingleWinner(t *testing.T) {
	slot := int32(-1)
	const goroutines = 64
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int32) {
			defer wg.Done()
			if ClaimInt32(&slot, -1, id) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(int32(g))
	}
	wg.Wait()
	require.Equal(t, int32(1), wins)
	assert.NotEqual(t, int32(-1), slot)
}

// Concurrent Set on bits that share words must not lose updates.
func TestBitsetConcurrentSet(t *testing.T) {
	const n = 1000
	words := make([]uint64, Words(n))
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += 8 {
				Set(words, i)
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, n, Count(words))
	for i := 0; i < n; i++ {
		assert.True(t, Test(words, i), "bit %d", i)
	}

	for i := 0; i < n; i += 2 {
		Clear(words, i)
	}
	assert.Equal(t, n/2, Count(words))
	assert.False(t, Test(words, 0))
	assert.True(t, Test(words, 1))
}

func TestWords(t *testing.T) {
	assert.Equal(t, 0, Words(0))
	assert.Equal(t, 1, Words(1))
	assert.Equal(t, 1, Words(64))
	assert.Equal(t, 2, Words(65))
}
