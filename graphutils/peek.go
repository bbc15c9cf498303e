package graphutils

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Header is the fixed prefix of the binary CSR format
type Header struct {
	N     uint64 `yaml:"nodes"`
	M     uint64 `yaml:"edges"`
	Sizes uint64 `yaml:"bytes"`
}

// Peek reads only the header of a binary CSR graph
func Peek(r io.Reader) (Header, error) {
	h, err := readHeader(r)
	if err != nil {
		return Header{}, err
	}
	return h, h.check()
}

func readHeader(r io.Reader) (Header, error) {
	// Read the three header words: n (number of vertices), m (number of edges), sizes
	var words [3]uint64
	if err := binary.Read(r, binary.LittleEndian, words[:]); err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	return Header{N: words[0], M: words[1], Sizes: words[2]}, nil
}

// check verifies that bytes for offsets + edges + header match sizes
func (h Header) check() error {
	if h.N >= math.MaxInt32 || h.M > math.MaxInt64/8 {
		return fmt.Errorf("%w: header n=%d m=%d out of range", ErrMalformedGraph, h.N, h.M)
	}
	if want := expectedSize(h.N, h.M); h.Sizes != want {
		return fmt.Errorf("%w: got %d, expected %d", ErrSizeMismatch, h.Sizes, want)
	}
	return nil
}

func expectedSize(n, m uint64) uint64 {
	return (n+1)*8 + m*4 + 3*8
}
