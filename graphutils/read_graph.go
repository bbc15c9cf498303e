package graphutils

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
)

// ErrSizeMismatch is returned when the header's size field disagrees with n and m
var ErrSizeMismatch = errors.New("graph: size mismatch")

// ReadGraphFromBin reads a graph in the binary CSR format below and builds both adjacencies
/*
Data format:
n (uint64)
m (uint64)
sizes (uint64)
offsets[0…n] ( (n+1)×uint64 )
edgeIDs[0…m-1] ( m×uint32 )
*/
func ReadGraphFromBin(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if err := h.check(); err != nil {
		return nil, err
	}

	// Read n + 1 offsets (uint64 each)
	offsets := make([]uint64, h.N+1)
	if err := binary.Read(br, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("read offsets: %w", err)
	}

	// Read m edge-IDs (uint32 each)
	edges := make([]uint32, h.M)
	if err := binary.Read(br, binary.LittleEndian, edges); err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}

	return FromCSR(offsets, edges)
}

// LoadGraph opens path and reads it with ReadGraphFromBin
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadGraphFromBin(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	slog.Debug("graph loaded", "path", path, "nodes", g.NumNodes, "edges", g.NumEdges)
	return g, nil
}

// WriteGraphToBin writes g's forward adjacency in the format read by ReadGraphFromBin
func WriteGraphToBin(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	n, m := uint64(g.NumNodes), uint64(g.NumEdges)
	h := Header{N: n, M: m, Sizes: expectedSize(n, m)}
	if err := binary.Write(bw, binary.LittleEndian, []uint64{h.N, h.M, h.Sizes}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	offsets := make([]uint64, len(g.OutgoingStarts))
	for i, o := range g.OutgoingStarts {
		offsets[i] = uint64(o)
	}
	if err := binary.Write(bw, binary.LittleEndian, offsets); err != nil {
		return fmt.Errorf("write offsets: %w", err)
	}
	edges := make([]uint32, len(g.OutgoingEdges))
	for i, v := range g.OutgoingEdges {
		edges[i] = uint32(v)
	}
	if err := binary.Write(bw, binary.LittleEndian, edges); err != nil {
		return fmt.Errorf("write edges: %w", err)
	}
	return bw.Flush()
}

// ReadBytePD loads the "bytepd" binary in the below format
/*
n (uint64)
m (uint64)
degree[0…n-1] (n×uint64): Number of neighbors of each vertex
edgeIDs[0…m-1] (m×uint64): Neighbor IDs of each vertex
*/
func ReadBytePD(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	// 1) Read header
	var hdr [2]uint64
	if err := binary.Read(br, binary.LittleEndian, hdr[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	n, m := hdr[0], hdr[1]
	if n > math.MaxInt32 || m > math.MaxInt64/8 {
		return nil, fmt.Errorf("%w: header n=%d m=%d out of range", ErrMalformedGraph, n, m)
	}

	// 2) Read per-vertex degrees
	degree := make([]uint64, n)
	if err := binary.Read(br, binary.LittleEndian, degree); err != nil {
		return nil, fmt.Errorf("read degrees: %w", err)
	}

	// 3) Build CSR offsets by prefix-sum
	offsets := make([]uint64, n+1)
	for i, d := range degree {
		offsets[i+1] = offsets[i] + d
	}
	if offsets[n] != m {
		return nil, fmt.Errorf("%w: degrees sum to %d, header says %d", ErrSizeMismatch, offsets[n], m)
	}

	// 4) Read neighbor IDs (as uint64)
	wide := make([]uint64, m)
	if err := binary.Read(br, binary.LittleEndian, wide); err != nil {
		return nil, fmt.Errorf("read edges: %w", err)
	}
	edges := make([]uint32, m)
	for i, v := range wide {
		if v >= n {
			return nil, fmt.Errorf("%w: edge %d targets vertex %d of %d", ErrMalformedGraph, i, v, n)
		}
		edges[i] = uint32(v)
	}
	return FromCSR(offsets, edges)
}
