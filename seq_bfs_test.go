package hybridbfs_test

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hybridbfs"
	"hybridbfs/graphutils"
	"hybridbfs/verify"
)

// Input flags
var (
	path    = flag.String("f", "", "path to graph.bin")
	root    = flag.Int("root", 0, "BFS root for the graph given by -f")
	workers = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
)

func TestMain(m *testing.M) {
	flag.Parse() // parse the flags *before* any TestXxx runs
	os.Exit(m.Run())
}

func TestSequentialBFS(t *testing.T) {
	g, err := graphutils.FromEdgeList(6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {5, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 1, 2, 3, -1}, hybridbfs.SequentialBFS(g, 0))
	assert.Equal(t, []int32{1, 2, 2, 3, 4, 0}, hybridbfs.SequentialBFS(g, 5))
}

// Checks every strategy against the sequential reference on a real graph
func TestSequentialMatchesParallelOnFile(t *testing.T) {
	if *path == "" {
		t.Skip("no graph given; run with -args -f graph.bin")
	}
	g, err := graphutils.LoadGraph(*path)
	require.NoError(t, err)

	want := hybridbfs.SequentialBFS(g, *root)
	for _, s := range hybridbfs.Strategies {
		got := make([]int32, g.NumNodes)
		require.NoError(t, hybridbfs.Traverse(g, got, s, hybridbfs.WithRoot(*root), hybridbfs.WithWorkers(*workers)))
		require.NoError(t, verify.Agree(want, got), "strategy %v", s)
	}
}

/*
go test -v -run TestSequentialMatchesParallelOnFile -args -f data/graphs/Epinions1.bin -root 0 -workers 8
*/
