package hybridbfs_test

import (
	"fmt"
	"testing"

	"hybridbfs"
	"hybridbfs/graphutils"
)

func BenchmarkTraverse(b *testing.B) {
	g := graphutils.Random(200_000, 8, 42)
	dist := make([]int32, g.NumNodes)
	for _, s := range hybridbfs.Strategies {
		for _, w := range []int{1, 4, 0} {
			b.Run(fmt.Sprintf("%v/workers=%d", s, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if err := hybridbfs.Traverse(g, dist, s, hybridbfs.WithWorkers(w)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkSequentialBFS(b *testing.B) {
	g := graphutils.Random(200_000, 8, 42)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hybridbfs.SequentialBFS(g, 0)
	}
}
