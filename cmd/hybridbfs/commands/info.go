package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hybridbfs"
	"hybridbfs/graphutils"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print size and degree summary of a graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, location, err := loadGraph(cmd.Context())
		if err != nil {
			return err
		}
		return writeInfo(cmd.OutOrStdout(), location, g)
	},
}

// writeInfo prints vertex/edge counts, degree extremes and the reach of vertex 0
func writeInfo(w io.Writer, location string, g *graphutils.Graph) error {
	maxOut, maxIn, sinks, sources := 0, 0, 0, 0
	for v := 0; v < g.NumNodes; v++ {
		out, in := g.OutDegree(v), g.InDegree(v)
		maxOut, maxIn = max(maxOut, out), max(maxIn, in)
		if out == 0 {
			sinks++
		}
		if in == 0 {
			sources++
		}
	}
	mean := 0.0
	if g.NumNodes > 0 {
		mean = float64(g.NumEdges) / float64(g.NumNodes)
	}

	fmt.Fprintf(w, "%-12s %s\n", "graph", location)
	fmt.Fprintf(w, "%-12s %d\n", "nodes", g.NumNodes)
	fmt.Fprintf(w, "%-12s %d\n", "edges", g.NumEdges)
	fmt.Fprintf(w, "%-12s mean %.2f max %d\n", "out-degree", mean, maxOut)
	fmt.Fprintf(w, "%-12s max %d\n", "in-degree", maxIn)
	fmt.Fprintf(w, "%-12s %d\n", "sinks", sinks)
	fmt.Fprintf(w, "%-12s %d\n", "sources", sources)
	if g.NumNodes == 0 {
		return nil
	}

	dist := make([]int32, g.NumNodes)
	if err := hybridbfs.TraverseHybrid(g, dist); err != nil {
		return err
	}
	reach, depth := 0, int32(0)
	for _, d := range dist {
		if d >= 0 {
			reach++
			depth = max(depth, d)
		}
	}
	_, err := fmt.Fprintf(w, "%-12s %d vertices, depth %d\n", "from 0", reach, depth)
	return err
}
