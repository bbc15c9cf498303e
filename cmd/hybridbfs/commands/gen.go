package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hybridbfs/graphutils"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic graph in binary CSR format",
	Example: `  hybridbfs gen --kind random --nodes 1000000 --degree 8 --out random.bin
  hybridbfs gen --kind burst --nodes 100000 --out burst.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindLocal(cmd.Flags()); err != nil {
			return err
		}
		kind := viper.GetString("kind")
		g, err := graphutils.Generate(kind, viper.GetInt("nodes"), viper.GetInt("degree"), viper.GetUint64("seed"))
		if err != nil {
			return err
		}

		out := viper.GetString("out")
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := graphutils.WriteGraphToBin(f, g); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", out, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("graph written", "path", out, "kind", kind, "nodes", g.NumNodes, "edges", g.NumEdges)
		return nil
	},
}

func init() {
	f := genCmd.Flags()
	f.String("kind", "random", "chain, star, complete, random or burst")
	f.Int("nodes", 1000, "number of vertices")
	f.Int("degree", 8, "out-degree of each vertex (random only)")
	f.Uint64("seed", 1, "random seed")
	f.StringP("out", "o", "graph.bin", "output path")
}
