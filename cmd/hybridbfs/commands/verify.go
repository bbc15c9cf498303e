package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hybridbfs"
	"hybridbfs/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every strategy against the sequential reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindLocal(cmd.Flags()); err != nil {
			return err
		}
		g, _, err := loadGraph(cmd.Context())
		if err != nil {
			return err
		}
		root := viper.GetInt("root")
		if root < 0 || root >= g.NumNodes {
			return fmt.Errorf("root %d out of range [0, %d)", root, g.NumNodes)
		}

		want := hybridbfs.SequentialBFS(g, root)
		if err := verify.Check(g, root, want); err != nil {
			return fmt.Errorf("sequential reference: %w", err)
		}
		failed := 0
		for _, s := range hybridbfs.Strategies {
			for _, workers := range []int{1, viper.GetInt("workers")} {
				got := make([]int32, g.NumNodes)
				if err := hybridbfs.Traverse(g, got, s, hybridbfs.WithRoot(root), hybridbfs.WithWorkers(workers)); err != nil {
					return err
				}
				status := "ok"
				if err := verify.Agree(want, got); err != nil {
					status = err.Error()
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s workers=%-3d %s\n", s, workers, status)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d strategy runs disagree with the reference", failed)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().IntP("root", "r", 0, "root vertex")
	verifyCmd.Flags().IntP("workers", "w", 0, "worker goroutines for the second pass (0 = GOMAXPROCS)")
}
