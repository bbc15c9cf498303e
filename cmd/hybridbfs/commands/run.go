package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hybridbfs"
	"hybridbfs/graphutils"
	"hybridbfs/internal/report"
	"hybridbfs/internal/telemetry"
	"hybridbfs/parlay_go"
	"hybridbfs/verify"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Time one or more traversal strategies on a graph",
	Example: `  hybridbfs run -g web.bin --strategy all --runs 5 --check
  hybridbfs run -g s3://graphs/web.bin --strategy hybrid --threshold 0.05 --report out.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindLocal(cmd.Flags()); err != nil {
			return err
		}
		cfg, err := runConfigFromViper()
		if err != nil {
			return err
		}
		g, location, err := loadGraph(cmd.Context())
		if err != nil {
			return err
		}
		rep, err := runStrategies(cmd.Context(), g, location, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Render(rep))
		if cfg.reportPath != "" {
			if err := writeReport(cfg.reportPath, rep); err != nil {
				return err
			}
		}
		for _, r := range rep.Results {
			if r.Verified != nil && !*r.Verified {
				return fmt.Errorf("strategy %s failed verification", r.Strategy)
			}
		}
		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.StringP("strategy", "s", "all", "push, pull, hybrid, or all (comma-separated)")
	f.IntP("workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.Float64P("threshold", "t", hybridbfs.DefaultThreshold, "hybrid switch point as a fraction of all vertices")
	f.IntP("root", "r", 0, "root vertex (-1 picks a random vertex with out-edges)")
	f.Uint64("seed", 1, "seed for --root -1")
	f.IntP("runs", "n", 3, "timed runs per strategy")
	f.Int("chunk", 64, "dynamic chunk size of push rounds")
	f.String("pull-schedule", "guided", "static, dynamic or guided split of pull rounds")
	f.Int("pull-chunk", 1024, "chunk size (minimum for guided) of pull rounds")
	f.Bool("check", false, "verify distances against the sequential reference")
	f.String("report", "", "write a YAML report to this path")
}

// runConfig is the resolved set of run flags
type runConfig struct {
	strategies []hybridbfs.Strategy
	workers    int
	threshold  float64
	root       int
	seed       uint64
	runs       int
	chunk      int
	pullSched  parlay_go.Schedule
	pullChunk  int
	check      bool
	reportPath string
}

func runConfigFromViper() (runConfig, error) {
	cfg := runConfig{
		workers:    viper.GetInt("workers"),
		threshold:  viper.GetFloat64("threshold"),
		root:       viper.GetInt("root"),
		seed:       viper.GetUint64("seed"),
		runs:       viper.GetInt("runs"),
		chunk:      viper.GetInt("chunk"),
		pullChunk:  viper.GetInt("pull-chunk"),
		check:      viper.GetBool("check"),
		reportPath: viper.GetString("report"),
	}
	var err error
	if cfg.strategies, err = parseStrategies(viper.GetString("strategy")); err != nil {
		return cfg, err
	}
	if cfg.pullSched, err = parseSchedule(viper.GetString("pull-schedule")); err != nil {
		return cfg, err
	}
	if cfg.runs < 1 {
		return cfg, fmt.Errorf("--runs must be at least 1, got %d", cfg.runs)
	}
	return cfg, nil
}

func parseStrategies(s string) ([]hybridbfs.Strategy, error) {
	if strings.EqualFold(s, "all") {
		return hybridbfs.Strategies, nil
	}
	var out []hybridbfs.Strategy
	for _, name := range strings.Split(s, ",") {
		st, err := hybridbfs.ParseStrategy(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func parseSchedule(s string) (parlay_go.Schedule, error) {
	for _, sched := range []parlay_go.Schedule{parlay_go.Static, parlay_go.Dynamic, parlay_go.Guided} {
		if strings.EqualFold(s, sched.String()) {
			return sched, nil
		}
	}
	return 0, fmt.Errorf("unknown pull schedule %q", s)
}

// runStrategies times every configured strategy and assembles the report
func runStrategies(ctx context.Context, g *graphutils.Graph, location string, cfg runConfig) (*report.Report, error) {
	root := cfg.root
	if root < 0 {
		root = graphutils.SelectRoot(g, cfg.seed)
		slog.Info("selected root", "root", root, "out_degree", g.OutDegree(root))
	}
	workers := parlay_go.NewTeam(cfg.workers).Size()

	rep := &report.Report{
		Graph:     report.GraphInfo{Location: location, Nodes: g.NumNodes, Edges: g.NumEdges},
		Root:      root,
		Workers:   workers,
		Threshold: cfg.threshold,
	}

	var reference []int32
	if cfg.check {
		reference = hybridbfs.SequentialBFS(g, root)
	}

	tracer := telemetry.Tracer("hybridbfs/run")
	timings := make(map[hybridbfs.Strategy][]time.Duration, len(cfg.strategies))
	dist := make([]int32, g.NumNodes)
	for _, s := range cfg.strategies {
		var rounds []hybridbfs.RoundStats
		for i := 0; i < cfg.runs; i++ {
			rounds = rounds[:0]
			_, span := tracer.Start(ctx, "traverse", trace.WithAttributes(
				attribute.String("bfs.strategy", s.String()),
				attribute.Int("bfs.run", i),
				attribute.Int("bfs.root", root),
				attribute.Int("bfs.workers", workers),
			))
			onRound := func(st hybridbfs.RoundStats) {
				rounds = append(rounds, st)
				span.AddEvent("round", trace.WithAttributes(
					attribute.Int("round", st.Round),
					attribute.String("direction", st.Direction.String()),
					attribute.Int("frontier", st.FrontierSize),
					attribute.Int("discovered", st.Discovered),
				))
			}

			start := time.Now()
			err := hybridbfs.Traverse(g, dist, s,
				hybridbfs.WithRoot(root),
				hybridbfs.WithWorkers(cfg.workers),
				hybridbfs.WithThreshold(cfg.threshold),
				hybridbfs.WithChunkSize(cfg.chunk),
				hybridbfs.WithPullSchedule(cfg.pullSched, cfg.pullChunk),
				hybridbfs.WithLogger(slog.Default()),
				hybridbfs.WithOnRound(onRound),
			)
			elapsed := time.Since(start)
			span.End()
			if err != nil {
				return nil, fmt.Errorf("%v traversal: %w", s, err)
			}
			timings[s] = append(timings[s], elapsed)
			slog.Debug("run finished", "strategy", s, "run", i, "elapsed", elapsed)
		}

		res := report.Summarize(s.String(), timings[s])
		res.Distances(dist)
		res.Rounds = len(rounds)
		for _, r := range rounds {
			if r.Direction == hybridbfs.Pull {
				res.PullRounds++
			}
		}
		if cfg.check {
			ok := verify.Agree(reference, dist) == nil && verify.Check(g, root, dist) == nil
			if !ok {
				slog.Error("verification failed", "strategy", s)
			}
			res.Verified = &ok
		}
		rep.Results = append(rep.Results, res)
	}

	base := cfg.strategies[0]
	for _, s := range cfg.strategies[1:] {
		c, ok, err := report.Compare(base.String(), s.String(), timings[base], timings[s])
		if err != nil {
			return nil, err
		}
		if ok {
			rep.Comparisons = append(rep.Comparisons, c)
		}
	}
	return rep, nil
}

func writeReport(path string, rep *report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WriteYAML(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
