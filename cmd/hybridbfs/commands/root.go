package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hybridbfs/graphutils"
	"hybridbfs/internal/source"
	"hybridbfs/internal/telemetry"
)

// Version is overridden at build time with -ldflags "-X .../commands.Version=..."
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hybridbfs",
	Short: "Parallel direction-optimizing BFS",
	Long: `hybridbfs computes hop distances from a root vertex on large directed
graphs, using push (top-down), pull (bottom-up) or hybrid traversal.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if !viper.GetBool("trace") {
			return nil
		}
		shutdown, err := telemetry.Init(cmd.Context(), "hybridbfs", Version, viper.GetString("otlp-endpoint"), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		traceShutdown = shutdown
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if traceShutdown == nil {
			return nil
		}
		return traceShutdown(context.Background())
	},
}

var traceShutdown func(context.Context) error

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.hybridbfs.yaml)")
	pf.StringP("graph", "g", "", "graph location: local path or s3://bucket/key")
	pf.String("format", "", "graph format: bin, bytepd or adj (default: from extension)")
	pf.BoolP("verbose", "v", false, "log per-round details")
	pf.Bool("trace", false, "emit OpenTelemetry spans")
	pf.String("otlp-endpoint", "", "OTLP/HTTP endpoint for spans (default: stderr)")
	_ = viper.BindPFlags(pf)

	rootCmd.AddCommand(runCmd, infoCmd, genCmd, verifyCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".hybridbfs.yaml"))
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("HYBRIDBFS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// bindLocal binds a subcommand's own flags at run time, so subcommands may
// reuse flag names (root, workers, seed) without clobbering each other
func bindLocal(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil && f.Name != "help" {
			err = viper.BindPFlag(f.Name, f)
		}
	})
	return err
}

func setupLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadGraph reads the graph named by --graph
func loadGraph(ctx context.Context) (*graphutils.Graph, string, error) {
	location := viper.GetString("graph")
	if location == "" {
		return nil, "", fmt.Errorf("no graph given (use --graph)")
	}
	opener := &source.Opener{Logger: slog.Default()}
	g, err := opener.Load(ctx, location, viper.GetString("format"))
	return g, location, err
}
