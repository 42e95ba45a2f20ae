// Command hillclimb answers shortest-climb queries on textual elevation maps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/config"
	"github.com/katalvlaran/hillclimb/multisource"
	"github.com/katalvlaran/hillclimb/search"
)

var (
	// Global flags
	cfgFile  string
	verbose  bool
	strategy string
	workers  int
	render   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hillclimb",
	Short: "Fewest steps up an elevation map",
	Long: `hillclimb reads a map of 'a'..'z' elevations with an 'S' start and an
'E' end, and counts the fewest single steps (up, down, left, right) needed to
reach E when each step may climb at most one level.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("strategy") {
			cfg.Strategy = strategy
		}
		if flags.Changed("workers") {
			cfg.Workers = workers
		}
		if flags.Changed("render") {
			cfg.Render = render
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = cfg.NewLogger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// distanceCmd counts steps from S to E
var distanceCmd = &cobra.Command{
	Use:   "distance FILE",
	Short: "Fewest steps from S to E",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistance,
}

// anyCmd counts steps from the best lowest cell to E
var anyCmd = &cobra.Command{
	Use:   "any FILE",
	Short: "Fewest steps to E from any lowest cell",
	Args:  cobra.ExactArgs(1),
	RunE:  runAny,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&strategy, "strategy", "independent", "multi-start strategy: independent or reverse")
	pf.IntVar(&workers, "workers", 0, "concurrent searches for the independent strategy (0 = GOMAXPROCS)")
	pf.BoolVar(&render, "render", false, "print the map with the route highlighted")

	rootCmd.AddCommand(distanceCmd, anyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadMap parses the map file at path.
func loadMap(path string) (*heightmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	m, err := heightmap.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, cols := m.Grid.Dims()
	logger.Debug("map loaded",
		zap.String("path", path),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Stringer("start", m.Start),
		zap.Stringer("end", m.End),
	)
	return m, nil
}

func runDistance(cmd *cobra.Command, args []string) error {
	m, err := loadMap(args[0])
	if err != nil {
		return err
	}
	path, ok, err := search.ShortestPath(m.Grid, m.Start, m.End,
		search.WithContext(cmd.Context()),
		search.WithRule(cfg.Rule()),
	)
	if err != nil {
		return err
	}
	report(cmd, m, path, ok)
	return nil
}

func runAny(cmd *cobra.Command, args []string) error {
	m, err := loadMap(args[0])
	if err != nil {
		return err
	}
	opts := append(cfg.MultiSourceOptions(logger), multisource.WithContext(cmd.Context()))
	best, ok, err := multisource.FromLowest(m.Grid, m.End, opts...)
	if err != nil {
		return err
	}
	if !ok {
		report(cmd, m, nil, false)
		return nil
	}
	logger.Info("best start", zap.Stringer("start", best.Start), zap.Int("distance", best.Distance))

	path, ok, err := search.ShortestPath(m.Grid, best.Start, m.End,
		search.WithContext(cmd.Context()),
		search.WithRule(cfg.Rule()),
	)
	if err != nil {
		return err
	}
	report(cmd, m, path, ok)
	return nil
}

// report prints the step count (or "no path") and, if enabled, the map.
func report(cmd *cobra.Command, m *heightmap.Map, path []heightmap.Position, ok bool) {
	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "no path")
		return
	}
	fmt.Fprintln(out, len(path)-1)
	if cfg.Render {
		fmt.Fprintln(out, renderMap(m, path))
	}
}
