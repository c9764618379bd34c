package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/logging"
	"github.com/vovakirdan/tui-puzzle/internal/sim"
)

var (
	simConfig      configFlags
	flagEpisodes   int
	flagWorkers    int
	flagMaxDrag    int
	flagNoProgress bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate episodes with a random bot",
	Long: `Play many episodes with a bot that grabs a random block, drags it
along a random path and releases it. Prints damage, combo and cascade
statistics. The same seed and worker count always give the same report.

Examples:
  puzzle sim
  puzzle sim --episodes 1000000 --workers 8 --seed 7
  puzzle sim --difficulty hard --no-progress`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simConfig.register(simCmd)
	simCmd.Flags().IntVar(&flagEpisodes, "episodes", 10000, "Number of episodes to play")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 4, "Number of parallel workers")
	simCmd.Flags().IntVar(&flagMaxDrag, "max-drag", 0, "Longest drag path (0 = board width)")
	simCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := logging.New(os.Stderr, logging.Options{Level: flagLogLevel, Prefix: "sim"})
	if err != nil {
		fail("%v", err)
	}

	engine, err := simConfig.engine()
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var progress io.Writer = os.Stderr
	if flagNoProgress {
		progress = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "episodes", flagEpisodes, "workers", flagWorkers, "seed", seed,
		"board", fmt.Sprintf("%dx%d", engine.Width, engine.Height), "types", engine.BlockTypes)

	report, err := sim.Run(ctx, sim.Options{
		Config:   engine,
		Episodes: flagEpisodes,
		Workers:  flagWorkers,
		Seed:     seed,
		MaxDrag:  flagMaxDrag,
		Progress: progress,
	})
	if err != nil {
		stop()
		fail("%v", err)
	}
	if report.Truncated > 0 {
		logger.Warn("episodes hit the cascade limit", "count", report.Truncated, "max_cascades", engine.MaxCascades)
	}
	logger.Info("simulation finished", "elapsed", report.Elapsed.Round(time.Millisecond))

	fmt.Print(report.Table())
}
