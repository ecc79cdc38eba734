package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

var version = "0.1.0-dev"

const defaultConfigFile = "config.json"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gol",
		Short: "Conway's Game of Life on a bounded grid",
		Long: `gol runs Conway's Game of Life on a fixed-size grid with no wraparound.

The board is seeded from the configuration (explicit cells, named patterns
and a random scatter) and either animated in the terminal or advanced a
fixed number of generations.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (JSON or YAML); defaults to ./config.json when present")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info or debug")
	rootCmd.PersistentFlags().Int("rows", 0, "Grid rows (overrides config)")
	rootCmd.PersistentFlags().Int("cols", 0, "Grid columns (overrides config)")
	rootCmd.PersistentFlags().Int("workers", 0, "Goroutines per step (overrides config)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newStepCmd(),
		newPatternsCmd(),
	)

	return rootCmd
}

// loadConfig resolves defaults, config file, environment and flags, in that order
func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	config := utils.DefaultConfig()
	switch {
	case path != "":
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			return config, err
		}
		config = loaded
	default:
		if _, statErr := os.Stat(defaultConfigFile); statErr == nil {
			loaded, err := utils.LoadConfig(defaultConfigFile)
			if err != nil {
				return config, err
			}
			config = loaded
		}
	}

	if err := config.ApplyEnvOverrides(); err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		config.Rows, _ = flags.GetInt("rows")
	}
	if flags.Changed("cols") {
		config.Cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("workers") {
		config.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "invalid configuration")
	}
	return config, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gol version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-generations") {
				config.MaxGenerations, _ = cmd.Flags().GetInt("max-generations")
			}
			if noRestart, _ := cmd.Flags().GetBool("no-restart"); noRestart {
				config.AutoRestart = false
			}

			logger := utils.NewLogger(config.LogLevel, cmd.ErrOrStderr())
			g, err := initializeGame(config, logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			g.displayGameInfo()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return g.run(ctx)
		},
	}

	cmd.Flags().Int("max-generations", 0, "Stop after this many generations (0 = unlimited)")
	cmd.Flags().Bool("no-restart", false, "Stop instead of reseeding when the board dies or settles")

	return cmd
}

// stepResult is the --json output of the step command
type stepResult struct {
	Generation int           `json:"generation"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Living     int           `json:"living"`
	LiveCells  []model.Coord `json:"live_cells"`
}

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the seeded board N generations and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			n, _ := cmd.Flags().GetInt("generations")
			if n < 0 {
				return errors.Errorf("generations must be non-negative, got %d", n)
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			format, _ := cmd.Flags().GetString("format")

			logger := utils.NewLogger(config.LogLevel, cmd.ErrOrStderr())
			engine, err := newEngine(config, config.Seed, logger)
			if err != nil {
				return err
			}

			grid := engine.StepN(n)
			logger.Debug("stepped", "generations", n, "living", grid.CountLiving())

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(stepResult{
					Generation: engine.Generation(),
					Rows:       grid.Rows(),
					Cols:       grid.Cols(),
					Living:     grid.CountLiving(),
					LiveCells:  grid.LiveCells(),
				})
			}

			var renderer render.Renderer
			switch format {
			case "blocks":
				renderer = render.NewTerminalRenderer(out)
			case "matrix":
				renderer = render.NewMatrixRenderer(out)
			default:
				return errors.Errorf("unknown format %q (valid: blocks, matrix)", format)
			}
			return renderer.Display(grid)
		},
	}

	cmd.Flags().IntP("generations", "n", 1, "Number of generations to advance")
	cmd.Flags().Bool("json", false, "Print live cell coordinates as JSON")
	cmd.Flags().String("format", "blocks", "Grid format: blocks or matrix")

	return cmd
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the named seed patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range model.PatternNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
