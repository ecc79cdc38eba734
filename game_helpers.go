package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/render"
	"github.com/sheikhrachel/gol-engine/utils"
)

// game bundles everything the run loop mutates
type game struct {
	config   utils.Config
	engine   *model.Engine
	history  *model.History
	renderer *render.TerminalRenderer
	stats    *utils.Stats
	logger   *slog.Logger
	out      io.Writer

	generation     int
	lastRestartGen int
	restarts       int
	stagnantCount  int
}

// newEngine builds an engine for config and seeds it
func newEngine(config utils.Config, seed int64, logger *slog.Logger) (*model.Engine, error) {
	opts := []model.Option{
		model.WithBoundedRegion(config.UseBoundedGrid),
		model.WithLogger(logger),
	}
	if config.Workers > 0 {
		opts = append(opts, model.WithWorkers(config.Workers))
	}

	engine, err := model.New(config.Rows, config.Cols, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[newEngine] failed to create engine")
	}

	coords, err := config.SeedCoords(seed)
	if err != nil {
		return nil, errors.Wrap(err, "[newEngine] failed to build seed")
	}
	engine.Populate(coords)

	return engine, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *slog.Logger, out io.Writer) (*game, error) {
	engine, err := newEngine(config, config.Seed, logger)
	if err != nil {
		return nil, err
	}

	return &game{
		config:   config,
		engine:   engine,
		history:  model.NewHistory(config.HistorySize),
		renderer: render.NewTerminalRenderer(out),
		stats:    utils.NewStats(),
		logger:   logger,
		out:      out,
	}, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	grid := g.engine.Grid()
	fmt.Fprintf(g.out, "Features: Bounded: %v | Workers: %d\n",
		g.config.UseBoundedGrid, g.config.Workers)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.Rows(), grid.Cols(), grid.CountLiving())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState folds the current grid into stats and history and returns
// status information
func (g *game) updateGameState(grid model.Grid, frameDuration time.Duration) (int, string) {
	livingCells := grid.CountLiving()
	g.stats.Update(g.generation, livingCells, grid.Rows()*grid.Cols(), frameDuration)

	period := g.history.Period(grid)
	g.history.Record(grid)

	if period > 0 {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status := "Active"
	switch {
	case livingCells == 0:
		status = "Extinct"
	case period == 1:
		status = "Still life"
	case period > 1:
		status = fmt.Sprintf("Oscillating (period %d)", period)
	}

	return livingCells, status
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, status string) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, g.stats.Density*100, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame replaces the engine with a freshly seeded one. Each restart
// advances the random seed so the new board differs from the last.
func (g *game) restartGame() error {
	g.restarts++
	engine, err := newEngine(g.config, g.config.Seed+int64(g.restarts), g.logger)
	if err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed")
	}

	g.engine = engine
	g.history.Reset()
	g.lastRestartGen = g.generation
	g.stagnantCount = 0

	g.logger.Info("restarted", "generation", g.generation, "living", engine.Grid().CountLiving())
	return nil
}

// run drives the render/step loop until ctx is done, the generation limit is
// hit, or the board settles with auto restart disabled
func (g *game) run(ctx context.Context) error {
	lastFrameTime := time.Now()

	for {
		frameStart := time.Now()
		if err := g.renderer.Clear(); err != nil {
			return err
		}

		grid := g.engine.Grid()
		livingCells, status := g.updateGameState(grid, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		g.displayGameStatus(livingCells, status)
		if err := g.renderer.Display(grid); err != nil {
			return err
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			g.logger.Info("reached maximum generations", "limit", g.config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config); shouldRestart {
			if !g.config.AutoRestart {
				g.logger.Info("stopping", "reason", reason, "generation", g.generation)
				return nil
			}
			g.logger.Info("restarting", "reason", reason)
			if err := g.restartGame(); err != nil {
				return err
			}
		} else {
			g.engine.Step()
		}
		g.generation++

		select {
		case <-ctx.Done():
			g.logger.Info("shutting down",
				"generations", g.generation,
				"seconds", g.stats.Runtime().Seconds(),
				"avg_population", g.stats.AveragePopulation,
			)
			return nil
		case <-time.After(g.config.FrameRate):
		}
	}
}
