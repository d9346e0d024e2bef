package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/termlife/game"
	"github.com/sheikhrachel/termlife/internal/logging"
	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/terminal"
	"github.com/sheikhrachel/termlife/utils"
)

// sizer is the part of a display needed to lay out the grid
type sizer interface {
	Size() (width, height int, err error)
}

// runGame loads the pattern, fits it to the terminal and runs the render loop
// until a quit key or SIGINT/SIGTERM.
func runGame(ctx context.Context, config utils.Config, patternPath string) error {
	logger, closeLog, err := newLogger(config)
	if err != nil {
		return err
	}
	defer closeLog()

	pattern, err := model.LoadPattern(patternPath)
	if err != nil {
		return err
	}

	screen := terminal.New(os.Stdin, os.Stdout, terminal.Options{
		LiveGlyph: config.LiveGlyph,
		DeadGlyph: config.DeadGlyph,
		LiveColor: config.LiveColor,
	})
	grid, err := initializeGame(screen, pattern, config.ShowStatus)
	if err != nil {
		return err
	}
	logger.Info("starting simulation",
		"pattern", patternPath,
		"points", len(pattern),
		"width", grid.GetWidth(),
		"height", grid.GetHeight(),
		"living", grid.CountLivingCells(),
	)

	quitKey, _ := config.QuitRune()
	opts := game.Options{
		Interval:   config.RefreshInterval(),
		QuitKey:    quitKey,
		ShowStatus: config.ShowStatus,
		Logger:     logger,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return game.Run(ctx, screen, grid, opts)
	})
	eg.Go(func() error {
		watchSignals(ctx, cancel, logger)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("simulation finished", "generations", grid.Generation(), "living", grid.CountLivingCells())
	return nil
}

// initializeGame sizes the grid to the display, keeping the last row for the
// status line when it is shown, and seeds it with the fitted pattern
func initializeGame(display sizer, pattern model.Pattern, showStatus bool) (*model.Grid, error) {
	width, height, err := display.Size()
	if err != nil {
		return nil, err
	}
	if showStatus {
		height--
	}

	seed, err := model.FitToViewport(pattern, width, height)
	if err != nil {
		return nil, err
	}
	return model.NewGrid(width, height, seed)
}

// watchSignals cancels the game on SIGINT or SIGTERM and returns once ctx is done
func watchSignals(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}
}

// newLogger writes to the configured log file, or stderr when there is none
func newLogger(config utils.Config) (*slog.Logger, func(), error) {
	level, err := config.Level()
	if err != nil {
		return nil, nil, errors.Wrap(err, "[newLogger] invalid log level")
	}

	if config.LogFile == "" {
		return logging.New(level, os.Stderr), func() {}, nil
	}

	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[newLogger] failed to open log file: %+v", config.LogFile)
	}
	return logging.New(level, f), func() { f.Close() }, nil
}
