package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/internal/logging"
	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

// keyInterrupt is Ctrl+C; raw mode delivers it as input instead of SIGINT.
const keyInterrupt = '\x03'

// Options controls the render loop
type Options struct {
	// Interval is the longest wait for input between generations.
	Interval time.Duration
	// QuitKey ends the loop; 0 means any key does.
	QuitKey rune
	// ShowStatus draws a footer on the row below the grid.
	ShowStatus bool
	Logger     *slog.Logger
}

func (o Options) quits(key rune) bool {
	return o.QuitKey == 0 || key == o.QuitKey || key == keyInterrupt
}

// Run advances and draws the grid until a quit key is pressed or ctx is done.
// The surface is restored on every return path once Enter has succeeded.
func Run(ctx context.Context, s Surface, g *model.Grid, opts Options) (err error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if err = s.Enter(); err != nil {
		return errors.Wrap(err, "[Run] failed to enter display")
	}
	defer func() {
		if rerr := s.Restore(); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "[Run] failed to restore display")
		}
	}()

	if err = s.Clear(); err != nil {
		return errors.Wrap(err, "[Run] failed to clear display")
	}

	var (
		stats         = utils.NewStats()
		lastFrameTime = time.Now()
	)
	for ctx.Err() == nil {
		frameStart := time.Now()
		g.NextState()

		status := updateStatus(g)
		stats.Update(g.Generation(), g.CountLivingCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err = draw(s, g); err != nil {
			return errors.Wrapf(err, "[Run] failed to draw generation %d", g.Generation())
		}
		if opts.ShowStatus {
			if err = drawStatus(s, g, stats, status, opts.QuitKey); err != nil {
				return errors.Wrap(err, "[Run] failed to draw status line")
			}
		}
		if err = s.Flush(); err != nil {
			return errors.Wrap(err, "[Run] failed to flush display")
		}

		key, ok, perr := s.Poll(ctx, opts.Interval)
		if perr != nil {
			return errors.Wrap(perr, "[Run] failed to poll input")
		}
		if ok && opts.quits(key) {
			logger.Debug("quit key pressed", "key", string(key), "generation", g.Generation())
			return nil
		}
	}

	logger.Debug("render loop cancelled", "generation", g.Generation(), "err", ctx.Err())
	return nil
}

// updateStatus classifies the current generation and records it in the history
func updateStatus(g *model.Grid) string {
	status := statusActive
	switch {
	case g.CountLivingCells() == 0:
		status = statusExtinct
	case g.IsStagnant():
		status = statusStable
	}
	g.UpdateHistory()
	return status
}
