package game

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

const (
	statusActive    = "active"
	statusStable    = "stable"
	statusExtinct   = "extinct"
	statusSeparator = " | "
)

// draw writes every cell of the grid in row-major order
func draw(s Surface, g *model.Grid) error {
	for y, height := 0, g.GetHeight(); y < height; y++ {
		if err := s.MoveTo(0, y); err != nil {
			return err
		}
		for x, width := 0, g.GetWidth(); x < width; x++ {
			if err := s.WriteCell(g.Get(x, y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawStatus writes the footer on the row below the grid
func drawStatus(s Surface, g *model.Grid, stats *utils.Stats, status string, quitKey rune) error {
	if err := s.MoveTo(0, g.GetHeight()); err != nil {
		return err
	}
	return s.WriteText(statusLine(g, stats, status, quitKey, g.GetWidth()))
}

// statusLine is padded or cut to exactly width characters so a shorter line
// fully overwrites the previous one.
func statusLine(g *model.Grid, stats *utils.Stats, status string, quitKey rune, width int) string {
	step := g.LastStep()
	line := strings.Join([]string{
		fmt.Sprintf("gen %d", stats.TotalGenerations),
		fmt.Sprintf("alive %d", g.CountLivingCells()),
		fmt.Sprintf("avg %.1f", stats.AveragePopulation),
		fmt.Sprintf("+%d -%d", step.Born, step.Died),
		fmt.Sprintf("%.1f gen/s", stats.GenerationsPerSecond),
		fmt.Sprintf("up %s", stats.Runtime().Truncate(time.Second)),
		status,
		quitHint(quitKey),
	}, statusSeparator)

	if n := utf8.RuneCountInString(line); n < width {
		return line + strings.Repeat(" ", width-n)
	}
	return string([]rune(line)[:width])
}

func quitHint(quitKey rune) string {
	if quitKey == 0 {
		return "press any key to quit"
	}
	return fmt.Sprintf("press %c to quit", quitKey)
}
