package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/termlife/rules"
)

// historySize is how many recent grid hashes are kept for cycle detection.
const historySize = 5

// neighborOffsets is the Moore neighborhood, excluding the cell itself.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// StepSummary counts the cells that changed in the most recent generation.
type StepSummary struct {
	Born int
	Died int
}

// Grid represents the game board. Cells are stored flat in row-major order
// (index = x + y*width); cells beyond the edges are permanently dead.
type Grid struct {
	width  int
	height int
	cells  []bool
	next   []bool // scratch field, swapped with cells on every step

	generation int
	last       StepSummary
	history    []string // Store recent grid states for cycle detection
}

// NewGrid creates a grid with the specified dimensions and the seed cells set alive
func NewGrid(width, height int, seed []Point) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}

	cells := make([]bool, width*height)
	for _, p := range seed {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, errors.Wrapf(ErrSeedOutOfBounds, "[NewGrid] %v does not fit %dx%d", p, width, height)
		}
		cells[p.X+p.Y*width] = true
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		next:   make([]bool, width*height),
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns how many times NextState has run
func (g *Grid) Generation() int {
	return g.generation
}

// LastStep returns the births and deaths of the most recent generation
func (g *Grid) LastStep() StepSummary {
	return g.last
}

// Get returns the state of a cell; coordinates off the grid are dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[x+y*g.width]
}

// Cells returns a copy of the current field in row-major order
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// CountLiveNeighbors counts the live cells among the eight neighbors of (x, y).
// Neighbors outside the grid count as dead; the grid does not wrap.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
			continue
		}
		if g.cells[nx+ny*g.width] {
			count++
		}
	}
	return count
}

// NextState advances the grid by one generation. Every cell of the new field
// is computed from the current field before the two are swapped.
func (g *Grid) NextState() {
	var summary StepSummary
	for y, height := 0, g.height; y < height; y++ {
		for x, width := 0, g.width; x < width; x++ {
			idx := x + y*g.width
			t := rules.Classify(g.CountLiveNeighbors(x, y), g.cells[idx])
			g.next[idx] = t.Alive()

			switch t {
			case rules.Born:
				summary.Born++
			case rules.Underpopulated, rules.Overcrowded:
				summary.Died++
			}
		}
	}

	g.cells, g.next = g.next, g.cells
	g.generation++
	g.last = summary
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last three
// recorded states (a still life or an oscillator of period up to three).
func (g *Grid) IsStagnant() bool {
	current := g.GetGridHash()
	for i := len(g.history) - 1; i >= 0 && i >= len(g.history)-3; i-- {
		if g.history[i] == current {
			return true
		}
	}
	return false
}
