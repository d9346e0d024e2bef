package rules

// Transition describes what a single generation did to one cell.
type Transition uint8

const (
	// StayedDead is a dead cell that did not have exactly three neighbors.
	StayedDead Transition = iota
	// Born is a dead cell with exactly three neighbors (reproduction).
	Born
	// Survived is a live cell with two or three neighbors.
	Survived
	// Underpopulated is a live cell with fewer than two neighbors.
	Underpopulated
	// Overcrowded is a live cell with more than three neighbors.
	Overcrowded
)

// Alive reports whether the cell is live after the transition
func (t Transition) Alive() bool {
	return t == Born || t == Survived
}

// Classify maps a cell's current state and live neighbor count to its transition.
func Classify(neighbors int, alive bool) Transition {
	next := ApplyConwayRules(neighbors, alive)
	switch {
	case !alive && next:
		return Born
	case !alive:
		return StayedDead
	case next:
		return Survived
	case neighbors < 2:
		return Underpopulated
	default:
		return Overcrowded
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
