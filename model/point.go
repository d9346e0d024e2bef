package model

import "fmt"

// Point is a cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Pattern is an ordered list of points as read from a pattern file.
// Order is preserved and duplicates are kept.
type Pattern []Point
