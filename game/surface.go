package game

import (
	"context"
	"time"
)

// Surface is the character display the simulation is drawn on.
// Coordinates are zero-based cell positions, x to the right and y down.
type Surface interface {
	// Size reports the display dimensions in cells.
	Size() (width, height int, err error)
	// Enter switches to the alternate screen with raw input and a hidden cursor.
	// It leaves the display untouched when it fails.
	Enter() error
	// Restore undoes Enter.
	Restore() error
	Clear() error
	MoveTo(x, y int) error
	// WriteCell writes one cell glyph at the cursor and advances it.
	WriteCell(alive bool) error
	WriteText(s string) error
	Flush() error
	// Poll waits up to timeout for a key press. ok is false when the wait
	// ended without one, including when ctx is done.
	Poll(ctx context.Context, timeout time.Duration) (key rune, ok bool, err error)
}
