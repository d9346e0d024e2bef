package terminal

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// keyBuffer is how many unread key presses are held before the reader blocks
const keyBuffer = 16

// Options selects the glyphs drawn for cells
type Options struct {
	LiveGlyph string
	DeadGlyph string
	// LiveColor is a hex colour for live cells; ignored when the terminal has no colour support.
	LiveColor string
}

// Terminal draws on a tty using ANSI escape sequences. Output is buffered
// and only reaches the tty on Flush.
type Terminal struct {
	in  *os.File
	out *os.File
	buf *bufio.Writer
	env *termenv.Output

	live string
	dead string

	state    *term.State
	keys     chan rune
	readErr  chan error
	readOnce sync.Once
}

// New creates a Terminal reading keys from in and drawing on out
func New(in, out *os.File, opts Options) *Terminal {
	buf := bufio.NewWriter(out)
	profile := termenv.NewOutput(out).Profile
	env := termenv.NewOutput(buf, termenv.WithProfile(profile))

	live := env.String(opts.LiveGlyph)
	if opts.LiveColor != "" {
		live = live.Foreground(env.Color(opts.LiveColor))
	}

	return &Terminal{
		in:      in,
		out:     out,
		buf:     buf,
		env:     env,
		live:    live.String(),
		dead:    opts.DeadGlyph,
		keys:    make(chan rune, keyBuffer),
		readErr: make(chan error, 1),
	}
}

// Size returns the terminal dimensions in cells
func (t *Terminal) Size() (int, int, error) {
	width, height, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "[Size] failed to read terminal size")
	}
	return width, height, nil
}

// Enter puts the input into raw mode and switches to a cleared alternate
// screen with the cursor hidden. On failure the terminal is left as it was.
func (t *Terminal) Enter() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return errors.Wrap(err, "[Enter] failed to enable raw mode")
	}

	t.env.AltScreen()
	t.env.ClearScreen()
	t.env.HideCursor()
	if err := t.buf.Flush(); err != nil {
		_ = term.Restore(int(t.in.Fd()), state)
		return errors.Wrap(err, "[Enter] failed to switch to alternate screen")
	}

	t.state = state
	t.readOnce.Do(func() { go t.readKeys() })
	return nil
}

// Restore leaves the alternate screen, shows the cursor and restores the
// input mode saved by Enter. Every step runs even if an earlier one fails.
func (t *Terminal) Restore() error {
	t.env.ClearScreen()
	t.env.ShowCursor()
	t.env.ExitAltScreen()
	err := t.buf.Flush()

	if t.state != nil {
		if rerr := term.Restore(int(t.in.Fd()), t.state); rerr != nil && err == nil {
			err = rerr
		}
		t.state = nil
	}
	return errors.Wrap(err, "[Restore] failed to restore terminal")
}

func (t *Terminal) Clear() error {
	t.env.ClearScreen()
	return nil
}

// MoveTo places the cursor at zero-based column x and row y
func (t *Terminal) MoveTo(x, y int) error {
	t.env.MoveCursor(y+1, x+1)
	return nil
}

func (t *Terminal) WriteCell(alive bool) error {
	glyph := t.dead
	if alive {
		glyph = t.live
	}
	_, err := t.buf.WriteString(glyph)
	return err
}

func (t *Terminal) WriteText(s string) error {
	_, err := t.buf.WriteString(s)
	return err
}

func (t *Terminal) Flush() error {
	return errors.Wrap(t.buf.Flush(), "[Flush] failed to write frame")
}

// Poll waits up to timeout for a key press
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case key := <-t.keys:
		return key, true, nil
	case err := <-t.readErr:
		return 0, false, errors.Wrap(err, "[Poll] failed to read input")
	case <-timer.C:
		return 0, false, nil
	case <-ctx.Done():
		return 0, false, nil
	}
}

// readKeys forwards decoded key presses until the input fails. A blocked
// read cannot be interrupted, so the goroutine lives until the process exits.
func (t *Terminal) readKeys() {
	r := bufio.NewReader(t.in)
	for {
		key, _, err := r.ReadRune()
		if err != nil {
			t.readErr <- err
			return
		}
		t.keys <- key
	}
}
