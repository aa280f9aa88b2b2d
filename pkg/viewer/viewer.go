// Package viewer runs the interactive loop: read a frame, apply the active
// effect, show it and react to the keyboard.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/framefx/videodifference/internal/logging"
	"github.com/framefx/videodifference/pkg/display"
	"github.com/framefx/videodifference/pkg/effect"
)

// DefaultDelay is the key wait per frame, about 32 frames per second.
const DefaultDelay = time.Second / 32

var logger = logging.NewLogger("viewer")

// Source yields frames until io.EOF. A returned frame may be reused by the
// next call.
type Source interface {
	Next() (*image.RGBA, error)
}

// Saver stores a frame and returns where it went.
type Saver interface {
	Save(img image.Image) (string, error)
}

// Options configure a Viewer.
type Options struct {
	// Mode is the effect the viewer starts with, usually effect.DefaultMode.
	Mode effect.Mode
	// Delay bounds the key wait per frame. Zero selects DefaultDelay.
	Delay time.Duration
	// Output receives one "Saved <name>" line per saved frame. Nil selects
	// stdout.
	Output io.Writer
}

// Stats summarise a finished run.
type Stats struct {
	// Frames counts frames that were processed and shown.
	Frames int
	// Saved counts frames written by the Saver.
	Saved int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d frames shown, %d saved", s.Frames, s.Saved)
}

// Viewer ties a Source, a Display and a Saver together. It is not safe for
// concurrent use.
type Viewer struct {
	src   Source
	disp  display.Display
	saver Saver

	mode  effect.Mode
	delay time.Duration
	out   io.Writer

	hist   effect.History
	buf    *image.RGBA
	stats  Stats
	primed image.Point
}

// New returns a Viewer. saver may be nil, in which case the save key is
// ignored.
func New(src Source, disp display.Display, saver Saver, opts Options) (*Viewer, error) {
	mode := opts.Mode
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", effect.ErrUnknownMode, int(mode))
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &Viewer{
		src:   src,
		disp:  disp,
		saver: saver,
		mode:  mode,
		delay: delay,
		out:   out,
	}, nil
}

// Mode is the effect applied to the next frame.
func (v *Viewer) Mode() effect.Mode {
	return v.mode
}

// Run primes the frame history with two frames and then processes frames
// until a quit key, the end of the stream or the window being closed. The
// end of the stream is not an error.
func (v *Viewer) Run() (Stats, error) {
	for i := 0; i < 2; i++ {
		frame, err := v.src.Next()
		if err != nil {
			return v.stats, readError(err)
		}
		v.push(frame)
	}
	logger.Debugf("history primed at %v, starting in %s", v.primed, v.mode)

	for {
		frame, err := v.src.Next()
		if err != nil {
			return v.stats, readError(err)
		}

		// The mode is read once so a key press during this frame only
		// affects the next one.
		mode := v.mode
		if mode == effect.ModeFrameDifference && frame.Rect.Size() != v.primed {
			logger.Infof("frame size changed from %v to %v, restarting history", v.primed, frame.Rect.Size())
			v.hist.Reset()
			v.push(frame)
			v.push(frame)
		}

		shown, err := effect.Apply(mode, v.buf, frame, &v.hist)
		if err != nil {
			return v.stats, fmt.Errorf("apply %s: %w", mode, err)
		}
		if shown != frame {
			v.buf = shown
		}

		if err := v.disp.Show(shown); err != nil {
			return v.stats, fmt.Errorf("show frame: %w", err)
		}
		v.stats.Frames++

		quit := v.handleKey(v.disp.WaitKey(v.delay), shown)

		if mode == effect.ModeFrameDifference {
			v.push(frame)
		}
		if quit {
			return v.stats, nil
		}
		if !v.disp.IsOpen() {
			logger.Info("window closed")
			return v.stats, nil
		}
	}
}

func (v *Viewer) push(frame *image.RGBA) {
	v.hist.Push(frame)
	v.primed = frame.Rect.Size()
}

// handleKey acts on key and reports whether the loop should stop.
func (v *Viewer) handleKey(key display.Key, shown image.Image) bool {
	switch key {
	case display.KeyNone:
		return false
	case 'q', 'Q', display.KeyEscape:
		logger.Debugf("quit key %d", key)
		return true
	case display.KeySpace:
		v.save(shown)
		return false
	}

	if m, ok := effect.ModeForKey(rune(key)); ok {
		if m != v.mode {
			logger.Infof("mode %s -> %s", v.mode, m)
		}
		v.mode = m
	}
	return false
}

func (v *Viewer) save(img image.Image) {
	if v.saver == nil {
		return
	}

	name, err := v.saver.Save(img)
	if err != nil {
		logger.Errorf("save frame: %v", err)
		return
	}
	v.stats.Saved++
	fmt.Fprintf(v.out, "Saved %s\n", name)
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Debug("end of stream")
		return nil
	}
	return fmt.Errorf("read frame: %w", err)
}
