// Package config parses the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/framefx/videodifference/pkg/effect"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/snapshot"
	"github.com/framefx/videodifference/pkg/viewer"
)

// ErrUsage is returned when the command line does not name exactly one
// source or has a malformed flag. The usage text was already printed.
var ErrUsage = errors.New("expected exactly one video file, image sequence or device number")

// Config is the parsed command line.
type Config struct {
	// Source is the positional argument: a device number, a video file, an
	// image sequence pattern, "videotest[:WxH]" or "screen[:N]".
	Source string

	OutputDir string
	Prefix    string
	Title     string
	Delay     time.Duration
	Mode      effect.Mode
	// Width and Height scale the frames when positive, using Scaler.
	Width, Height int
	Scaler        video.Scaler
}

// Parse reads args, without the program name. Usage and flag errors are
// written to output. flag.ErrHelp is returned for -h.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	c := Config{Mode: effect.DefaultMode, Scaler: video.ScalerNearestNeighbor}
	fs := newFlagSet(name, &c, output)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return c, err
		}
		return c, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return c, ErrUsage
	}
	if c.Delay <= 0 {
		return c, fmt.Errorf("-delay must be positive, got %v", c.Delay)
	}
	if c.Width < 0 || c.Height < 0 {
		return c, errors.New("-width and -height must not be negative")
	}

	c.Source = fs.Arg(0)
	return c, nil
}

func newFlagSet(name string, c *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usage(output, fs) }

	fs.StringVar(&c.OutputDir, "out", ".", "directory for saved frames")
	fs.StringVar(&c.Prefix, "prefix", snapshot.DefaultPrefix, "file name prefix for saved frames")
	fs.StringVar(&c.Title, "title", "", "window title")
	fs.DurationVar(&c.Delay, "delay", viewer.DefaultDelay, "how long to wait for a key after each frame")
	fs.IntVar(&c.Width, "width", 0, "scale frames to this width, 0 keeps the source size")
	fs.IntVar(&c.Height, "height", 0, "scale frames to this height, 0 keeps the source size")
	fs.Func("mode", "initial effect, a key digit or name (default 1, frame-difference)", func(s string) error {
		m, err := effect.ParseMode(s)
		if err != nil {
			return err
		}
		c.Mode = m
		return nil
	})
	fs.Func("scaler", "scaling algorithm for -width and -height: "+strings.Join(video.ScalerNames(), ", ")+" (default nearest)", func(s string) error {
		sc, err := video.ParseScaler(s)
		if err != nil {
			return err
		}
		c.Scaler = sc
		return nil
	})
	return fs
}

// Usage prints the help text for the program called name.
func Usage(w io.Writer, name string) {
	usage(w, newFlagSet(name, &Config{}, w))
}

func usage(w io.Writer, fs *flag.FlagSet) {
	name := fs.Name()
	fmt.Fprintf(w, `The program captures frames from a video file, image sequence (01.jpg, 02.jpg ... 10.jpg) or camera connected to your computer.
Usage:
%[1]s [flags] <video file, image sequence or device number>
q,Q,esc -- quit
space   -- save frame
`, name)
	for _, m := range effect.Modes() {
		fmt.Fprintf(w, "%c       -- %s\n", m.Key(), m)
	}
	fmt.Fprintf(w, `
	To capture from a camera pass the device number. To find the device number, try ls /dev/video*
	example: %[1]s 0
	You may also pass a video file instead of a device number
	example: %[1]s video.avi
	You can also pass the path to an image sequence and OpenCV will treat the sequence just like a video.
	example: %[1]s right%%02d.jpg
	A synthetic test pattern and the screen are available too
	example: %[1]s videotest:640x480
	example: %[1]s screen:0

Flags:
`, name)
	fs.PrintDefaults()
}
