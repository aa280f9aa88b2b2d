// Package source resolves the command line argument into a running frame
// source. Drivers register themselves with driver.GetManager(); import the
// driver packages for their side effects before calling Open.
package source

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/framefx/videodifference/internal/logging"
	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

// ErrOpen is returned by Open when no interpretation of the argument
// produced a working source.
var ErrOpen = errors.New("failed to open the video device, video file or image sequence")

var errNoDriver = errors.New("no driver registered")

var logger = logging.NewLogger("source")

const (
	prefixSynthetic = "videotest"
	prefixScreen    = "screen"
)

// Options tune the opened source. The zero value keeps the native size.
type Options struct {
	// Width and Height request an output size. A non-positive value keeps
	// the aspect ratio; both non-positive disables scaling.
	Width, Height int
	Scaler        video.Scaler
	// OnChange is called whenever the frame size changes and once a second
	// with the measured frame rate.
	OnChange func(prop.Media)
}

// Source is an opened frame source.
type Source struct {
	driver driver.Driver
	reader video.Reader
	prop   prop.Media
}

type target struct {
	kind driver.DeviceType
	name string
}

// targets lists, in order, the interpretations of arg to try.
func targets(arg string) []target {
	if name, ok := cutKeyword(arg, prefixSynthetic); ok {
		return []target{{driver.Synthetic, name}}
	}
	if name, ok := cutKeyword(arg, prefixScreen); ok {
		if name == "" {
			name = "0"
		}
		return []target{{driver.Screen, name}}
	}
	if _, err := strconv.Atoi(arg); err == nil {
		return []target{{driver.Camera, arg}, {driver.File, arg}}
	}
	return []target{{driver.File, arg}}
}

// cutKeyword matches "keyword" and "keyword:rest".
func cutKeyword(arg, keyword string) (rest string, ok bool) {
	if arg == keyword {
		return "", true
	}
	return strings.CutPrefix(arg, keyword+":")
}

// Open tries every interpretation of arg: a camera index first, then a file
// or image sequence. The first driver that opens and starts streaming wins.
func Open(arg string, opts Options) (*Source, error) {
	var errs []error
	for _, t := range targets(arg) {
		candidates := driver.GetManager().Query(t.kind)
		if len(candidates) == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", t.kind, errNoDriver))
			continue
		}

		for _, c := range candidates {
			d, err := c.Build(t.name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s:%s: %w", c.Info.Label, t.name, err))
				continue
			}

			s, err := start(d, opts)
			if err != nil {
				logger.Debugf("%s (%s) failed: %v", d.Info().Label, d.ID(), err)
				errs = append(errs, fmt.Errorf("%s: %w", d.Info().Label, err))
				continue
			}
			return s, nil
		}
	}

	return nil, fmt.Errorf("%w %q: %w", ErrOpen, arg, errors.Join(errs...))
}

// FromAdapter starts a source from an adapter that was built by hand.
func FromAdapter(a driver.Adapter, info driver.Info, opts Options) (*Source, error) {
	return start(driver.Wrap(a, info), opts)
}

func start(d driver.Driver, opts Options) (*Source, error) {
	if err := d.Open(); err != nil {
		return nil, err
	}

	ideal := prop.Media{Video: prop.Video{Width: opts.Width, Height: opts.Height}}
	selected, ok := prop.Best(d.Properties(), ideal)
	if !ok {
		selected = ideal
	}

	r, err := d.VideoRecord(selected)
	if err != nil {
		d.Close()
		return nil, err
	}

	onChange := opts.OnChange
	if onChange == nil {
		onChange = func(prop.Media) {}
	}
	r = video.Merge(
		video.ToRGBA,
		video.Scale(opts.Width, opts.Height, opts.Scaler),
		video.DetectChanges(time.Second, onChange),
	)(r)

	logger.Infof("opened %s (%s) as %s", d.Info().Label, d.ID(), selected)
	return &Source{driver: d, reader: r, prop: selected}, nil
}

// Next returns the next frame. The image is reused by the following call, so
// callers that keep a frame must copy it. io.EOF marks the end of the stream.
func (s *Source) Next() (*image.RGBA, error) {
	img, release, err := s.reader.Read()
	if release != nil {
		defer release()
	}
	if err != nil {
		return nil, err
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected frame type %T", img)
	}
	return rgba, nil
}

// Label names the driver that serves this source.
func (s *Source) Label() string {
	return s.driver.Info().Label
}

// Properties are the stream properties negotiated with the driver.
func (s *Source) Properties() prop.Media {
	return s.prop
}

// Close stops the driver.
func (s *Source) Close() error {
	return s.driver.Close()
}
