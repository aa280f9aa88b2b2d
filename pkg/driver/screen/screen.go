// Package screen provides a driver that captures a display as video.
package screen

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/kbinani/screenshot"

	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/frame"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

var errNoDisplay = errors.New("no such display")

// numDisplays is swapped in tests
var numDisplays = screenshot.NumActiveDisplays

func init() {
	driver.GetManager().Register(driver.Info{
		Label:      "screen",
		DeviceType: driver.Screen,
		Priority:   driver.PriorityNormal,
	}, newScreen)
}

type screen struct {
	displayIndex int
	doneCh       chan struct{}
}

func newScreen(target string) (driver.Adapter, error) {
	i, err := strconv.Atoi(target)
	if err != nil || i < 0 {
		return nil, fmt.Errorf("%w: %q", errNoDisplay, target)
	}
	return &screen{displayIndex: i}, nil
}

func (s *screen) Open() error {
	if n := numDisplays(); s.displayIndex >= n {
		return fmt.Errorf("%w: %d, %d active", errNoDisplay, s.displayIndex, n)
	}
	s.doneCh = make(chan struct{})
	return nil
}

func (s *screen) Close() error {
	if s.doneCh != nil {
		close(s.doneCh)
		s.doneCh = nil
	}
	return nil
}

func (s *screen) VideoRecord(selectedProp prop.Media) (video.Reader, error) {
	doneCh := s.doneCh
	r := video.ReaderFunc(func() (img image.Image, release func(), err error) {
		select {
		case <-doneCh:
			return nil, func() {}, io.EOF
		default:
		}

		img, err = screenshot.CaptureDisplay(s.displayIndex)
		release = func() {}
		return
	})
	return r, nil
}

func (s *screen) Properties() []prop.Media {
	resolution := screenshot.GetDisplayBounds(s.displayIndex)
	supportedProp := prop.Media{
		Video: prop.Video{
			Width:       resolution.Dx(),
			Height:      resolution.Dy(),
			FrameFormat: frame.FormatRGBA,
		},
	}
	return []prop.Media{supportedProp}
}
