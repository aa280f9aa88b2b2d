// Package capture provides an OpenCV backed driver for cameras, video files
// and printf-style image sequences such as right%02d.jpg.
package capture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/framefx/videodifference/internal/logging"
	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/frame"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

var errNotOpened = errors.New("capture is not opened")

var logger = logging.NewLogger("driver/capture")

func init() {
	driver.GetManager().Register(driver.Info{
		Label:      "opencv",
		DeviceType: driver.Camera,
		Priority:   driver.PriorityNormal,
	}, newDevice)
	driver.GetManager().Register(driver.Info{
		Label:      "opencv",
		DeviceType: driver.File,
		Priority:   driver.PriorityNormal,
	}, newFile)
}

type capture struct {
	open func() (*gocv.VideoCapture, error)
	name string
	vc   *gocv.VideoCapture
	mat  gocv.Mat
}

func newDevice(target string) (driver.Adapter, error) {
	id, err := strconv.Atoi(target)
	if err != nil || id < 0 {
		return nil, fmt.Errorf("invalid device index %q", target)
	}
	return &capture{
		name: "device " + target,
		open: func() (*gocv.VideoCapture, error) { return gocv.VideoCaptureDevice(id) },
	}, nil
}

func newFile(target string) (driver.Adapter, error) {
	if target == "" {
		return nil, errors.New("empty file name")
	}
	return &capture{
		name: target,
		open: func() (*gocv.VideoCapture, error) { return gocv.VideoCaptureFile(target) },
	}, nil
}

func (c *capture) Open() error {
	vc, err := c.open()
	if err != nil {
		return err
	}
	if !vc.IsOpened() {
		vc.Close()
		return fmt.Errorf("opencv could not open %s", c.name)
	}

	c.vc = vc
	c.mat = gocv.NewMat()
	return nil
}

func (c *capture) Close() error {
	if c.vc == nil {
		return nil
	}

	c.mat.Close()
	err := c.vc.Close()
	c.vc = nil
	return err
}

func (c *capture) VideoRecord(p prop.Media) (video.Reader, error) {
	if c.vc == nil {
		return nil, errNotOpened
	}

	vc := c.vc
	r := video.ReaderFunc(func() (img image.Image, release func(), err error) {
		// A failed grab is how OpenCV reports the end of a file or sequence
		if ok := vc.Read(&c.mat); !ok || c.mat.Empty() {
			logger.Debugf("%s: no more frames", c.name)
			return nil, func() {}, io.EOF
		}

		img, err = c.mat.ToImage()
		if err != nil {
			return nil, func() {}, fmt.Errorf("convert frame: %w", err)
		}
		return img, func() {}, nil
	})

	return r, nil
}

func (c *capture) Properties() []prop.Media {
	if c.vc == nil {
		return nil
	}

	return []prop.Media{{
		Video: prop.Video{
			Width:       int(c.vc.Get(gocv.VideoCaptureFrameWidth)),
			Height:      int(c.vc.Get(gocv.VideoCaptureFrameHeight)),
			FrameRate:   float32(c.vc.Get(gocv.VideoCaptureFPS)),
			FrameFormat: frame.FormatBGR,
		},
	}}
}
