//go:build linux

package camera

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"sync"

	"github.com/blackjack/webcam"

	"github.com/framefx/videodifference/internal/logging"
	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/frame"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

const (
	maxEmptyFrameCount = 5
	// seconds
	frameTimeout = 5
)

var (
	errReadTimeout = errors.New("read timeout")
	errEmptyFrame  = errors.New("empty frame")
)

var logger = logging.NewLogger("driver/camera")

// supportedFormats in order of preference, cheapest to decode first
var supportedFormats = []frame.Format{
	frame.FormatYUYV,
	frame.FormatUYVY,
	frame.FormatNV12,
	frame.FormatI420,
	frame.FormatMJPEG,
}

// Camera implementation using v4l2
// Reference: https://linuxtv.org/downloads/v4l-dvb-apis/uapi/v4l/videodev.html#videodev
type camera struct {
	path   string
	cam    *webcam.Webcam
	mutex  sync.Mutex
	cancel func()
}

func init() {
	driver.GetManager().Register(driver.Info{
		Label:      "v4l2",
		DeviceType: driver.Camera,
		Priority:   driver.PriorityHigh,
	}, newCamera)
}

func newCamera(target string) (driver.Adapter, error) {
	path, err := DevicePath(target)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &camera{path: path}, nil
}

func (c *camera) Open() error {
	cam, err := webcam.Open(c.path)
	if err != nil {
		return err
	}

	c.cam = cam
	return nil
}

func (c *camera) Close() error {
	if c.cam == nil {
		return nil
	}

	if c.cancel != nil {
		// Let the reader knows that the caller has closed the camera
		c.cancel()
		// Wait until the reader unref the buffer
		c.mutex.Lock()
		defer c.mutex.Unlock()

		// StopStreaming frees the mmap buffers. Frames handed out earlier were
		// copied into Go memory, so they stay valid.
		if err := c.cam.StopStreaming(); err != nil {
			logger.Warnf("stop streaming %s: %v", c.path, err)
		}
		c.cancel = nil
	}
	err := c.cam.Close()
	c.cam = nil
	return err
}

func (c *camera) VideoRecord(p prop.Media) (video.Reader, error) {
	decoder, err := frame.NewDecoder(p.FrameFormat)
	if err != nil {
		return nil, err
	}

	code, _ := p.FrameFormat.FourCC()
	_, w, h, err := c.cam.SetImageFormat(webcam.PixelFormat(code), uint32(p.Width), uint32(p.Height))
	if err != nil {
		return nil, err
	}
	// The device may round the requested size
	width, height := int(w), int(h)
	logger.Debugf("%s streaming %dx%d %s", c.path, width, height, p.FrameFormat)

	if err := c.cam.StartStreaming(); err != nil {
		return nil, err
	}

	cam := c.cam

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	var buf []byte
	r := video.ReaderFunc(func() (img image.Image, release func(), err error) {
		// Lock to avoid accessing the buffer after StopStreaming()
		c.mutex.Lock()
		defer c.mutex.Unlock()

		// Wait until a frame is ready
		for i := 0; i < maxEmptyFrameCount; i++ {
			if ctx.Err() != nil {
				// Return EOF if the camera is already closed.
				return nil, func() {}, io.EOF
			}

			err := cam.WaitForFrame(frameTimeout)
			switch err.(type) {
			case nil:
			case *webcam.Timeout:
				return nil, func() {}, errReadTimeout
			default:
				// Camera has been stopped.
				return nil, func() {}, err
			}

			b, err := cam.ReadFrame()
			if err != nil {
				// Camera has been stopped.
				return nil, func() {}, err
			}

			// Frame is empty.
			// Retry reading and return errEmptyFrame if it exceeds maxEmptyFrameCount.
			if len(b) == 0 {
				continue
			}

			if len(b) > len(buf) {
				// Grow the intermediate buffer
				buf = make([]byte, len(b))
			}

			// move the memory from mmap to Go. This will guarantee that any data that's going out
			// from this reader will be Go safe. Otherwise, it's possible that outside of this reader
			// that this memory is still being used even after we close it.
			n := copy(buf, b)
			return decoder.Decode(buf[:n], width, height)
		}
		return nil, func() {}, errEmptyFrame
	})

	return r, nil
}

func (c *camera) Properties() []prop.Media {
	properties := make([]prop.Media, 0)
	if c.cam == nil {
		return properties
	}

	supported := c.cam.GetSupportedFormats()
	for _, f := range supportedFormats {
		code, _ := f.FourCC()
		pf := webcam.PixelFormat(code)
		if _, ok := supported[pf]; !ok {
			continue
		}
		for _, frameSize := range c.cam.GetSupportedFrameSizes(pf) {
			properties = append(properties, prop.Media{
				Video: prop.Video{
					Width:       int(frameSize.MaxWidth),
					Height:      int(frameSize.MaxHeight),
					FrameFormat: f,
				},
			})
		}
	}
	return properties
}
