// Package videotest provides dummy video drivers for testing: a colour bar
// generator that behaves like a camera, and a fixed frame list that ends
// with io.EOF like a file.
package videotest

import (
	"context"
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/frame"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

const (
	defaultWidth     = 640
	defaultHeight    = 480
	defaultFrameRate = 30
)

func init() {
	driver.GetManager().Register(
		driver.Info{Label: "videotest", DeviceType: driver.Synthetic, Priority: driver.PriorityNormal},
		newVideoTest,
	)
}

type dummy struct {
	width, height int
	closed        <-chan struct{}
	cancel        func()
	tick          *time.Ticker
}

// newVideoTest accepts an empty target or a size such as "320x240".
func newVideoTest(target string) (driver.Adapter, error) {
	d := &dummy{width: defaultWidth, height: defaultHeight}
	if target == "" {
		return d, nil
	}

	if _, err := fmt.Sscanf(target, "%dx%d", &d.width, &d.height); err != nil {
		return nil, fmt.Errorf("videotest size %q: %w", target, err)
	}
	// 4:2:2 chroma needs an even width
	if d.width <= 0 || d.height <= 0 || d.width%2 != 0 {
		return nil, fmt.Errorf("videotest size %q: width must be even and both positive", target)
	}
	return d, nil
}

func (d *dummy) Open() error {
	ctx, cancel := context.WithCancel(context.Background())
	d.closed = ctx.Done()
	d.cancel = cancel
	return nil
}

func (d *dummy) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	if d.tick != nil {
		d.tick.Stop()
	}
	return nil
}

func (d *dummy) VideoRecord(p prop.Media) (video.Reader, error) {
	if p.FrameRate == 0 {
		p.FrameRate = defaultFrameRate
	}
	if p.Width == 0 || p.Height == 0 {
		p.Width, p.Height = d.width, d.height
	}

	colors := [][3]byte{
		{235, 128, 128},
		{210, 16, 146},
		{170, 166, 16},
		{145, 54, 34},
		{107, 202, 222},
		{82, 90, 240},
		{41, 240, 110},
	}

	yi := p.Width * p.Height
	ci := yi / 2
	yy := make([]byte, yi)
	cb := make([]byte, ci)
	cr := make([]byte, ci)
	yyBase := make([]byte, yi)
	cbBase := make([]byte, ci)
	crBase := make([]byte, ci)
	hColorBarEnd := p.Height * 3 / 4
	wGradationEnd := p.Width * 5 / 7
	for y := 0; y < hColorBarEnd; y++ {
		yi := p.Width * y
		ci := p.Width * y / 2
		// Color bar
		for x := 0; x < p.Width; x++ {
			c := x * 7 / p.Width
			yyBase[yi+x] = uint8(uint16(colors[c][0]) * 75 / 100)
			cbBase[ci+x/2] = colors[c][1]
			crBase[ci+x/2] = colors[c][2]
		}
	}
	for y := hColorBarEnd; y < p.Height; y++ {
		yi := p.Width * y
		ci := p.Width * y / 2
		for x := 0; x < wGradationEnd; x++ {
			// Gray gradation
			yyBase[yi+x] = uint8(x * 255 / wGradationEnd)
			cbBase[ci+x/2] = 128
			crBase[ci+x/2] = 128
		}
		for x := wGradationEnd; x < p.Width; x++ {
			// Noise area
			cbBase[ci+x/2] = 128
			crBase[ci+x/2] = 128
		}
	}
	random := rand.New(rand.NewSource(0))

	tick := time.NewTicker(time.Duration(float32(time.Second) / p.FrameRate))
	d.tick = tick
	closed := d.closed

	r := video.ReaderFunc(func() (image.Image, func(), error) {
		select {
		case <-closed:
			return nil, func() {}, io.EOF
		default:
		}

		select {
		case <-closed:
			return nil, func() {}, io.EOF
		case <-tick.C:
		}

		copy(yy, yyBase)
		copy(cb, cbBase)
		copy(cr, crBase)
		for y := hColorBarEnd; y < p.Height; y++ {
			yi := p.Width * y
			for x := wGradationEnd; x < p.Width; x++ {
				// Noise
				yy[yi+x] = uint8(random.Int31n(2) * 255)
			}
		}
		return &image.YCbCr{
			Y:              yy,
			YStride:        p.Width,
			Cb:             cb,
			Cr:             cr,
			CStride:        p.Width / 2,
			SubsampleRatio: image.YCbCrSubsampleRatio422,
			Rect:           image.Rect(0, 0, p.Width, p.Height),
		}, func() {}, nil
	})

	return r, nil
}

func (d *dummy) Properties() []prop.Media {
	return []prop.Media{
		{
			Video: prop.Video{
				Width:       d.width,
				Height:      d.height,
				FrameRate:   defaultFrameRate,
				FrameFormat: frame.FormatYUYV,
			},
		},
	}
}
