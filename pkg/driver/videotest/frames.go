package videotest

import (
	"image"
	"io"

	"github.com/framefx/videodifference/pkg/frame"
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

// Frames is an adapter that plays back a fixed list of images and then
// reports io.EOF, the way a finished video file does.
type Frames struct {
	frames []image.Image
	// ReadErr, when set, is returned instead of io.EOF after the last frame.
	ReadErr error
}

// NewFrames returns an adapter playing frames in order.
func NewFrames(frames ...image.Image) *Frames {
	return &Frames{frames: frames}
}

func (f *Frames) Open() error  { return nil }
func (f *Frames) Close() error { return nil }

func (f *Frames) VideoRecord(p prop.Media) (video.Reader, error) {
	i := 0
	return video.ReaderFunc(func() (image.Image, func(), error) {
		if i >= len(f.frames) {
			if f.ReadErr != nil {
				return nil, func() {}, f.ReadErr
			}
			return nil, func() {}, io.EOF
		}
		i++
		return f.frames[i-1], func() {}, nil
	}), nil
}

func (f *Frames) Properties() []prop.Media {
	if len(f.frames) == 0 {
		return nil
	}
	b := f.frames[0].Bounds()
	return []prop.Media{{Video: prop.Video{Width: b.Dx(), Height: b.Dy(), FrameFormat: frame.FormatRGBA}}}
}
