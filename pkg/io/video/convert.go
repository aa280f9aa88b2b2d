package video

import (
	"image"

	"golang.org/x/image/draw"
)

// imageToRGBA converts src to *image.RGBA anchored at (0, 0) and stores it
// in dst, reusing dst.Pix when it is large enough.
func imageToRGBA(dst *image.RGBA, src image.Image) {
	if dst == nil {
		panic("dst can't be nil")
	}

	bounds := src.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	size := 4 * rect.Dx() * rect.Dy()
	if cap(dst.Pix) < size {
		dst.Pix = make([]uint8, size)
	}
	dst.Pix = dst.Pix[:size]
	dst.Stride = 4 * rect.Dx()
	dst.Rect = rect

	if s, ok := src.(*image.RGBA); ok && s.Stride == dst.Stride {
		off := s.PixOffset(bounds.Min.X, bounds.Min.Y)
		copy(dst.Pix, s.Pix[off:off+size])
		return
	}
	draw.Draw(dst, rect, src, bounds.Min, draw.Src)
}

// ToRGBA converts every frame of r to *image.RGBA with an origin of (0, 0).
// The returned image is owned by the reader and is overwritten by the next
// Read; the upstream frame is released before returning.
func ToRGBA(r Reader) Reader {
	var rgba image.RGBA
	return ReaderFunc(func() (image.Image, func(), error) {
		img, release, err := r.Read()
		if err != nil {
			return nil, noopRelease, err
		}

		imageToRGBA(&rgba, img)
		if release != nil {
			release()
		}
		return &rgba, noopRelease, nil
	})
}
