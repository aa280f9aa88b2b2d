// Package effect implements the per-frame pixel effects and the frame
// history the temporal difference needs.
//
// Every effect works on the R, G and B channels of *image.RGBA frames with
// 8-bit saturating arithmetic and writes opaque pixels.
package effect

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrShapeMismatch is returned when frames that are combined differ in size.
	ErrShapeMismatch = errors.New("frames differ in size")
	// ErrHistoryNotReady is returned when the frame difference runs before
	// two earlier frames were pushed.
	ErrHistoryNotReady = errors.New("frame history holds fewer than two frames")
	// ErrUnknownMode is returned by Apply for a Mode outside the defined set.
	ErrUnknownMode = errors.New("unknown effect mode")
)

// Transform writes the effect of src into dst. dst has the bounds of src and
// does not share pixels with it.
type Transform func(dst, src *image.RGBA)

// Laplacian applies LaplacianKernel.
func Laplacian(dst, src *image.RGBA) {
	Filter(dst, src, LaplacianKernel)
}

// ModifiedLaplacian applies ModifiedLaplacianKernel.
func ModifiedLaplacian(dst, src *image.RGBA) {
	Filter(dst, src, ModifiedLaplacianKernel)
}

// Sharpen subtracts the Laplacian of src from src. The Laplacian is kept
// signed until the subtraction, which is the same as one pass of
// SharpenKernel.
func Sharpen(dst, src *image.RGBA) {
	Filter(dst, src, SharpenKernel)
}

// Negative inverts every sample: v -> 255 - v.
func Negative(dst, src *image.RGBA) {
	forEachPixel(dst, src, func(d, s []uint8) {
		d[0], d[1], d[2], d[3] = 0xff-s[0], 0xff-s[1], 0xff-s[2], 0xff
	})
}

// FrameDifference writes cur - prev2, saturated at zero. prev1 only takes
// part in the shape check.
func FrameDifference(dst, prev2, prev1, cur *image.RGBA) error {
	size := cur.Rect.Size()
	if prev2.Rect.Size() != size || prev1.Rect.Size() != size {
		return fmt.Errorf("%w: %v, %v, %v", ErrShapeMismatch, prev2.Rect.Size(), prev1.Rect.Size(), size)
	}

	forEachPixel2(dst, cur, prev2, func(d, c, p []uint8) {
		d[0] = saturate(int(c[0]) - int(p[0]))
		d[1] = saturate(int(c[1]) - int(p[1]))
		d[2] = saturate(int(c[2]) - int(p[2]))
		d[3] = 0xff
	})
	return nil
}

// spatial maps every mode that only looks at the current frame to its
// transform.
var spatial = map[Mode]Transform{
	ModeLaplacian:         Laplacian,
	ModeModifiedLaplacian: ModifiedLaplacian,
	ModeSharpen:           Sharpen,
	ModeNegative:          Negative,
}

// Apply runs the effect selected by mode on cur and returns the output.
//
// The output is written into dst, which is reallocated when nil or of a
// different size; pass the previous result back in to reuse its memory.
// ModePassthrough returns cur itself. ModeFrameDifference needs hist to hold
// two frames; Apply does not push cur into hist.
func Apply(mode Mode, dst, cur *image.RGBA, hist *History) (*image.RGBA, error) {
	switch mode {
	case ModePassthrough:
		return cur, nil
	case ModeFrameDifference:
		if !hist.Ready() {
			return nil, ErrHistoryNotReady
		}
		dst = fit(dst, cur)
		if err := FrameDifference(dst, hist.Prev2(), hist.Prev1(), cur); err != nil {
			return nil, err
		}
		return dst, nil
	case ModeLaplacian, ModeModifiedLaplacian, ModeSharpen, ModeNegative:
		dst = fit(dst, cur)
		spatial[mode](dst, cur)
		return dst, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// fit returns dst when it can hold an image of src's size, or a new image.
// The result is anchored at (0, 0).
func fit(dst, src *image.RGBA) *image.RGBA {
	rect := image.Rectangle{Max: src.Rect.Size()}
	if dst == nil || dst.Rect != rect || dst == src {
		return image.NewRGBA(rect)
	}
	return dst
}

func forEachPixel(dst, src *image.RGBA, f func(d, s []uint8)) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		si := src.PixOffset(src.Rect.Min.X, src.Rect.Min.Y+y)
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			f(dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4])
			si += 4
			di += 4
		}
	}
}

func forEachPixel2(dst, a, b *image.RGBA, f func(d, a, b []uint8)) {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	for y := 0; y < h; y++ {
		ai := a.PixOffset(a.Rect.Min.X, a.Rect.Min.Y+y)
		bi := b.PixOffset(b.Rect.Min.X, b.Rect.Min.Y+y)
		di := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < w; x++ {
			f(dst.Pix[di:di+4:di+4], a.Pix[ai:ai+4:ai+4], b.Pix[bi:bi+4:bi+4])
			ai += 4
			bi += 4
			di += 4
		}
	}
}
