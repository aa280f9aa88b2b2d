package effect

import "image"

// Kernel is a 3x3 correlation kernel indexed [row][column].
type Kernel [3][3]int

var (
	LaplacianKernel = Kernel{
		{0, 1, 0},
		{1, -4, 1},
		{0, 1, 0},
	}
	ModifiedLaplacianKernel = Kernel{
		{1, 2, 1},
		{2, -12, 2},
		{1, 2, 1},
	}
	// SharpenKernel is the identity minus LaplacianKernel.
	SharpenKernel = Kernel{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}
)

// Sum of all weights. A zero sum maps flat regions to zero.
func (k Kernel) Sum() int {
	var s int
	for _, row := range k {
		for _, w := range row {
			s += w
		}
	}
	return s
}

// reflect101 maps an out of range coordinate back into [0, n) mirroring
// around the edge pixel without repeating it: -1 -> 1, n -> n-2.
func reflect101(p, n int) int {
	if n == 1 {
		return 0
	}
	for p < 0 || p >= n {
		if p < 0 {
			p = -p
		} else {
			p = 2*(n-1) - p
		}
	}
	return p
}

func saturate(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Filter correlates the R, G and B channels of src with k and writes the
// saturated result to dst, which must have the same bounds. Borders are
// handled with reflect-101. Alpha is set opaque. dst and src must not
// share pixels.
func Filter(dst, src *image.RGBA, k Kernel) {
	b := src.Rect
	w, h := b.Dx(), b.Dy()

	for y := 0; y < h; y++ {
		rows := [3]int{reflect101(y-1, h), y, reflect101(y+1, h)}
		for x := 0; x < w; x++ {
			cols := [3]int{reflect101(x-1, w), x, reflect101(x+1, w)}

			var acc [3]int
			for ky, ry := range rows {
				for kx, cx := range cols {
					weight := k[ky][kx]
					if weight == 0 {
						continue
					}
					i := src.PixOffset(b.Min.X+cx, b.Min.Y+ry)
					acc[0] += weight * int(src.Pix[i])
					acc[1] += weight * int(src.Pix[i+1])
					acc[2] += weight * int(src.Pix[i+2])
				}
			}

			o := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
			dst.Pix[o] = saturate(acc[0])
			dst.Pix[o+1] = saturate(acc[1])
			dst.Pix[o+2] = saturate(acc[2])
			dst.Pix[o+3] = 0xff
		}
	}
}
