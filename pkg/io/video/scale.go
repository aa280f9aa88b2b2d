package video

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

var scalerNames = map[string]Scaler{
	"nearest":         ScalerNearestNeighbor,
	"approx-bilinear": ScalerApproxBiLinear,
	"bilinear":        ScalerBiLinear,
	"catmull-rom":     ScalerCatmullRom,
}

// ScalerNames lists the names ParseScaler accepts.
func ScalerNames() []string {
	return []string{"nearest", "approx-bilinear", "bilinear", "catmull-rom"}
}

// ParseScaler looks up a scaling algorithm by name.
func ParseScaler(name string) (Scaler, error) {
	s, ok := scalerNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown scaler %q", name)
	}
	return s, nil
}

var (
	errUnsupportedImageType = errors.New("scaling: unsupported image type")
	errEmptyFrame           = errors.New("scaling: empty frame")
)

// Scale returns video scaling transform for *image.RGBA frames, so it belongs
// after ToRGBA in a chain.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// A non-positive width or height keeps the aspect ratio of the incoming image.
// When both are non-positive the frames pass through untouched.
func Scale(width, height int, scaler Scaler) TransformFunc {
	return func(r Reader) Reader {
		if width <= 0 && height <= 0 {
			return r
		}
		if scaler == nil {
			scaler = ScalerNearestNeighbor
		}

		var dst *image.RGBA
		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, noopRelease, err
			}
			if release != nil {
				defer release()
			}

			src, ok := img.(*image.RGBA)
			if !ok {
				return nil, noopRelease, errUnsupportedImageType
			}
			if src.Bounds().Empty() {
				return nil, noopRelease, errEmptyFrame
			}

			rect := scaledRect(src.Bounds(), width, height)
			if dst == nil || dst.Rect != rect {
				dst = image.NewRGBA(rect)
			}
			scaler.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
			return dst, noopRelease, nil
		})
	}
}

// scaledRect never returns an empty rectangle for a non-empty src; a side
// derived from the aspect ratio is at least one pixel.
func scaledRect(src image.Rectangle, width, height int) image.Rectangle {
	switch {
	case height <= 0:
		height = max(src.Dy()*width/src.Dx(), 1)
	case width <= 0:
		width = max(src.Dx()*height/src.Dy(), 1)
	}
	return image.Rect(0, 0, width, height)
}
