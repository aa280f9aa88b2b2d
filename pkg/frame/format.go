package frame

// Format is the raw pixel layout a capture device hands out.
type Format string

const (
	// YUV Formats

	// FormatI420 https://www.fourcc.org/pixel-format/yuv-i420/
	FormatI420 Format = "I420"
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	FormatNV21 Format = "NV21"
	// FormatYUY2 https://www.fourcc.org/pixel-format/yuv-yuy2/
	FormatYUY2 Format = "YUY2"
	// FormatUYVY https://www.fourcc.org/pixel-format/yuv-uyvy/
	FormatUYVY Format = "UYVY"

	// RGB Formats

	// FormatRGBA is 8 bits per channel, R G B A order
	FormatRGBA Format = "RGBA"
	// FormatBGR is 8 bits per channel packed B G R, the OpenCV default
	FormatBGR Format = "BGR"

	// Compressed Formats

	// FormatMJPEG https://www.fourcc.org/mjpg/
	FormatMJPEG Format = "MJPEG"
)

// FormatYUYV is an alias of FormatYUY2
const FormatYUYV = FormatYUY2

func fourcc(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// V4L2 pixel format codes, see linux/videodev2.h
var fourccs = map[Format]uint32{
	FormatI420:  fourcc('Y', 'U', '1', '2'),
	FormatNV12:  fourcc('N', 'V', '1', '2'),
	FormatNV21:  fourcc('N', 'V', '2', '1'),
	FormatYUY2:  fourcc('Y', 'U', 'Y', 'V'),
	FormatUYVY:  fourcc('U', 'Y', 'V', 'Y'),
	FormatMJPEG: fourcc('M', 'J', 'P', 'G'),
}

// FourCC returns the V4L2 pixel format code of f. ok is false when f has no
// V4L2 equivalent that this package can decode.
func (f Format) FourCC() (code uint32, ok bool) {
	code, ok = fourccs[f]
	return
}

// FormatFromFourCC is the inverse of Format.FourCC.
func FormatFromFourCC(code uint32) (Format, bool) {
	for f, c := range fourccs {
		if c == code {
			return f, true
		}
	}
	return "", false
}
