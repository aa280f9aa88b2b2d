package frame

import (
	"fmt"
	"image"
)

func decodeI420(frame []byte, width, height int) (image.Image, func(), error) {
	yi := width * height
	cbi := yi + width*height/4
	cri := cbi + width*height/4

	if cri > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), cri)
	}

	return &image.YCbCr{
		Y:              frame[:yi],
		YStride:        width,
		Cb:             frame[yi:cbi],
		Cr:             frame[cbi:cri],
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

// decodeSemiPlanar splits the interleaved chroma plane of NV12/NV21.
// cbFirst is true for NV12 (Cb Cr pairs) and false for NV21 (Cr Cb pairs).
func decodeSemiPlanar(frame []byte, width, height int, cbFirst bool) (image.Image, func(), error) {
	yi := width * height
	ci := yi + width*height/2

	if ci > len(frame) {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), ci)
	}

	n := (ci - yi) / 2
	cb := make([]byte, n)
	cr := make([]byte, n)
	for i, j := yi, 0; j < n; i, j = i+2, j+1 {
		if cbFirst {
			cb[j], cr[j] = frame[i], frame[i+1]
		} else {
			cr[j], cb[j] = frame[i], frame[i+1]
		}
	}

	return &image.YCbCr{
		Y:              frame[:yi],
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeNV12(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, true)
}

func decodeNV21(frame []byte, width, height int) (image.Image, func(), error) {
	return decodeSemiPlanar(frame, width, height, false)
}

// decodePacked422 unpacks YUY2 and UYVY. yFirst selects YUY2 byte order.
func decodePacked422(frame []byte, width, height int, yFirst bool) (image.Image, func(), error) {
	yi := width * height
	ci := yi / 2
	fi := yi + 2*ci

	if len(frame) != fi {
		return nil, func() {}, fmt.Errorf("frame length (%d) less than expected (%d)", len(frame), fi)
	}

	y := make([]byte, yi)
	cb := make([]byte, ci)
	cr := make([]byte, ci)

	fast := 0
	slow := 0
	for i := 0; i < fi; i += 4 {
		if yFirst {
			y[fast], cb[slow], y[fast+1], cr[slow] = frame[i], frame[i+1], frame[i+2], frame[i+3]
		} else {
			cb[slow], y[fast], cr[slow], y[fast+1] = frame[i], frame[i+1], frame[i+2], frame[i+3]
		}
		fast += 2
		slow++
	}

	return &image.YCbCr{
		Y:              y,
		YStride:        width,
		Cb:             cb,
		Cr:             cr,
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}, func() {}, nil
}

func decodeYUY2(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePacked422(frame, width, height, true)
}

func decodeUYVY(frame []byte, width, height int) (image.Image, func(), error) {
	return decodePacked422(frame, width, height, false)
}
