package frame

import (
	"fmt"
	"image"
	"reflect"
	"testing"
)

func TestDecodeYUY2(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y    Cb     Y    Cr
		0x01, 0x82, 0x03, 0x84,
		0x05, 0x86, 0x07, 0x88,
	}
	expected := &image.YCbCr{
		Y:              []byte{0x01, 0x03, 0x05, 0x07},
		YStride:        width,
		Cb:             []byte{0x82, 0x86},
		Cr:             []byte{0x84, 0x88},
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}

	img, _, err := decodeYUY2(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodeUYVY(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		//Cb     Y    Cr     Y
		0x82, 0x01, 0x84, 0x03,
		0x86, 0x05, 0x88, 0x07,
	}
	expected := &image.YCbCr{
		Y:              []byte{0x01, 0x03, 0x05, 0x07},
		YStride:        width,
		Cb:             []byte{0x82, 0x86},
		Cr:             []byte{0x84, 0x88},
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}

	img, _, err := decodeUYVY(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodeSemiPlanar(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	cases := map[string]struct {
		decode DecoderFunc
		cb, cr byte
	}{
		"NV12": {decode: decodeNV12, cb: 0x80, cr: 0x90},
		"NV21": {decode: decodeNV21, cb: 0x90, cr: 0x80},
	}

	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			input := []byte{0x01, 0x02, 0x03, 0x04, 0x80, 0x90}
			img, _, err := c.decode(input, width, height)
			if err != nil {
				t.Fatal(err)
			}
			yuv := img.(*image.YCbCr)
			if !reflect.DeepEqual(yuv.Y, []byte{0x01, 0x02, 0x03, 0x04}) {
				t.Errorf("Wrong luma plane: %v", yuv.Y)
			}
			if yuv.Cb[0] != c.cb || yuv.Cr[0] != c.cr {
				t.Errorf("Wrong chroma, expected cb=%#x cr=%#x, got cb=%#x cr=%#x", c.cb, c.cr, yuv.Cb[0], yuv.Cr[0])
			}
		})
	}
}

func TestDecodeShortFrame(t *testing.T) {
	for _, f := range []Format{FormatI420, FormatNV12, FormatNV21, FormatYUY2, FormatUYVY} {
		d, err := NewDecoder(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := d.Decode([]byte{0x00}, 4, 4); err == nil {
			t.Errorf("%s: expected an error for a truncated frame", f)
		}
	}
}

func TestNewDecoderUnsupported(t *testing.T) {
	if _, err := NewDecoder(FormatBGR); err == nil {
		t.Error("expected BGR to have no raw decoder")
	}
}

func TestFourCCRoundTrip(t *testing.T) {
	code, ok := FormatYUYV.FourCC()
	if !ok || code != 0x56595559 {
		t.Fatalf("unexpected YUYV fourcc %#x", code)
	}
	f, ok := FormatFromFourCC(code)
	if !ok || f != FormatYUY2 {
		t.Fatalf("expected YUY2, got %q", f)
	}
	if _, ok := FormatRGBA.FourCC(); ok {
		t.Error("RGBA has no v4l2 code here")
	}
}

func BenchmarkDecodeYUY2(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	for _, sz := range sizes {
		sz := sz
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			input := make([]byte, sz.width*sz.height*2)
			for i := 0; i < b.N; i++ {
				_, _, err := decodeYUY2(input, sz.width, sz.height)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
