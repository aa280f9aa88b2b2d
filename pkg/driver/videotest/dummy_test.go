package videotest

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefx/videodifference/pkg/prop"
)

func TestVideoTestSize(t *testing.T) {
	a, err := newVideoTest("")
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, a.Properties()[0].Width)

	a, err = newVideoTest("32x16")
	require.NoError(t, err)
	assert.Equal(t, 32, a.Properties()[0].Width)
	assert.Equal(t, 16, a.Properties()[0].Height)

	for _, bad := range []string{"big", "31x16", "0x10"} {
		_, err := newVideoTest(bad)
		assert.Error(t, err, bad)
	}
}

func TestVideoTestRecord(t *testing.T) {
	a, err := newVideoTest("14x8")
	require.NoError(t, err)
	require.NoError(t, a.Open())

	r, err := a.VideoRecord(prop.Media{Video: prop.Video{FrameRate: 1000}})
	require.NoError(t, err)

	img, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 14, 8), img.Bounds())

	require.NoError(t, a.Close())
	_, _, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestFrames(t *testing.T) {
	black := image.NewRGBA(image.Rect(0, 0, 2, 1))
	white := image.NewRGBA(image.Rect(0, 0, 2, 1))
	white.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})

	f := NewFrames(black, white)
	assert.Equal(t, 2, f.Properties()[0].Width)

	r, err := f.VideoRecord(prop.Media{})
	require.NoError(t, err)

	for _, expected := range []image.Image{black, white} {
		img, _, err := r.Read()
		require.NoError(t, err)
		assert.Same(t, expected, img)
	}
	_, _, err = r.Read()
	assert.Equal(t, io.EOF, err)

	assert.Nil(t, NewFrames().Properties())
}
