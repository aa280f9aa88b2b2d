package source

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefx/videodifference/pkg/driver"
	"github.com/framefx/videodifference/pkg/driver/videotest"
	"github.com/framefx/videodifference/pkg/prop"
)

func TestTargets(t *testing.T) {
	cases := map[string][]target{
		"0":              {{driver.Camera, "0"}, {driver.File, "0"}},
		"12":             {{driver.Camera, "12"}, {driver.File, "12"}},
		"video.avi":      {{driver.File, "video.avi"}},
		"right%02d.jpg":  {{driver.File, "right%02d.jpg"}},
		"videotest":      {{driver.Synthetic, ""}},
		"videotest:8x4":  {{driver.Synthetic, "8x4"}},
		"screen":         {{driver.Screen, "0"}},
		"screen:1":       {{driver.Screen, "1"}},
		"screenshot.png": {{driver.File, "screenshot.png"}},
	}

	for arg, expected := range cases {
		assert.Equal(t, expected, targets(arg), arg)
	}
}

func TestOpenSynthetic(t *testing.T) {
	var changes []prop.Media
	s, err := Open("videotest:16x8", Options{OnChange: func(p prop.Media) {
		changes = append(changes, p)
	}})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "videotest:16x8", s.Label())
	assert.Equal(t, 16, s.Properties().Width)

	img, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Rect)
	require.NotEmpty(t, changes)
	assert.Equal(t, 16, changes[0].Width)
}

func TestOpenScaled(t *testing.T) {
	s, err := Open("videotest:16x8", Options{Width: 8})
	require.NoError(t, err)
	defer s.Close()

	img, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Rect)
}

func TestOpenFailure(t *testing.T) {
	// Only the synthetic driver is linked into this test binary
	for _, arg := range []string{"0", "missing.avi", "videotest:oops"} {
		_, err := Open(arg, Options{})
		assert.ErrorIs(t, err, ErrOpen, arg)
	}
}

func TestFromAdapter(t *testing.T) {
	gray := image.NewRGBA(image.Rect(0, 0, 2, 2))
	gray.SetRGBA(1, 1, color.RGBA{128, 128, 128, 255})
	frames := videotest.NewFrames(gray, image.NewGray(image.Rect(0, 0, 2, 2)))

	s, err := FromAdapter(frames, driver.Info{Label: "frames"}, Options{})
	require.NoError(t, err)

	img, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, gray.Pix, img.Pix)
	assert.NotSame(t, gray, img, "frames are normalised into a private buffer")

	img, err = s.Next()
	require.NoError(t, err, "non-RGBA frames are converted")
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Rect)

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, s.Close())
}
