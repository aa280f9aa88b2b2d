package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framefx/videodifference/pkg/frame"
)

func TestFitnessDistance(t *testing.T) {
	p := Media{Video: Video{Width: 640, Height: 480, FrameFormat: frame.FormatYUYV}}

	assert.Zero(t, p.FitnessDistance(Media{}))
	assert.Zero(t, p.FitnessDistance(Media{Video: Video{Width: 640}}))
	assert.InDelta(t, 0.5, p.FitnessDistance(Media{Video: Video{Width: 1280}}), 1e-9)
	assert.InDelta(t, 1.0, p.FitnessDistance(Media{Video: Video{FrameFormat: frame.FormatMJPEG}}), 1e-9)
}

func TestBest(t *testing.T) {
	candidates := []Media{
		{Video: Video{Width: 1920, Height: 1080, FrameFormat: frame.FormatMJPEG}},
		{Video: Video{Width: 640, Height: 480, FrameFormat: frame.FormatYUYV}},
		{Video: Video{Width: 320, Height: 240, FrameFormat: frame.FormatYUYV}},
	}

	best, ok := Best(candidates, Media{Video: Video{Width: 600, Height: 400}})
	require.True(t, ok)
	assert.Equal(t, 640, best.Width)

	_, ok = Best(nil, Media{})
	assert.False(t, ok)

	best, ok = Best(candidates, Media{})
	require.True(t, ok)
	assert.Equal(t, candidates[0], best, "ties keep the first candidate")
}
