package effect

import (
	"image"

	"github.com/framefx/videodifference/pkg/io/video"
)

// History keeps private copies of the two frames before the current one.
// The zero value is empty.
type History struct {
	prev1, prev2 video.FrameBuffer
	n            int
}

// Push shifts the history by one frame: t-2 <- t-1, t-1 <- frame.
func (h *History) Push(frame image.Image) {
	h.prev2.Swap(&h.prev1)
	h.prev1.StoreCopy(frame)
	if h.n < 2 {
		h.n++
	}
}

// Ready reports whether two frames were pushed since the last Reset.
func (h *History) Ready() bool {
	return h != nil && h.n == 2
}

// Prev1 is the frame at t-1, nil until one frame was pushed.
func (h *History) Prev1() *image.RGBA {
	return h.prev1.Load()
}

// Prev2 is the frame at t-2, nil until two frames were pushed.
func (h *History) Prev2() *image.RGBA {
	return h.prev2.Load()
}

// Reset empties the history, keeping its memory.
func (h *History) Reset() {
	h.prev1.Reset()
	h.prev2.Reset()
	h.n = 0
}
