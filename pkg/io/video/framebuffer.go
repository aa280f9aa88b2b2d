package video

import (
	"image"
)

// FrameBuffer keeps a private copy of one frame as *image.RGBA.
// The zero value is ready to use.
type FrameBuffer struct {
	img  image.RGBA
	full bool
}

// Load returns the stored frame, or nil when nothing was stored yet. The
// image stays valid until the next StoreCopy or Reset.
func (buff *FrameBuffer) Load() *image.RGBA {
	if !buff.full {
		return nil
	}
	return &buff.img
}

// StoreCopy makes a copy of src and store its copy. StoreCopy will reuse as much memory as it can
// from the previous copies. For example, if StoreCopy is given an image that has the same resolution
// from the previous call, StoreCopy will not allocate extra memory and only copy the content
// from src to the previous buffer.
func (buff *FrameBuffer) StoreCopy(src image.Image) {
	imageToRGBA(&buff.img, src)
	buff.full = true
}

// Swap exchanges the contents of two buffers without copying pixels.
func (buff *FrameBuffer) Swap(other *FrameBuffer) {
	buff.img, other.img = other.img, buff.img
	buff.full, other.full = other.full, buff.full
}

// Reset forgets the stored frame but keeps the memory for reuse.
func (buff *FrameBuffer) Reset() {
	buff.full = false
}
