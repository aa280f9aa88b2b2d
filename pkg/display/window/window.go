// Package window shows frames in an OpenCV HighGUI window.
package window

import (
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/framefx/videodifference/pkg/display"
)

// DefaultTitle is used when New is given an empty title.
const DefaultTitle = "this is live! - q or esc to quit - space to save frame"

// Window is a resizable HighGUI window that keeps the frame aspect ratio.
type Window struct {
	w *gocv.Window
}

var _ display.Display = (*Window)(nil)

// New opens a window titled title.
func New(title string) *Window {
	if title == "" {
		title = DefaultTitle
	}
	w := gocv.NewWindow(title)
	w.SetWindowProperty(gocv.WindowPropertyAspectRatio, gocv.WindowKeepRatio)
	return &Window{w: w}
}

// Show converts img to a BGR matrix and displays it.
func (win *Window) Show(img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	win.w.IMShow(mat)
	return nil
}

// WaitKey blocks for at most d. HighGUI treats 0 as "forever", so d is
// rounded up to at least one millisecond.
func (win *Window) WaitKey(d time.Duration) display.Key {
	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	key := win.w.WaitKey(ms)
	if key < 0 {
		return display.KeyNone
	}
	return display.Key(key & 0xff)
}

func (win *Window) IsOpen() bool {
	return win.w.IsOpen()
}

func (win *Window) Close() error {
	return win.w.Close()
}
