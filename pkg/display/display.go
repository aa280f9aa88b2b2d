// Package display defines where processed frames are shown and how key
// presses come back.
package display

import (
	"image"
	"time"
)

// Key is a key code as reported by the window system, reduced to its low
// byte. KeyNone means no key was pressed before the wait expired.
type Key int

const (
	KeyNone   Key = -1
	KeyEscape Key = 27
	KeySpace  Key = ' '
)

// Display shows frames and polls the keyboard. Implementations are used from
// a single goroutine.
type Display interface {
	// Show renders img. img may be reused by the caller after Show returns.
	Show(img image.Image) error
	// WaitKey waits up to d for a key press.
	WaitKey(d time.Duration) Key
	// IsOpen is false once the user closed the window.
	IsOpen() bool
	Close() error
}
