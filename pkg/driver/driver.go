// Package driver defines the frame source drivers and a registry that maps a
// device type to the drivers able to open it.
package driver

import (
	"github.com/framefx/videodifference/pkg/io/video"
	"github.com/framefx/videodifference/pkg/prop"
)

// OpenCloser is an interface with Open and Close method
type OpenCloser interface {
	Open() error
	Close() error
}

// Properter is an interface with Properties method
type Properter interface {
	Properties() []prop.Media
}

// VideoRecorder is an interface with VideoRecord method
type VideoRecorder interface {
	VideoRecord(p prop.Media) (r video.Reader, err error)
}

// Adapter is the raw driver implementation. Adapters are not used directly,
// Manager wraps them into a Driver that enforces the state transitions.
type Adapter interface {
	OpenCloser
	Properter
	VideoRecorder
}

// Info is static information about a driver
type Info struct {
	Label      string
	DeviceType DeviceType
	Priority   Priority
}

// Driver is a wrapped Adapter with an id and a lifecycle state.
type Driver interface {
	Adapter
	ID() string
	Info() Info
	Status() State
}
