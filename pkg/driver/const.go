package driver

// DeviceType represents human readable device type. DeviceType
// can be useful to filter the drivers too.
type DeviceType string

const (
	// Camera represents camera devices addressed by index
	Camera DeviceType = "camera"
	// Screen represents screen devices
	Screen DeviceType = "screen"
	// File represents video files and numbered image sequences
	File DeviceType = "file"
	// Synthetic represents generated test footage
	Synthetic DeviceType = "synthetic"
)

// Priority decides which driver is tried first when several can serve the
// same device type. Higher runs first.
type Priority int

const (
	PriorityLow    Priority = -100
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 100
)
