package effect

import (
	"fmt"
	"strconv"
)

// Mode selects the effect applied to every frame.
type Mode int

// The numeric value of each mode is the digit key that selects it.
const (
	ModePassthrough Mode = iota
	ModeFrameDifference
	ModeModifiedLaplacian
	ModeLaplacian
	ModeSharpen
	ModeNegative

	numModes
)

// DefaultMode is active when the viewer starts.
const DefaultMode = ModeFrameDifference

var modeNames = [...]string{
	ModePassthrough:       "passthrough",
	ModeFrameDifference:   "frame-difference",
	ModeModifiedLaplacian: "modified-laplacian",
	ModeLaplacian:         "laplacian",
	ModeSharpen:           "sharpen",
	ModeNegative:          "negative",
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// Key is the digit key that selects m.
func (m Mode) Key() rune {
	return '0' + rune(m)
}

// Modes lists every mode in key order.
func Modes() []Mode {
	modes := make([]Mode, 0, numModes)
	for m := ModePassthrough; m < numModes; m++ {
		modes = append(modes, m)
	}
	return modes
}

// ModeForKey maps a digit key to its mode. ok is false for any other key.
func ModeForKey(key rune) (m Mode, ok bool) {
	m = Mode(key - '0')
	return m, key >= '0' && m.Valid()
}

// ParseMode accepts a mode name or its digit.
func ParseMode(s string) (Mode, error) {
	if len(s) == 1 {
		if m, ok := ModeForKey(rune(s[0])); ok {
			return m, nil
		}
	}
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown effect mode %q", s)
}
