/*
Package camera provides a V4L2 camera driver.

A camera is addressed by its index N, which maps to the device node
/dev/videoN. Importing the package registers the driver for driver.Camera on
Linux; on other systems nothing is registered and cameras are left to the
OpenCV capture driver.
*/
package camera

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
)

var errInvalidIndex = errors.New("camera index must be a non-negative integer")

// devRoot is where device nodes live. Tests point it at a temp dir.
var devRoot = "/dev"

// DevicePath returns the device node for the camera index in target.
func DevicePath(target string) (string, error) {
	n, err := strconv.Atoi(target)
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: %q", errInvalidIndex, target)
	}
	return filepath.Join(devRoot, "video"+strconv.Itoa(n)), nil
}
