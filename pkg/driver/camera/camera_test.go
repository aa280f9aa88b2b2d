package camera

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevicePath(t *testing.T) {
	defer func(root string) { devRoot = root }(devRoot)
	devRoot = filepath.Join("tmp", "dev")

	path, err := DevicePath("2")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("tmp", "dev", "video2"), path)

	path, err = DevicePath("007")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("tmp", "dev", "video7"), path)

	for _, bad := range []string{"", "-1", "video.avi", "1.5"} {
		_, err := DevicePath(bad)
		assert.ErrorIs(t, err, errInvalidIndex, bad)
	}
}
