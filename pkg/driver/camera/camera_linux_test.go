//go:build linux

package camera

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera(t *testing.T) {
	defer func(root string) { devRoot = root }(devRoot)
	devRoot = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(devRoot, "video0"), nil, 0644))

	a, err := newCamera("0")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(devRoot, "video0"), a.(*camera).path)
	assert.Empty(t, a.Properties(), "closed camera has no properties")
	assert.NoError(t, a.Close(), "closing an unopened camera is a no-op")

	_, err = newCamera("1")
	assert.True(t, os.IsNotExist(err))

	_, err = newCamera("video0")
	assert.ErrorIs(t, err, errInvalidIndex)
}
