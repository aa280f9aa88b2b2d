package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterNames(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	for _, expected := range []string{"processed_frame000.png", "processed_frame001.png", "processed_frame002.png"} {
		name, err := w.Save(img)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, expected), name)
	}

	assert.Equal(t, filepath.Join(dir, "processed_frame1000.png"), w.Name(1000))
}

func TestWriterNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "shot001.png")
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o644))

	w := NewWriter(dir, "shot")
	var names []string
	for i := 0; i < 3; i++ {
		name, err := w.Save(image.NewRGBA(image.Rect(0, 0, 1, 1)))
		require.NoError(t, err)
		names = append(names, filepath.Base(name))
	}
	assert.Equal(t, []string{"shot000.png", "shot002.png", "shot003.png"}, names)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter(t.TempDir(), "")
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})

	name, err := w.Save(src)
	require.NoError(t, err)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	r, g, b, _ := img.At(2, 1).RGBA()
	assert.Equal(t, [3]uint32{10, 20, 30}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestWriterMissingDir(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "nope"), "")
	_, err := w.Save(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}
