// Package snapshot saves frames as numbered PNG files.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/framefx/videodifference/internal/logging"
)

// DefaultPrefix gives processed_frame000.png, processed_frame001.png, ...
const DefaultPrefix = "processed_frame"

// maxSkips bounds the search for a free name when many already exist.
const maxSkips = 100000

var errNoFreeName = errors.New("no free file name")

var logger = logging.NewLogger("snapshot")

// Writer names files <dir>/<prefix>NNN.png with a counter that starts at 0
// and only ever increases. Names that already exist on disk are skipped, so
// a Writer never overwrites a file.
type Writer struct {
	dir    string
	prefix string
	next   int
}

// NewWriter returns a Writer saving into dir. An empty prefix selects
// DefaultPrefix.
func NewWriter(dir, prefix string) *Writer {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Writer{dir: dir, prefix: prefix}
}

// Name returns the file name for counter n.
func (w *Writer) Name(n int) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s%03d.png", w.prefix, n))
}

// Save encodes img to the next free name and returns that name.
func (w *Writer) Save(img image.Image) (string, error) {
	f, name, err := w.create()
	if err != nil {
		return "", err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return name, nil
}

func (w *Writer) create() (*os.File, string, error) {
	for i := 0; i < maxSkips; i++ {
		name := w.Name(w.next)
		w.next++

		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		switch {
		case err == nil:
			return f, name, nil
		case errors.Is(err, os.ErrExist):
			logger.Debugf("%s exists, skipping", name)
		default:
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("%w after %s", errNoFreeName, w.Name(w.next-1))
}
