// Command videodifference shows a live video with a per-frame effect applied
// and saves the displayed frame as PNG on request.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/framefx/videodifference/internal/config"
	"github.com/framefx/videodifference/internal/logging"
	"github.com/framefx/videodifference/pkg/display/window"
	"github.com/framefx/videodifference/pkg/prop"
	"github.com/framefx/videodifference/pkg/snapshot"
	"github.com/framefx/videodifference/pkg/source"
	"github.com/framefx/videodifference/pkg/viewer"

	_ "github.com/framefx/videodifference/pkg/driver/camera"    // v4l2 cameras
	_ "github.com/framefx/videodifference/pkg/driver/capture"   // OpenCV cameras, video files and image sequences
	_ "github.com/framefx/videodifference/pkg/driver/screen"    // screen capture
	_ "github.com/framefx/videodifference/pkg/driver/videotest" // synthetic test pattern
)

var logger = logging.NewLogger("main")

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:]))
}

func run(name string, args []string) int {
	cfg, err := config.Parse(name, args, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, config.ErrUsage):
		return 1
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	src, err := source.Open(cfg.Source, source.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scaler: cfg.Scaler,
		OnChange: func(p prop.Media) {
			logger.Debugf("stream is now %dx%d at %.1f fps", p.Width, p.Height, p.FrameRate)
		},
	})
	if err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "Failed to open the video device, video file or image sequence!")
		fmt.Fprintln(os.Stderr)
		config.Usage(os.Stderr, name)
		return 1
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		logger.Errorf("create output directory: %v", err)
		return 1
	}

	win := window.New(cfg.Title)
	defer win.Close()

	v, err := viewer.New(src, win, snapshot.NewWriter(cfg.OutputDir, cfg.Prefix), viewer.Options{
		Mode:   cfg.Mode,
		Delay:  cfg.Delay,
		Output: os.Stdout,
	})
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	stats, err := v.Run()
	logger.Infof("%s: %s", src.Label(), stats)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}
