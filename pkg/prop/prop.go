// Package prop describes the properties of a video stream and how well one
// set of properties matches a requested one.
package prop

import (
	"fmt"
	"math"

	"github.com/framefx/videodifference/pkg/frame"
)

// Media is the set of properties a driver can produce.
type Media struct {
	DeviceID string
	Video
}

// Video represents a video's properties
type Video struct {
	Width, Height int
	FrameRate     float32
	FrameFormat   frame.Format
}

func (p Media) String() string {
	return fmt.Sprintf("%dx%d %s @%.1ffps", p.Width, p.Height, p.FrameFormat, p.FrameRate)
}

// FitnessDistance is an implementation for https://w3c.github.io/mediacapture-main/#dfn-fitness-distance
// Zero values in ideal are treated as "don't care". 0 means a perfect match.
func (p Media) FitnessDistance(ideal Media) float64 {
	var dist float64

	dist += numericDistance(float64(p.Width), float64(ideal.Width))
	dist += numericDistance(float64(p.Height), float64(ideal.Height))
	dist += numericDistance(float64(p.FrameRate), float64(ideal.FrameRate))
	if ideal.FrameFormat != "" && p.FrameFormat != ideal.FrameFormat {
		dist++
	}

	return dist
}

func numericDistance(actual, ideal float64) float64 {
	if ideal == 0 || actual == ideal {
		return 0
	}
	return math.Abs(actual-ideal) / math.Max(math.Abs(actual), math.Abs(ideal))
}

// Best returns the candidate closest to ideal. ok is false when candidates is
// empty. Ties keep the earliest candidate.
func Best(candidates []Media, ideal Media) (best Media, ok bool) {
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d := c.FitnessDistance(ideal); d < bestDist {
			best, bestDist, ok = c, d, true
		}
	}
	return
}
