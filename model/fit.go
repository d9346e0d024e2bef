package model

import (
	"math"

	"github.com/pkg/errors"
)

// FitToViewport maps points into [0, width) x [0, height).
//
// Patterns that do not fit on an axis are scaled down uniformly (the smaller
// of the two axis factors wins, so the aspect ratio is kept); patterns that
// fit are never scaled up. The result is centred in the viewport and every
// coordinate is clamped into range. The output has the same length and order
// as the input.
func FitToViewport(points Pattern, width, height int) (Pattern, error) {
	if len(points) == 0 {
		return Pattern{}, nil
	}
	if width < 2 || height < 2 {
		return nil, errors.Wrapf(ErrViewportTooSmall, "[FitToViewport] %dx%d", width, height)
	}

	minX, maxX := float64(points[0].X), float64(points[0].X)
	minY, maxY := float64(points[0].Y), float64(points[0].Y)
	for _, p := range points[1:] {
		minX = math.Min(minX, float64(p.X))
		maxX = math.Max(maxX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxY = math.Max(maxY, float64(p.Y))
	}

	var (
		viewWidth     = float64(width)
		viewHeight    = float64(height)
		patternWidth  = maxX - minX
		patternHeight = maxY - minY
		scale         = math.Min(axisScale(patternWidth, viewWidth), axisScale(patternHeight, viewHeight))
		xOffset       = (viewWidth-patternWidth*scale)/2 - minX*scale
		yOffset       = (viewHeight-patternHeight*scale)/2 - minY*scale
	)

	fitted := make(Pattern, len(points))
	for i, p := range points {
		fitted[i] = Point{
			X: fitAxis(float64(p.X), scale, xOffset, width),
			Y: fitAxis(float64(p.Y), scale, yOffset, height),
		}
	}
	return fitted, nil
}

// axisScale only shrinks: extents that already fit keep a factor of 1.
func axisScale(extent, target float64) float64 {
	if extent >= target {
		return (target - 2) / extent
	}
	return 1
}

func fitAxis(v, scale, offset float64, limit int) int {
	c := int(math.Floor(v*scale + offset))
	return max(0, min(limit-1, c))
}
