package career

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// The drained portion of the energy bar renders as a neutral gray, so a
// midline pixel either sits in the gray band (empty) or carries color
// (filled). The inset skips the rounded bar caps.
const (
	energyInsetPx    = 5
	energyGrayLow    = 100
	energyGrayHigh   = 140
	energyGraySpread = 12
)

// EnergyEstimate scans the energy bar midline and returns the filled
// percentage 0..100, or -1 when the region yields no usable pixels.
func EnergyEstimate(img image.Image, region image.Rectangle) float64 {
	area := region.Intersect(img.Bounds())
	if area.Empty() {
		return -1
	}
	y := area.Min.Y + area.Dy()/2
	x0 := area.Min.X + energyInsetPx
	x1 := area.Max.X - energyInsetPx
	if x1 <= x0 {
		return -1
	}

	samples := make([]float64, 0, x1-x0)
	for x := x0; x < x1; x++ {
		r16, g16, b16, _ := img.At(x, y).RGBA()
		if grayEmpty(int(r16>>8), int(g16>>8), int(b16>>8)) {
			samples = append(samples, 0)
		} else {
			samples = append(samples, 1)
		}
	}
	return stat.Mean(samples, nil) * 100
}

func grayEmpty(r, g, b int) bool {
	lo := min(r, g, b)
	hi := max(r, g, b)
	if hi-lo > energyGraySpread {
		return false
	}
	return lo >= energyGrayLow && hi <= energyGrayHigh
}
