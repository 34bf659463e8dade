// Package vision holds the screenshot-level primitives shared by the
// recognition components: detection boxes, duplicate collapsing, pixel
// sampling, bond-gauge color classification and an in-process template
// matcher for sub-regions that pipeline nodes cannot reach.
package vision

// Detection is one template-match candidate in screenshot pixel space.
type Detection struct {
	X, Y, W, H int
	Score      float64
}

// Center returns the box center in pixel coordinates.
func (d Detection) Center() (int, int) {
	return d.X + d.W/2, d.Y + d.H/2
}
