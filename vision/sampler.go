package vision

import "image"

// ClampedSample offsets (cx, cy) by (dx, dy) and clamps the result into
// bounds. Out-of-range requests snap to the nearest edge, never error.
func ClampedSample(bounds image.Rectangle, cx, cy, dx, dy int) image.Point {
	p := image.Pt(cx+dx, cy+dy)
	if p.X >= bounds.Max.X {
		p.X = bounds.Max.X - 1
	}
	if p.X < bounds.Min.X {
		p.X = bounds.Min.X
	}
	if p.Y >= bounds.Max.Y {
		p.Y = bounds.Max.Y - 1
	}
	if p.Y < bounds.Min.Y {
		p.Y = bounds.Min.Y
	}
	return p
}

// SampleRGB reads the 8-bit color at the clamped sample point derived
// from a detection center and a fixed offset.
func SampleRGB(img image.Image, cx, cy, dx, dy int) (uint8, uint8, uint8) {
	p := ClampedSample(img.Bounds(), cx, cy, dx, dy)
	r, g, b, _ := img.At(p.X, p.Y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// SampleRegion returns a w×h rectangle centered on the offset sample
// point, clipped to bounds. The result may be empty when the region falls
// entirely outside the image.
func SampleRegion(bounds image.Rectangle, cx, cy, dx, dy, w, h int) image.Rectangle {
	px := cx + dx
	py := cy + dy
	r := image.Rect(px-w/2, py-h/2, px-w/2+w, py-h/2+h)
	return r.Intersect(bounds)
}
