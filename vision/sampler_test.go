package vision

import (
	"image"
	"image/color"
	"testing"
)

func TestClampedSample(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 200)
	cases := []struct {
		cx, cy, dx, dy int
		want           image.Point
	}{
		{50, 50, 0, 0, image.Pt(50, 50)},
		{50, 50, -2, 116, image.Pt(48, 166)},
		{50, 190, 0, 40, image.Pt(50, 199)},  // clamp bottom
		{5, 50, -20, 0, image.Pt(0, 50)},     // clamp left
		{95, 5, 30, -30, image.Pt(99, 0)},    // clamp corner
		{500, 500, 0, 0, image.Pt(99, 199)},  // far outside
		{-50, -50, 0, 0, image.Pt(0, 0)},     // negative
	}
	for _, c := range cases {
		got := ClampedSample(bounds, c.cx, c.cy, c.dx, c.dy)
		if got != c.want {
			t.Errorf("ClampedSample(%d,%d offset %d,%d) = %v, want %v", c.cx, c.cy, c.dx, c.dy, got, c.want)
		}
	}
}

func TestSampleRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(4, 7, color.RGBA{R: 255, G: 173, B: 30, A: 255})

	r, g, b := SampleRGB(img, 4, 5, 0, 2)
	if r != 255 || g != 173 || b != 30 {
		t.Errorf("SampleRGB = (%d,%d,%d), want (255,173,30)", r, g, b)
	}

	// Out-of-bounds sampling clamps instead of panicking.
	r, g, b = SampleRGB(img, 9, 9, 100, 100)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("clamped corner sample = (%d,%d,%d), want zero pixel", r, g, b)
	}
}

func TestSampleRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	r := SampleRegion(bounds, 50, 50, 0, 20, 10, 10)
	if r != image.Rect(45, 65, 55, 75) {
		t.Errorf("centered region = %v, want (45,65)-(55,75)", r)
	}

	// Regions poking past the edge are clipped.
	r = SampleRegion(bounds, 95, 95, 0, 0, 20, 20)
	if r != image.Rect(85, 85, 100, 100) {
		t.Errorf("clipped region = %v, want (85,85)-(100,100)", r)
	}

	// Fully outside yields an empty rectangle.
	r = SampleRegion(bounds, 300, 300, 0, 0, 10, 10)
	if !r.Empty() {
		t.Errorf("expected empty region, got %v", r)
	}
}
