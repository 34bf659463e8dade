// Package imgproc holds the small pure-image helpers shared by the
// recognition packages: colorspace conversion, cropping, scaling and the
// pixel masks used to clean up OCR input.
package imgproc

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ToRGBA converts any image to RGBA, reusing the buffer when possible.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// CropRect copies the intersection of r with the image bounds into a new
// zero-origin RGBA image.
func CropRect(img image.Image, r image.Rectangle) *image.RGBA {
	r0 := r.Intersect(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r0.Dx(), r0.Dy()))
	if !r0.Empty() {
		draw.Draw(dst, dst.Bounds(), img, r0.Min, draw.Src)
	}
	return dst
}

// Scale resizes by the given factor using bilinear interpolation.
func Scale(img image.Image, scale float64) image.Image {
	if scale == 1.0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// MeanLuma returns the average grayscale value (0..255) over r.
// Empty intersections return 0.
func MeanLuma(img image.Image, r image.Rectangle) float64 {
	r0 := r.Intersect(img.Bounds())
	if r0.Empty() {
		return 0
	}
	var sum float64
	for y := r0.Min.Y; y < r0.Max.Y; y++ {
		for x := r0.Min.X; x < r0.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			sum += 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		}
	}
	return sum / float64(r0.Dx()*r0.Dy())
}

// YellowTextMask extracts bright yellow pixels from r as white-on-black.
// High failure percentages render in yellow instead of white; masking them
// first gives the OCR engine clean glyphs.
func YellowTextMask(img image.Image, r image.Rectangle) *image.RGBA {
	r0 := r.Intersect(img.Bounds())
	dst := image.NewRGBA(image.Rect(0, 0, r0.Dx(), r0.Dy()))
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	for y := r0.Min.Y; y < r0.Max.Y; y++ {
		for x := r0.Min.X; x < r0.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.R > 180 && c.G > 120 && c.B < 80 {
				dst.SetRGBA(x-r0.Min.X, y-r0.Min.Y, white)
			} else {
				dst.SetRGBA(x-r0.Min.X, y-r0.Min.Y, black)
			}
		}
	}
	return dst
}
