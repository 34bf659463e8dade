package vision

import (
	"image"
	"math"
)

// IntegralImage holds summed-area tables over grayscale intensity so
// window sums can be read in constant time during template matching.
type IntegralImage struct {
	W, H  int
	Sum   []float64
	SqSum []float64
}

// NewIntegralImage precomputes the integral tables for a haystack image.
func NewIntegralImage(img *image.RGBA) *IntegralImage {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := grayValues(img)

	w1 := w + 1
	sum := make([]float64, w1*(h+1))
	sqSum := make([]float64, w1*(h+1))
	for y := 0; y < h; y++ {
		var rowSum, rowSq float64
		for x := 0; x < w; x++ {
			v := gray[y*w+x]
			rowSum += v
			rowSq += v * v
			sum[(y+1)*w1+x+1] = sum[y*w1+x+1] + rowSum
			sqSum[(y+1)*w1+x+1] = sqSum[y*w1+x+1] + rowSq
		}
	}

	return &IntegralImage{W: w, H: h, Sum: sum, SqSum: sqSum}
}

// windowSums returns the plain and squared intensity sums of the w×h
// window whose top-left corner is (x, y).
func (ii *IntegralImage) windowSums(x, y, w, h int) (float64, float64) {
	w1 := ii.W + 1
	a := y*w1 + x
	b := y*w1 + x + w
	c := (y+h)*w1 + x
	d := (y+h)*w1 + x + w
	return ii.Sum[d] - ii.Sum[b] - ii.Sum[c] + ii.Sum[a],
		ii.SqSum[d] - ii.SqSum[b] - ii.SqSum[c] + ii.SqSum[a]
}

// NeedleStats caches the zero-mean intensities of a template so repeated
// matches skip the per-call setup.
type NeedleStats struct {
	W, H int
	Zero []float64
	Dn   float64
}

// GetNeedleStats precomputes matching statistics for a template image.
// A flat template yields Dn near zero and cannot be matched meaningfully.
func GetNeedleStats(needle *image.RGBA) NeedleStats {
	b := needle.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := grayValues(needle)

	var total float64
	for _, v := range gray {
		total += v
	}
	mean := 0.0
	if len(gray) > 0 {
		mean = total / float64(len(gray))
	}

	zero := make([]float64, len(gray))
	var sq float64
	for i, v := range gray {
		z := v - mean
		zero[i] = z
		sq += z * z
	}

	return NeedleStats{W: w, H: h, Zero: zero, Dn: math.Sqrt(sq)}
}

// MatchTemplate slides the needle described by stats over the haystack
// and returns the top-left corner and normalized cross-correlation score
// of the best window. Scores are in [-1, 1]; flat windows are skipped,
// and if no window can be scored the result is (0, 0, 0).
func MatchTemplate(haystack *image.RGBA, integral *IntegralImage, stats NeedleStats) (int, int, float64) {
	hb := haystack.Bounds()
	hw, hh := hb.Dx(), hb.Dy()
	nw, nh := stats.W, stats.H
	if nw == 0 || nh == 0 || nw > hw || nh > hh || stats.Dn < 1e-6 {
		return 0, 0, 0.0
	}

	gray := grayValues(haystack)
	area := float64(nw * nh)

	bestX, bestY := 0, 0
	bestVal := math.Inf(-1)
	for y := 0; y+nh <= hh; y++ {
		for x := 0; x+nw <= hw; x++ {
			sum, sq := integral.windowSums(x, y, nw, nh)
			varSum := sq - sum*sum/area
			if varSum < 1e-9 {
				continue
			}
			var cross float64
			for j := 0; j < nh; j++ {
				hrow := gray[(y+j)*hw+x:]
				zrow := stats.Zero[j*nw:]
				for i := 0; i < nw; i++ {
					cross += hrow[i] * zrow[i]
				}
			}
			val := cross / (math.Sqrt(varSum) * stats.Dn)
			if val > bestVal {
				bestVal = val
				bestX, bestY = x, y
			}
		}
	}

	if math.IsInf(bestVal, -1) {
		return 0, 0, 0.0
	}
	return bestX, bestY, bestVal
}

// grayValues converts an RGBA image to row-major luma values.
func grayValues(img *image.RGBA) []float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			r := float64(img.Pix[off])
			g := float64(img.Pix[off+1])
			bl := float64(img.Pix[off+2])
			out[y*w+x] = 0.299*r + 0.587*g + 0.114*bl
		}
	}
	return out
}
