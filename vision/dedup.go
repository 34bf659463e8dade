package vision

import "sort"

// Dedup collapses near-duplicate detections into one per physical icon.
// Candidates are sorted top to bottom then left to right, and a candidate
// is kept only if its center is at least minDist pixels from every center
// kept so far. The first candidate of a cluster wins regardless of score.
func Dedup(dets []Detection, minDist float64) []Detection {
	if len(dets) <= 1 {
		return append([]Detection(nil), dets...)
	}

	sorted := append([]Detection(nil), dets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		xi, yi := sorted[i].Center()
		xj, yj := sorted[j].Center()
		if yi != yj {
			return yi < yj
		}
		return xi < xj
	})

	minSq := minDist * minDist
	kept := make([]Detection, 0, len(sorted))
	for _, d := range sorted {
		cx, cy := d.Center()
		dup := false
		for _, k := range kept {
			kx, ky := k.Center()
			dx := float64(cx - kx)
			dy := float64(cy - ky)
			if dx*dx+dy*dy < minSq {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, d)
		}
	}
	return kept
}
