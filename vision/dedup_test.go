package vision

import (
	"math"
	"testing"
)

func box(x, y int) Detection {
	return Detection{X: x, Y: y, W: 20, H: 20, Score: 0.9}
}

func TestDedupEmptyAndSingle(t *testing.T) {
	if got := Dedup(nil, 30); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %v", got)
	}

	one := []Detection{box(100, 100)}
	got := Dedup(one, 30)
	if len(got) != 1 || got[0] != one[0] {
		t.Errorf("single detection should pass through unchanged, got %v", got)
	}
}

func TestDedupClusterKeepsFirst(t *testing.T) {
	// Three candidates around the same icon plus one far away.
	dets := []Detection{
		box(105, 102),
		box(100, 100),
		box(98, 110),
		box(400, 100),
	}
	got := Dedup(dets, 30)
	if len(got) != 2 {
		t.Fatalf("expected 2 detections after dedup, got %d: %v", len(got), got)
	}
	// The top-most candidate of the cluster wins, not the best-scoring one.
	if got[0] != box(100, 100) {
		t.Errorf("expected top-left cluster representative, got %v", got[0])
	}
	if got[1] != box(400, 100) {
		t.Errorf("expected far detection retained, got %v", got[1])
	}
}

func TestDedupDistanceInvariant(t *testing.T) {
	dets := []Detection{
		box(10, 10), box(25, 12), box(60, 10), box(10, 45),
		box(200, 200), box(210, 215), box(500, 40), box(505, 400),
	}
	const minDist = 30.0
	got := Dedup(dets, minDist)
	for i := range got {
		for j := i + 1; j < len(got); j++ {
			xi, yi := got[i].Center()
			xj, yj := got[j].Center()
			d := math.Hypot(float64(xi-xj), float64(yi-yj))
			if d < minDist {
				t.Errorf("retained pair %v and %v closer than %.0fpx (%.1f)", got[i], got[j], minDist, d)
			}
		}
	}
}

func TestDedupExactlyAtThresholdKept(t *testing.T) {
	// Centers exactly 30px apart are not duplicates.
	dets := []Detection{box(100, 100), box(130, 100)}
	got := Dedup(dets, 30)
	if len(got) != 2 {
		t.Errorf("centers at exactly the threshold must both survive, got %v", got)
	}
}

func TestDedupIdempotent(t *testing.T) {
	dets := []Detection{
		box(10, 10), box(14, 12), box(60, 10), box(62, 14),
		box(10, 60), box(200, 200),
	}
	once := Dedup(dets, 30)
	twice := Dedup(once, 30)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("dedup not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}
