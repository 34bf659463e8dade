package vision

import "testing"

func TestClassifyBondCanonicalColors(t *testing.T) {
	for _, c := range BOND_LEVEL_COLORS {
		if got := ClassifyBond(c.R, c.G, c.B); got != c.Level {
			t.Errorf("canonical color (%d,%d,%d) classified as %d, want %d", c.R, c.G, c.B, got, c.Level)
		}
	}
}

func TestClassifyBondNearbyColors(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    int
	}{
		{250, 230, 115, 5}, // slightly off max-bond yellow
		{50, 185, 250, 2},  // washed-out blue
		{100, 100, 110, 1}, // dark gray
		{160, 225, 40, 3},  // green
	}
	for _, c := range cases {
		if got := ClassifyBond(c.r, c.g, c.b); got != c.want {
			t.Errorf("ClassifyBond(%d,%d,%d) = %d, want %d", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestClassifyBondDeterministic(t *testing.T) {
	first := ClassifyBond(128, 128, 128)
	for i := 0; i < 10; i++ {
		if got := ClassifyBond(128, 128, 128); got != first {
			t.Fatalf("classification not stable: %d then %d", first, got)
		}
	}
}

func TestRainbow(t *testing.T) {
	if !Rainbow("spd", "spd", 4) {
		t.Error("same-type bond 4 must be rainbow")
	}
	if !Rainbow("wit", "wit", 5) {
		t.Error("same-type bond 5 must be rainbow")
	}
	if Rainbow("spd", "spd", 3) {
		t.Error("bond 3 must not be rainbow")
	}
	if Rainbow("spd", "sta", 5) {
		t.Error("type mismatch must not be rainbow")
	}
}
