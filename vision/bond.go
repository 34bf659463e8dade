package vision

// BondColor is one reference swatch of the bond gauge.
type BondColor struct {
	Level   int
	R, G, B uint8
}

// BOND_LEVEL_COLORS are the canonical gauge colors, checked best to
// worst. Earlier rows win distance ties.
var BOND_LEVEL_COLORS = []BondColor{
	{Level: 5, R: 255, G: 235, B: 120},
	{Level: 4, R: 255, G: 173, B: 30},
	{Level: 3, R: 162, G: 230, B: 30},
	{Level: 2, R: 42, G: 192, B: 255},
	{Level: 1, R: 109, G: 108, B: 117},
}

// ClassifyBond maps a sampled pixel to the nearest bond level by squared
// Euclidean distance in RGB space.
func ClassifyBond(r, g, b uint8) int {
	best := 1
	bestDist := -1
	for _, c := range BOND_LEVEL_COLORS {
		dr := int(r) - int(c.R)
		dg := int(g) - int(c.G)
		db := int(b) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c.Level
		}
	}
	return best
}

// Rainbow reports whether a support card triggers friendship training:
// its specialty matches the hovered training type and bond is 4 or more.
func Rainbow(cardType, trainType string, bondLevel int) bool {
	return cardType == trainType && bondLevel >= 4
}
