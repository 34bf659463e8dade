package skills

// Screen layout facts for the 1080x1920 portrait skill-purchase screen.
// Region boxes are {x, y, w, h} in screenshot pixels.

var (
	// SKILL_POINTS_REGION holds the available-points counter.
	SKILL_POINTS_REGION = [4]int{825, 605, 111, 51}

	// SKILL_NAME_COLUMN and SKILL_PRICE_COLUMN are the two OCR strips of
	// the scrolling skill list. Rows pair up by vertical position.
	SKILL_NAME_COLUMN  = [4]int{96, 690, 546, 1110}
	SKILL_PRICE_COLUMN = [4]int{660, 690, 186, 1110}

	// SCROLL_SWIPE scrolls the list one page down, slow enough for OCR
	// to see settled rows; TOP_SWIPE flings the list back up.
	SCROLL_SWIPE = [4]int{504, 1492, 504, 926}
	TOP_SWIPE    = [4]int{504, 800, 504, 1400}
)

const (
	// BUY_BUTTON_X is the column of the per-row buy control; a purchase
	// clicks there at the matched row's vertical center.
	BUY_BUTTON_X = 966

	// ROW_PAIR_TOLERANCE pairs a price box with a name box when their
	// vertical centers are within this many pixels.
	ROW_PAIR_TOLERANCE = 24

	// SCROLL_DURATION / TOP_SWIPE_DURATION in milliseconds.
	SCROLL_DURATION    = 1000
	TOP_SWIPE_DURATION = 300

	// TOP_SWIPE_COUNT flings back to the list head before purchasing.
	TOP_SWIPE_COUNT = 8

	// DEFAULT_MAX_SCROLLS bounds a scan or purchase pass over the list.
	DEFAULT_MAX_SCROLLS = 20

	// DEFAULT_POINTS_CAP only routes into auto-purchase when current
	// points reach it.
	DEFAULT_POINTS_CAP = 9999

	// MATCH_THRESHOLD accepts a fuzzy catalog match; CATALOG_SELF_THRESHOLD
	// is the stricter floor when matching OCR output back onto the catalog
	// itself.
	MATCH_THRESHOLD        = 0.8
	CATALOG_SELF_THRESHOLD = 0.85

	// TARGET_BONUS is added when a candidate is the wanted skill and its
	// raw similarity already clears TARGET_BONUS_FLOOR.
	TARGET_BONUS       = 0.05
	TARGET_BONUS_FLOOR = 0.9
)

// qualifierWords are adjectives that turn a base skill into a different
// skill. A candidate carrying one of these beyond the target's words is
// a lookalike, not an OCR misread.
var qualifierWords = map[string]bool{
	"quick": true, "fast": true, "slow": true, "super": true, "ultra": true,
	"mega": true, "mini": true, "great": true, "grand": true,
	"advanced": true, "enhanced": true,
}
