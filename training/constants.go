package training

// Screen layout facts for the 1080x1920 portrait layout.
// Region boxes are {x, y, w, h} in screenshot pixels.

// TRAINING_TYPES lists the five trainings in on-screen button order.
var TRAINING_TYPES = []string{"spd", "sta", "pwr", "guts", "wit"}

// SUPPORT_CARD_TYPES lists the support specialties that can appear in the
// icon strip. "friend" cards have no matching training.
var SUPPORT_CARD_TYPES = []string{"spd", "sta", "pwr", "guts", "wit", "friend"}

// TRAINING_COORDS are the tap targets of the five training buttons.
var TRAINING_COORDS = map[string][2]int{
	"spd":  {165, 1557},
	"sta":  {357, 1563},
	"pwr":  {546, 1557},
	"guts": {735, 1566},
	"wit":  {936, 1572},
}

// SUPPORT_ICON_REGION is the right-edge strip holding support card icons
// while a training is hovered.
var SUPPORT_ICON_REGION = [4]int{879, 278, 180, 891}

// FAILURE_OCR_REGIONS hold the failure-percentage label per hovered type,
// a fixed-size box above each training button.
var FAILURE_OCR_REGIONS = map[string][4]int{
	"spd":  {75, 1380, 180, 56},
	"sta":  {267, 1386, 180, 56},
	"pwr":  {456, 1380, 180, 56},
	"guts": {645, 1389, 180, 56},
	"wit":  {846, 1395, 180, 56},
}

// BOND_SAMPLE_OFFSET shifts from a support icon center down onto the bond
// gauge swatch.
var BOND_SAMPLE_OFFSET = [2]int{-2, 116}

// SPIRIT_BURST_OFFSET shifts from a spirit icon center down onto the
// burst-state sub-region; SPIRIT_BURST_SIZE is that sub-region's size.
var (
	SPIRIT_BURST_OFFSET = [2]int{0, 96}
	SPIRIT_BURST_SIZE   = [2]int{72, 72}
)

const (
	// SUPPORT_DEDUP_DIST collapses template matches of one physical icon.
	SUPPORT_DEDUP_DIST = 30.0

	// SPIRIT_BURST_CONFIDENCE gates the burst sub-region NCC check.
	SPIRIT_BURST_CONFIDENCE = 0.8

	// FAILURE_MIN_CONFIDENCE gates acceptance of an OCR'd failure rate.
	FAILURE_MIN_CONFIDENCE = 0.7

	// FAILURE_OCR_ATTEMPTS bounds each half of the OCR retry ladder.
	FAILURE_OCR_ATTEMPTS = 3
)
