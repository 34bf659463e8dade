package career

// Stat readout order mirrors the lobby layout left to right.
var STAT_TYPES = []string{"spd", "sta", "pwr", "guts", "wit"}

// Screen regions in (x, y, w, h) on the 1080x1920 reference layout.
var (
	STAT_OCR_REGIONS = map[string][4]int{
		"spd":  {108, 1284, 96, 42},
		"sta":  {273, 1284, 102, 45},
		"pwr":  {444, 1284, 99, 42},
		"guts": {621, 1281, 90, 42},
		"wit":  {780, 1284, 96, 39},
	}

	TURN_OCR_REGION      = [4]int{27, 153, 195, 66}
	YEAR_OCR_REGION      = [4]int{27, 90, 330, 57}
	MOOD_OCR_REGION      = [4]int{957, 204, 117, 63}
	CRITERIA_OCR_REGION  = [4]int{180, 240, 480, 51}
	SKILL_PTS_OCR_REGION = [4]int{912, 1281, 144, 48}

	ENERGY_BAR_REGION = [4]int{330, 203, 602, 72}
)

// MOOD_LIST orders the five moods worst to best.
var MOOD_LIST = []string{"AWFUL", "BAD", "NORMAL", "GOOD", "GREAT"}

const MOOD_UNKNOWN = "UNKNOWN"
