package career

import (
	"regexp"
	"strconv"
	"strings"
)

// Snapshot is the career state read off the lobby screen. Other
// components consume it through Current.
type Snapshot struct {
	Turn     int
	RaceDay  bool
	Year     string
	Mood     string
	Criteria string
	Stats    map[string]int
	SkillPts int
	Energy   float64
}

var current = emptySnapshot()

func emptySnapshot() Snapshot {
	return Snapshot{
		Turn:   1,
		Mood:   MOOD_UNKNOWN,
		Stats:  map[string]int{},
		Energy: -1,
	}
}

// Current returns the last parsed career state.
func Current() Snapshot {
	return current
}

func setCurrent(s Snapshot) {
	current = s
}

func resetState() {
	current = emptySnapshot()
}

var moodCleanups = strings.NewReplacer("0", "O", "1", "I", "5", "S")

// moodFragments lists OCR fragments per mood, tried in order. AWFUL runs
// first so its fragments are never eaten by the shorter patterns below,
// and BAD is handled separately after all of these.
var moodFragments = []struct {
	mood      string
	fragments []string
}{
	{"AWFUL", []string{"AWFUL", "AWFU", "AWF", "VAWF", "WAWF"}},
	{"GREAT", []string{"GREAT", "GREA", "REAT", "EA"}},
	{"GOOD", []string{"GOOD", "GOO", "OOD", "OO"}},
	{"NORMAL", []string{"NORMAL", "NORMA", "ORMA", "RMAL"}},
}

// FuzzyMood maps raw mood OCR text onto one of the five moods, or
// MOOD_UNKNOWN when nothing matches. The digit cleanups cover the usual
// letter-for-digit confusions on this font.
func FuzzyMood(text string) string {
	cleaned := moodCleanups.Replace(strings.ToUpper(strings.TrimSpace(text)))
	if cleaned == "" {
		return MOOD_UNKNOWN
	}
	for _, mood := range MOOD_LIST {
		if cleaned == mood {
			return mood
		}
	}
	for _, entry := range moodFragments {
		for _, frag := range entry.fragments {
			if strings.Contains(cleaned, frag) {
				return entry.mood
			}
		}
	}
	// AWFUL misreads can keep a BAD-like tail, so anything still carrying
	// an AWF fragment never lands here.
	if strings.Contains(cleaned, "BAD") && !strings.Contains(cleaned, "AWF") {
		return "BAD"
	}
	if len(cleaned) >= 2 {
		for _, mood := range MOOD_LIST {
			if strings.Contains(mood, cleaned) || strings.Contains(cleaned, mood) {
				return mood
			}
		}
	}
	return MOOD_UNKNOWN
}

// MoodIndex returns the rank of a mood in MOOD_LIST, -1 when unknown.
func MoodIndex(mood string) int {
	for i, m := range MOOD_LIST {
		if m == mood {
			return i
		}
	}
	return -1
}

// MeetsMinimum reports whether mood is at least as good as minimum.
// An unknown mood never satisfies a known minimum.
func MeetsMinimum(mood, minimum string) bool {
	return MoodIndex(mood) >= MoodIndex(minimum)
}

var (
	turnDigitRun = regexp.MustCompile(`\d+`)
	turnRepairs  = strings.NewReplacer("y", "9", "]", "1", "l", "1", "I", "1", "o", "0", "O", "0", "/", "7")
)

// ParseTurn reads the turn counter text. Race day is reported separately
// since that screen shows no usable number; otherwise the first digit
// run after character repair wins, defaulting to turn 1.
func ParseTurn(text string) (int, bool) {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if strings.Contains(upper, "RACE DA") || strings.Contains(upper, "RACEDA") {
		return 0, true
	}
	repaired := turnRepairs.Replace(text)
	if m := turnDigitRun.FindString(repaired); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v > 0 {
			return v, false
		}
	}
	return 1, false
}

// CorrectYear fixes the usual truncation of the year label.
func CorrectYear(text string) string {
	text = strings.TrimSpace(text)
	if strings.Contains(text, "Pre-Debu") {
		return "Pre-Debut"
	}
	return text
}

var criteriaRepairs = strings.NewReplacer(
	"Entrycriteriamet", "Entry criteria met",
	"Goalachieved", "Goal achieved",
)

// CorrectCriteria repairs glued words the OCR produces on the goal row.
func CorrectCriteria(text string) string {
	return criteriaRepairs.Replace(strings.TrimSpace(text))
}

// ParseStatValue extracts the numeric value of a stat or skill-point
// readout. Anything without digits reads as 0.
func ParseStatValue(text string) int {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return v
}
