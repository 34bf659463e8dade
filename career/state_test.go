package career

import "testing"

func TestFuzzyMoodExact(t *testing.T) {
	for _, mood := range MOOD_LIST {
		if got := FuzzyMood(mood); got != mood {
			t.Errorf("FuzzyMood(%q) = %q, want itself", mood, got)
		}
	}
}

func TestFuzzyMood(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"G00D", "GOOD"},
		{"N0RMAL", "NORMAL"},
		{"great", "GREAT"},
		{"AWFUI", "AWFUL"},
		{"VAWF", "AWFUL"},
		{"REAT", "GREAT"},
		{"BEAT", "GREAT"},
		{"OOD", "GOOD"},
		{"RMAL", "NORMAL"},
		{"BAD.", "BAD"},
		{"GR", "GREAT"},
		{"D", MOOD_UNKNOWN},
		{"sunny", MOOD_UNKNOWN},
		{"", MOOD_UNKNOWN},
	}
	for _, tc := range cases {
		if got := FuzzyMood(tc.text); got != tc.want {
			t.Errorf("FuzzyMood(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestFuzzyMoodDeterministic(t *testing.T) {
	first := FuzzyMood("N0RMA1")
	for i := 0; i < 10; i++ {
		if got := FuzzyMood("N0RMA1"); got != first {
			t.Fatalf("FuzzyMood not stable: %q then %q", first, got)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	cases := []struct {
		mood, minimum string
		want          bool
	}{
		{"GREAT", "GREAT", true},
		{"GREAT", "GOOD", true},
		{"GOOD", "GREAT", false},
		{"AWFUL", "NORMAL", false},
		{MOOD_UNKNOWN, "GOOD", false},
		{"BAD", MOOD_UNKNOWN, true},
	}
	for _, tc := range cases {
		if got := MeetsMinimum(tc.mood, tc.minimum); got != tc.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tc.mood, tc.minimum, got, tc.want)
		}
	}
}

func TestParseTurn(t *testing.T) {
	cases := []struct {
		text    string
		want    int
		raceDay bool
	}{
		{"Turn 12", 12, false},
		{"12", 12, false},
		{"Race Day", 0, true},
		{"RaceDay", 0, true},
		{"Race Da", 0, true},
		{"l2", 12, false},
		{"I4", 14, false},
		{"o8", 8, false},
		{"]1", 11, false},
		{"garbage", 1, false},
		{"", 1, false},
		{"0", 1, false},
	}
	for _, tc := range cases {
		got, raceDay := ParseTurn(tc.text)
		if got != tc.want || raceDay != tc.raceDay {
			t.Errorf("ParseTurn(%q) = (%d, %v), want (%d, %v)", tc.text, got, raceDay, tc.want, tc.raceDay)
		}
	}
}

func TestCorrectYear(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Pre-Debu", "Pre-Debut"},
		{"Pre-Debut", "Pre-Debut"},
		{" Classic Year ", "Classic Year"},
		{"Senior Year", "Senior Year"},
	}
	for _, tc := range cases {
		if got := CorrectYear(tc.text); got != tc.want {
			t.Errorf("CorrectYear(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestCorrectCriteria(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Entrycriteriamet", "Entry criteria met"},
		{"Goalachieved", "Goal achieved"},
		{"Entry criteria met", "Entry criteria met"},
		{"Reach 3000 fans", "Reach 3000 fans"},
	}
	for _, tc := range cases {
		if got := CorrectCriteria(tc.text); got != tc.want {
			t.Errorf("CorrectCriteria(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestParseStatValue(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"1200", 1200},
		{"SPD 450", 450},
		{"1,044", 1044},
		{"garbage", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ParseStatValue(tc.text); got != tc.want {
			t.Errorf("ParseStatValue(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestSnapshotLifecycle(t *testing.T) {
	resetState()
	defer resetState()

	s := emptySnapshot()
	s.Turn = 24
	s.Mood = "GOOD"
	s.Stats["spd"] = 800
	setCurrent(s)

	got := Current()
	if got.Turn != 24 || got.Mood != "GOOD" || got.Stats["spd"] != 800 {
		t.Errorf("Current() = %+v, want stored snapshot", got)
	}

	resetState()
	got = Current()
	if got.Turn != 1 || got.Mood != MOOD_UNKNOWN || len(got.Stats) != 0 || got.Energy != -1 {
		t.Errorf("reset snapshot = %+v, want empty defaults", got)
	}
}
