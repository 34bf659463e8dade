package event

import (
	"reflect"
	"testing"
)

func TestMergeSource(t *testing.T) {
	cases := []struct {
		a, b string
		want string
	}{
		{SourceSupportCard, SourceUmaData, SourceBoth},
		{SourceUmaData, SourceSupportCard, SourceBoth},
		{SourceSupportCard, SourceUraFinale, SourceSupportUra},
		{SourceUmaData, SourceUraFinale, SourceUmaUra},
		{SourceBoth, SourceUraFinale, SourceAll},
		{SourceSupportUra, SourceUmaData, SourceAll},
		{SourceUmaUra, SourceSupportCard, SourceAll},
		{SourceSupportCard, SourceSupportCard, SourceSupportCard},
		{SourceAll, SourceUmaData, SourceAll},
	}
	for _, tc := range cases {
		if got := MergeSource(tc.a, tc.b); got != tc.want {
			t.Errorf("MergeSource(%q, %q) = %q, want %q", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMergeRecordOrderIndependent(t *testing.T) {
	scOptions := map[string]string{"Top option": "Speed +10", "Bottom option": "Power +10"}
	udOptions := map[string]string{"Top option": "Speed +10", "Middle option": "Stamina +10"}

	forward := map[string]*Record{}
	mergeRecord(forward, "Dance Lesson", SourceSupportCard, scOptions)
	mergeRecord(forward, "Dance Lesson", SourceUmaData, udOptions)

	reverse := map[string]*Record{}
	mergeRecord(reverse, "Dance Lesson", SourceUmaData, udOptions)
	mergeRecord(reverse, "Dance Lesson", SourceSupportCard, scOptions)

	f, r := forward["Dance Lesson"], reverse["Dance Lesson"]
	if f.Source != SourceBoth || r.Source != SourceBoth {
		t.Errorf("sources = %q / %q, want %q both ways", f.Source, r.Source, SourceBoth)
	}
	if !reflect.DeepEqual(f.Options, r.Options) {
		t.Errorf("options differ by load order:\n forward: %v\n reverse: %v", f.Options, r.Options)
	}
	want := map[string]string{
		"Top option":    "Speed +10",
		"Middle option": "Stamina +10",
		"Bottom option": "Power +10",
	}
	if !reflect.DeepEqual(f.Options, want) {
		t.Errorf("merged options = %v, want %v", f.Options, want)
	}
}

func TestMergeRecordKeepsFirstReward(t *testing.T) {
	recs := map[string]*Record{}
	mergeRecord(recs, "Victory!", SourceSupportCard, map[string]string{"Top option": "Energy -10"})
	mergeRecord(recs, "Victory!", SourceUmaData, map[string]string{"Top option": "Energy -15"})

	if got := recs["Victory!"].Options["Top option"]; got != "Energy -10" {
		t.Errorf("later source overwrote reward: %q", got)
	}
}
