package event

import (
	"path/filepath"
	"testing"
)

func TestLoadEventFileMergesAcrossDatabases(t *testing.T) {
	recs := map[string]*Record{}
	if err := loadEventFile(filepath.Join("testdata", "support_card.json"), SourceSupportCard, recs); err != nil {
		t.Fatalf("support_card fixture: %v", err)
	}
	if err := loadEventFile(filepath.Join("testdata", "uma_data.json"), SourceUmaData, recs); err != nil {
		t.Fatalf("uma_data fixture: %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("expected 3 events, got %d: %v", len(recs), sortedNames(recs))
	}

	dance := recs["Dance Lesson"]
	if dance == nil {
		t.Fatal("Dance Lesson missing")
	}
	if dance.Source != SourceBoth {
		t.Errorf("Dance Lesson source = %q, want %q", dance.Source, SourceBoth)
	}
	if len(dance.Options) != 3 {
		t.Errorf("Dance Lesson options = %v, want union of 3 labels", dance.Options)
	}
	if dance.Options["Middle option"] != "Stamina +10" {
		t.Errorf("later source did not fill missing label: %v", dance.Options)
	}

	if recs["Victory!"].Source != SourceSupportCard {
		t.Errorf("single-source event got %q", recs["Victory!"].Source)
	}
	if recs["New Year's Resolutions"].Source != SourceUmaData {
		t.Errorf("BOM-prefixed database not parsed: %v", sortedNames(recs))
	}
}

func TestLoadEventFileErrors(t *testing.T) {
	recs := map[string]*Record{}
	if err := loadEventFile(filepath.Join("testdata", "no_such.json"), SourceSupportCard, recs); err == nil {
		t.Error("missing file must error")
	}
	if err := loadEventFile(filepath.Join("testdata", "malformed.json"), SourceSupportCard, recs); err == nil {
		t.Error("malformed file must error")
	}
	if len(recs) != 0 {
		t.Errorf("failed loads must not add records: %v", recs)
	}
}
