package skills

import "testing"

func withCatalog(t *testing.T, names []string) {
	t.Helper()
	setCatalogForTest(names)
	t.Cleanup(resetCatalogForTest)
}

func TestBestCatalogMatchExact(t *testing.T) {
	withCatalog(t, []string{"Pressure", "Deep Breaths"})

	m := BestCatalogMatch("pressure", "Pressure", MATCH_THRESHOLD)
	if !m.Exact || m.Name != "Pressure" || m.Confidence != 1.0 || !m.IsTarget {
		t.Errorf("exact match = %+v", m)
	}
}

func TestBestCatalogMatchThresholdBoundary(t *testing.T) {
	withCatalog(t, []string{"abcde"})

	// "abcd" vs "abcde": ratio = 2*4/9 ≈ 0.889.
	ratio := 8.0 / 9.0
	at := BestCatalogMatch("abcd", "", ratio)
	if at.Name != "abcde" {
		t.Errorf("similarity exactly at threshold must be accepted, got %+v", at)
	}
	above := BestCatalogMatch("abcd", "", ratio+0.001)
	if above.Name != "" {
		t.Errorf("similarity below threshold must be rejected, got %+v", above)
	}
}

func TestBestCatalogMatchQualifierPrefilter(t *testing.T) {
	withCatalog(t, []string{"Acceleration", "Quick Acceleration"})

	// With a target set, the qualifier lookalike may not win even though
	// its raw similarity to the OCR text is high.
	m := BestCatalogMatch("Quick Acceleratio", "Acceleration", MATCH_THRESHOLD)
	if m.Name == "Quick Acceleration" {
		t.Errorf("qualifier lookalike must be filtered when hunting the base skill, got %+v", m)
	}

	// Without a target there is no prefilter and the lookalike matches.
	free := BestCatalogMatch("Quick Acceleratio", "", MATCH_THRESHOLD)
	if free.Name != "Quick Acceleration" {
		t.Errorf("untargeted match = %+v, want Quick Acceleration", free)
	}
}

func TestBestCatalogMatchTargetBonus(t *testing.T) {
	withCatalog(t, []string{"Deep Breaths"})

	// "Deep Breath" vs "deep breaths": 2*11/23 ≈ 0.956, above the bonus
	// floor, so the target bonus lifts it further.
	m := BestCatalogMatch("Deep Breath", "Deep Breaths", MATCH_THRESHOLD)
	if !m.IsTarget || m.Name != "Deep Breaths" {
		t.Fatalf("match = %+v", m)
	}
	if m.Confidence <= 22.0/23.0 {
		t.Errorf("confidence = %v, want raw ratio plus target bonus", m.Confidence)
	}
}

func TestBestCatalogMatchEmptyCatalogFallsBackToTarget(t *testing.T) {
	withCatalog(t, nil)

	m := BestCatalogMatch("whatever", "Pressure", MATCH_THRESHOLD)
	if m.Name != "Pressure" || !m.IsTarget {
		t.Errorf("empty catalog fallback = %+v, want the target trusted", m)
	}
	if none := BestCatalogMatch("whatever", "", MATCH_THRESHOLD); none.Name != "" {
		t.Errorf("empty catalog without target = %+v, want none", none)
	}
}

func TestFindAvailable(t *testing.T) {
	withCatalog(t, []string{"Pressure", "Deep Breaths", "Uma Stan"})
	available := []Skill{
		{Name: "Deep Breath", Price: "144"}, // truncated OCR read
		{Name: "Uma Stan", Price: "160"},
	}

	if s, ok := FindAvailable("uma stan", available); !ok || s.Price != "160" {
		t.Errorf("exact case-insensitive = %+v %v", s, ok)
	}
	if s, ok := FindAvailable("Deep Breaths", available); !ok || s.Name != "Deep Breath" {
		t.Errorf("fuzzy row lookup = %+v %v", s, ok)
	}
	if _, ok := FindAvailable("Pressure", available); ok {
		t.Error("skill not on screen must not be found")
	}
}

func TestCleanOCRText(t *testing.T) {
	if got := CleanOCRText("  Deep \n  Breaths "); got != "Deep Breaths" {
		t.Errorf("CleanOCRText = %q", got)
	}
	if got := CleanOCRText(""); got != "" {
		t.Errorf("CleanOCRText empty = %q", got)
	}
}
