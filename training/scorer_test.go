package training

import (
	"math"
	"testing"
)

func testBundle(trainType string) *SignalBundle {
	return &SignalBundle{
		Type:          trainType,
		SupportCounts: map[string]int{},
		SupportDetail: map[string][]BondSample{},
	}
}

func TestScoreCombinesAllSignals(t *testing.T) {
	cfg := DefaultScoreConfig()
	b := testBundle("spd")
	b.SupportCounts["spd"] = 2
	b.SupportDetail["spd"] = []BondSample{{Level: 5}, {Level: 4}}
	b.SupportCounts["friend"] = 1
	b.SupportDetail["friend"] = []BondSample{{Level: 2}}
	b.HintPresent = true
	b.SpiritCount = 1
	b.BurstCount = 1
	b.FailureRate = 10

	// supports 2*1.0 + 1*0.8; bond (5+4+2)*0.1; two rainbows at 1.5;
	// hint 0.3; spirit 0.5; burst 0.5; failure 10*0.05.
	want := 2.8 + 1.1 + 3.0 + 0.3 + 0.5 + 0.5 - 0.5
	got := Score(b, cfg, nil)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScoreSharpFailurePenalty(t *testing.T) {
	cfg := DefaultScoreConfig()
	b := testBundle("sta")
	b.SupportCounts["sta"] = 3
	b.FailureRate = 40

	// 3 supports at weight 1.0 minus 40*0.05 minus (40-20)*0.1.
	want := 3.0 - 2.0 - 2.0
	got := Score(b, cfg, nil)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}
}

func TestScoreStatCapDamping(t *testing.T) {
	cfg := DefaultScoreConfig()
	b := testBundle("spd")
	b.SupportCounts["spd"] = 4

	uncapped := Score(b, cfg, map[string]int{"spd": 900})
	capped := Score(b, cfg, map[string]int{"spd": 1200})
	if math.Abs(capped-uncapped*cfg.StatCapDamping) > 1e-9 {
		t.Errorf("capped score %v, want %v damped by %v", capped, uncapped, cfg.StatCapDamping)
	}
}

func TestScoreDeterministic(t *testing.T) {
	cfg := DefaultScoreConfig()
	b := testBundle("wit")
	b.SupportCounts["wit"] = 2
	b.SupportCounts["friend"] = 1
	b.SupportDetail["wit"] = []BondSample{{Level: 4}, {Level: 1}}
	b.FailureRate = 5

	first := Score(b, cfg, map[string]int{"wit": 500})
	for i := 0; i < 20; i++ {
		if got := Score(b, cfg, map[string]int{"wit": 500}); got != first {
			t.Fatalf("score not stable: %v then %v", first, got)
		}
	}
}

func TestChooseBest(t *testing.T) {
	resetBundles()
	defer resetBundles()
	cfg := DefaultScoreConfig()

	good := testBundle("spd")
	good.SupportCounts["spd"] = 3
	good.FailureRate = 5
	storeBundle(good)

	risky := testBundle("sta")
	risky.SupportCounts["sta"] = 5
	risky.FailureRate = 50
	storeBundle(risky)

	weak := testBundle("wit")
	weak.SupportCounts["wit"] = 1
	weak.FailureRate = 5
	storeBundle(weak)

	rows, best := ChooseBest(cfg, nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if best < 0 || rows[best].Type != "spd" {
		t.Errorf("expected spd selected, got best=%d rows=%+v", best, rows)
	}
	for _, row := range rows {
		switch row.Type {
		case "sta":
			if row.Rejected == "" {
				t.Error("sta at 50% failure must be rejected")
			}
		case "wit":
			if row.Rejected == "" {
				t.Error("weak wit must fall under the wit minimum")
			}
		}
	}
}

func TestChooseBestNothingWorthTraining(t *testing.T) {
	resetBundles()
	defer resetBundles()
	cfg := DefaultScoreConfig()

	for _, trainType := range TRAINING_TYPES {
		b := testBundle(trainType)
		b.FailureRate = 99
		storeBundle(b)
	}

	_, best := ChooseBest(cfg, nil)
	if best != -1 {
		t.Errorf("expected no selection, got index %d", best)
	}
}

func TestChooseBestTieBreakByPriority(t *testing.T) {
	resetBundles()
	defer resetBundles()
	cfg := DefaultScoreConfig()
	cfg.PriorityStat = []string{"guts", "pwr", "spd", "sta", "wit"}

	for _, trainType := range []string{"pwr", "guts"} {
		b := testBundle(trainType)
		b.SupportCounts[trainType] = 2
		b.FailureRate = 5
		storeBundle(b)
	}

	rows, best := ChooseBest(cfg, nil)
	if best < 0 || rows[best].Type != "guts" {
		t.Errorf("equal scores must fall to the priority list, got best=%d rows=%+v", best, rows)
	}
}
