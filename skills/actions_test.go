package skills

import "testing"

func TestParseSkillPoints(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"771", 771},
		{`77\`, 771},
		{"Pt 1240", 1240},
		{"12 / 340", 340},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseSkillPoints(c.text); got != c.want {
			t.Errorf("ParseSkillPoints(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestPriceValue(t *testing.T) {
	if v, ok := (Skill{Price: "160"}).PriceValue(); !ok || v != 160 {
		t.Errorf("numeric price = %d %v", v, ok)
	}
	for _, price := range []string{"", "16O", "-5", "1.5"} {
		if _, ok := (Skill{Price: price}).PriceValue(); ok {
			t.Errorf("price %q must not parse", price)
		}
	}
}

func TestStoreSkillDeduplicatesByName(t *testing.T) {
	resetScanState()
	defer resetScanState()

	if !storeSkill(Skill{Name: "Pressure", Price: "160"}) {
		t.Fatal("first store rejected")
	}
	if storeSkill(Skill{Name: "Pressure", Price: "999"}) {
		t.Error("duplicate name must be rejected")
	}
	if storeSkill(Skill{}) {
		t.Error("empty name must be rejected")
	}
	if len(collected) != 1 || collected[0].Price != "160" {
		t.Errorf("collected = %+v", collected)
	}
}
