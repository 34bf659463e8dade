package skills

import "testing"

func TestBuildPlanFollowsPriorityOrder(t *testing.T) {
	withCatalog(t, []string{"Pressure", "Deep Breaths", "Uma Stan"})
	available := []Skill{
		{Name: "Uma Stan", Price: "160"},
		{Name: "Pressure", Price: "160"},
		{Name: "Deep Breaths", Price: "144"},
	}
	cfg := PurchaseConfig{SkillPriority: []string{"Deep Breaths", "Missing Skill", "Pressure"}}

	plan := BuildPlan(available, cfg, false)
	if len(plan) != 2 || plan[0].Name != "Deep Breaths" || plan[1].Name != "Pressure" {
		t.Errorf("plan = %+v, want priority order with the missing entry skipped", plan)
	}
}

func TestBuildPlanGoldBaseSubstitution(t *testing.T) {
	withCatalog(t, []string{"Professor of Curvature", "Corner Adept"})
	cfg := PurchaseConfig{
		SkillPriority:     []string{"Professor of Curvature"},
		GoldSkillUpgrades: map[string]string{"Professor of Curvature": "Corner Adept"},
	}

	gold := []Skill{{Name: "Professor of Curvature", Price: "342"}, {Name: "Corner Adept", Price: "120"}}
	plan := BuildPlan(gold, cfg, false)
	if len(plan) != 1 || plan[0].Name != "Professor of Curvature" {
		t.Errorf("gold available: plan = %+v, want the gold skill", plan)
	}

	baseOnly := []Skill{{Name: "Corner Adept", Price: "120"}}
	plan = BuildPlan(baseOnly, cfg, false)
	if len(plan) != 1 || plan[0].Name != "Corner Adept" {
		t.Errorf("gold absent: plan = %+v, want the base skill", plan)
	}

	plan = BuildPlan(nil, cfg, false)
	if len(plan) != 0 {
		t.Errorf("neither available: plan = %+v, want empty", plan)
	}
}

func TestBuildPlanEndCareerAppendsRemainderByPrice(t *testing.T) {
	withCatalog(t, []string{"Pressure", "Deep Breaths", "Uma Stan", "After-School Stroll"})
	available := []Skill{
		{Name: "Uma Stan", Price: "160"},
		{Name: "After-School Stroll", Price: "bad"},
		{Name: "Pressure", Price: "110"},
		{Name: "Deep Breaths", Price: "144"},
	}
	cfg := PurchaseConfig{SkillPriority: []string{"Uma Stan"}}

	plan := BuildPlan(available, cfg, true)
	want := []string{"Uma Stan", "Pressure", "Deep Breaths", "After-School Stroll"}
	if len(plan) != len(want) {
		t.Fatalf("plan = %+v, want every available skill exactly once", plan)
	}
	for i, name := range want {
		if plan[i].Name != name {
			t.Errorf("plan[%d] = %q, want %q (remainder ascending by price, unreadable last)", i, plan[i].Name, name)
		}
	}
}

func TestFilterAffordableBudgetInvariant(t *testing.T) {
	plan := []Skill{
		{Name: "A", Price: "160"},
		{Name: "B", Price: "300"},
		{Name: "C", Price: "40"},
	}

	aff := FilterAffordable(plan, 220)
	if aff.TotalCost > 220 {
		t.Errorf("total %d exceeds budget", aff.TotalCost)
	}
	// Greedy prefix: B is too expensive but the cheaper C after it still
	// gets in.
	if len(aff.Skills) != 2 || aff.Skills[0].Name != "A" || aff.Skills[1].Name != "C" {
		t.Errorf("affordable = %+v, want A then C", aff.Skills)
	}
	if aff.TotalCost != 200 || aff.Remaining != 20 {
		t.Errorf("total = %d remaining = %d", aff.TotalCost, aff.Remaining)
	}
}

func TestFilterAffordableFlagsNonNumericPrices(t *testing.T) {
	plan := []Skill{
		{Name: "A", Price: "???"},
		{Name: "B", Price: "100"},
	}

	aff := FilterAffordable(plan, 100)
	if len(aff.Skills) != 2 {
		t.Fatalf("affordable = %+v, want both (unreadable price counts 0)", aff.Skills)
	}
	if aff.TotalCost != 100 {
		t.Errorf("total = %d, want 100", aff.TotalCost)
	}
	if len(aff.Flagged) != 1 || aff.Flagged[0].Name != "A" {
		t.Errorf("flagged = %+v, want the unreadable row", aff.Flagged)
	}
}

func TestFilterAffordableEmptyPlan(t *testing.T) {
	aff := FilterAffordable(nil, 500)
	if len(aff.Skills) != 0 || aff.TotalCost != 0 || aff.Remaining != 500 {
		t.Errorf("empty plan filter = %+v", aff)
	}
}
