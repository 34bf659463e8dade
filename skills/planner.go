package skills

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// priceSentinel sorts rows with unreadable prices behind every real
// price in the end-career tail.
const priceSentinel = 1 << 30

// BuildPlan walks the configured priority list and emits the skills to
// buy, in priority order. A priority entry that is a gold skill buys
// the gold version when offered and otherwise falls back to its base
// skill; entries not on screen are skipped without complaint. In
// end-career mode every scanned skill the priority pass left untouched
// is appended afterwards, cheapest first, to spend the remaining points
// down before the career ends.
func BuildPlan(available []Skill, cfg PurchaseConfig, endCareer bool) []Skill {
	plan := []Skill{}

	log.Info().
		Int("priority", len(cfg.SkillPriority)).
		Int("gold_upgrades", len(cfg.GoldSkillUpgrades)).
		Int("available", len(available)).
		Bool("end_career", endCareer).
		Msg("<Skills> building purchase plan")

	for _, prioritySkill := range cfg.SkillPriority {
		if baseName, isGold := cfg.GoldSkillUpgrades[prioritySkill]; isGold {
			if skill, ok := FindAvailable(prioritySkill, available); ok {
				plan = append(plan, skill)
				log.Info().Str("skill", skill.Name).Str("price", skill.Price).Msg("<Skills> gold skill planned")
				continue
			}
			if base, ok := FindAvailable(baseName, available); ok {
				plan = append(plan, base)
				log.Info().Str("skill", base.Name).Str("price", base.Price).Str("gold", prioritySkill).Msg("<Skills> base skill planned")
			}
			continue
		}
		if skill, ok := FindAvailable(prioritySkill, available); ok {
			plan = append(plan, skill)
			log.Info().Str("skill", skill.Name).Str("price", skill.Price).Msg("<Skills> skill planned")
		}
	}

	if endCareer {
		planned := map[string]bool{}
		for _, skill := range plan {
			planned[skill.Name] = true
		}
		var remaining []Skill
		for _, skill := range available {
			if !planned[skill.Name] {
				remaining = append(remaining, skill)
			}
		}
		sort.SliceStable(remaining, func(i, j int) bool {
			return sortPrice(remaining[i]) < sortPrice(remaining[j])
		})
		if len(remaining) > 0 {
			log.Info().Int("count", len(remaining)).Msg("<Skills> end-career: appending remaining skills cheapest first")
			plan = append(plan, remaining...)
		}
	}

	return plan
}

func sortPrice(s Skill) int {
	if v, ok := s.PriceValue(); ok {
		return v
	}
	return priceSentinel
}

// FilterAffordable cuts a plan down to what the points budget covers.
// Greedy prefix walk: a skill too expensive for the running total is
// dropped, but cheaper skills after it are still considered. A row with
// an unreadable price counts as 0 toward the total and is flagged. The
// returned total never exceeds the budget.
func FilterAffordable(plan []Skill, availablePoints int) Affordable {
	aff := Affordable{Skills: []Skill{}}

	for _, skill := range plan {
		cost, numeric := skill.PriceValue()
		if !numeric {
			cost = 0
		}
		if aff.TotalCost+cost > availablePoints {
			log.Info().
				Str("skill", skill.Name).
				Int("cost", cost).
				Int("short_by", cost-(availablePoints-aff.TotalCost)).
				Msg("<Skills> not affordable, skipping")
			continue
		}
		aff.Skills = append(aff.Skills, skill)
		aff.TotalCost += cost
		if !numeric {
			aff.Flagged = append(aff.Flagged, skill)
			log.Warn().Str("skill", skill.Name).Str("price", skill.Price).Msg("<Skills> non-numeric price counted as 0")
		}
	}

	aff.Remaining = availablePoints - aff.TotalCost
	log.Info().
		Int("available", availablePoints).
		Int("total_cost", aff.TotalCost).
		Int("remaining", aff.Remaining).
		Int("affordable", len(aff.Skills)).
		Int("planned", len(plan)).
		Msg("<Skills> budget filtered")
	return aff
}
