package skills

import "strconv"

// Skill is one on-screen row of the purchase list: OCR'd display name
// and string-encoded price. The price stays a string because OCR can
// hand back garbage and a bad read must not sink the whole row.
type Skill struct {
	Name  string
	Price string
}

// PriceValue parses the price. ok is false for non-numeric prices.
func (s Skill) PriceValue() (int, bool) {
	if s.Price == "" {
		return 0, false
	}
	for _, r := range s.Price {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s.Price)
	if err != nil {
		return 0, false
	}
	return v, true
}

// PurchaseConfig is the user's skills.json: what to buy and in what
// order, plus which gold skill supersedes which base skill.
type PurchaseConfig struct {
	SkillPriority     []string          `json:"skill_priority"`
	GoldSkillUpgrades map[string]string `json:"gold_skill_upgrades"`
}

// Affordable is the budget-filtered prefix of a purchase plan.
type Affordable struct {
	Skills    []Skill
	TotalCost int
	Remaining int
	Flagged   []Skill // kept in the plan with a non-numeric price, counted as 0
}

// Per-visit state, filled by the scan action and consumed by the plan
// and purchase actions. Reset in SkillsFinishAction.
var (
	collected      []Skill
	collectedNames map[string]bool
	scrolls        int
	points         int
	queue          []Skill
	purchased      []Skill
	failed         []Skill
	purchaseScroll int
)

func init() {
	resetScanState()
}

func storeSkill(s Skill) bool {
	if s.Name == "" || collectedNames[s.Name] {
		return false
	}
	collectedNames[s.Name] = true
	collected = append(collected, s)
	return true
}

func resetScanState() {
	collected = nil
	collectedNames = map[string]bool{}
	scrolls = 0
	points = 0
	queue = nil
	purchased = nil
	failed = nil
	purchaseScroll = 0
}
