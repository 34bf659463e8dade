package training

// BondSample is one deduplicated support icon with its classified bond.
type BondSample struct {
	X, Y    int // icon center
	Level   int
	R, G, B uint8
}

// SignalBundle gathers everything observed for one hovered training type.
// Built fresh each training-screen visit, never cached across visits.
type SignalBundle struct {
	Type          string
	SupportCounts map[string]int
	SupportDetail map[string][]BondSample
	HintPresent   bool
	SpiritCount   int
	BurstCount    int // spirit icons whose burst sub-state is lit
	FailureRate   float64
	FailureConf   float64
}

// TotalSupports sums the deduplicated icon counts over all card types.
func (b *SignalBundle) TotalSupports() int {
	n := 0
	for _, c := range b.SupportCounts {
		n += c
	}
	return n
}

// RainbowCount counts supports of the hovered specialty at bond 4+.
func (b *SignalBundle) RainbowCount() int {
	n := 0
	for _, s := range b.SupportDetail[b.Type] {
		if s.Level >= 4 {
			n++
		}
	}
	return n
}

// ScoredTraining is one row of the decision table.
type ScoredTraining struct {
	Type     string
	Score    float64
	Failure  float64
	Supports int
	Rejected string // non-empty when gated out of candidacy
}

// Per-visit state, filled by TrainingCheckAction and consumed by
// TrainingDecideAction. Reset in TrainingFinishAction.
var (
	bundles     = map[string]*SignalBundle{}
	bundleOrder []string
	checkedLast bool
)

func storeBundle(b *SignalBundle) {
	if _, seen := bundles[b.Type]; !seen {
		bundleOrder = append(bundleOrder, b.Type)
	}
	bundles[b.Type] = b
}

func resetBundles() {
	bundles = map[string]*SignalBundle{}
	bundleOrder = nil
	checkedLast = false
}
