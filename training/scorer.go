package training

import (
	"fmt"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/vision"
)

// Score combines one signal bundle with the configured weights and the
// current stats into a single comparable number. Iteration runs in fixed
// card-type order so identical inputs always produce the identical
// floating-point result.
func Score(b *SignalBundle, cfg ScoreConfig, stats map[string]int) float64 {
	score := 0.0
	for _, cardType := range SUPPORT_CARD_TYPES {
		count := b.SupportCounts[cardType]
		if count > 0 {
			score += float64(count) * cfg.SupportWeights[cardType]
		}
		for _, s := range b.SupportDetail[cardType] {
			score += float64(s.Level) * cfg.BondBonus
			if vision.Rainbow(cardType, b.Type, s.Level) {
				score += cfg.RainbowBonus
			}
		}
	}
	if b.HintPresent {
		score += cfg.HintBonus
	}
	score += float64(b.SpiritCount) * cfg.SpiritBonus
	score += float64(b.BurstCount) * cfg.BurstBonus

	penalty := b.FailureRate * cfg.FailurePenalty
	if over := b.FailureRate - cfg.FailureSoftCap; over > 0 {
		penalty += over * cfg.FailureSharpPenalty
	}
	score -= penalty

	if limit, ok := cfg.StatCaps[b.Type]; ok && limit > 0 {
		if cur, ok := stats[b.Type]; ok && cur >= limit {
			score *= cfg.StatCapDamping
		}
	}
	return score
}

// ChooseBest scores every checked training and applies the user gates:
// the failure ceiling and the minimum score (wit has its own minimum).
// It returns the decision table rows in button order plus the index of
// the winner, or -1 when nothing is worth training.
func ChooseBest(cfg ScoreConfig, stats map[string]int) ([]ScoredTraining, int) {
	rows := make([]ScoredTraining, 0, len(bundles))
	for _, trainType := range TRAINING_TYPES {
		b, ok := bundles[trainType]
		if !ok {
			continue
		}
		row := ScoredTraining{
			Type:     trainType,
			Failure:  b.FailureRate,
			Supports: b.TotalSupports(),
			Score:    Score(b, cfg, stats),
		}
		switch {
		case b.FailureRate > cfg.MaximumFailure:
			row.Rejected = fmt.Sprintf("failure %.0f%% over limit %.0f%%", b.FailureRate, cfg.MaximumFailure)
		case trainType == "wit" && row.Score < cfg.MinWitScore:
			row.Rejected = fmt.Sprintf("score %.2f under wit minimum %.2f", row.Score, cfg.MinWitScore)
		case trainType != "wit" && row.Score < cfg.MinScore:
			row.Rejected = fmt.Sprintf("score %.2f under minimum %.2f", row.Score, cfg.MinScore)
		}
		rows = append(rows, row)
	}

	best := -1
	for i, row := range rows {
		if row.Rejected != "" {
			continue
		}
		if best == -1 || row.Score > rows[best].Score {
			best = i
			continue
		}
		if row.Score == rows[best].Score &&
			priorityRank(cfg.PriorityStat, row.Type) < priorityRank(cfg.PriorityStat, rows[best].Type) {
			best = i
		}
	}
	return rows, best
}

// priorityRank returns the position of a type in the priority list;
// unlisted types rank last.
func priorityRank(priority []string, trainType string) int {
	for i, t := range priority {
		if t == trainType {
			return i
		}
	}
	return len(priority)
}
