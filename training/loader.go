package training

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/resdir"
	"github.com/rs/zerolog/log"
)

// ScoreConfig is the user-tunable training policy. The formula combining
// it with a SignalBundle lives in scorer.go; identical config plus
// identical signals always yields the identical score.
type ScoreConfig struct {
	SupportWeights      map[string]float64 `json:"support_weights"`
	RainbowBonus        float64            `json:"rainbow_bonus"`
	BondBonus           float64            `json:"bond_bonus"`
	HintBonus           float64            `json:"hint_bonus"`
	SpiritBonus         float64            `json:"spirit_bonus"`
	BurstBonus          float64            `json:"burst_bonus"`
	FailurePenalty      float64            `json:"failure_penalty"`
	FailureSharpPenalty float64            `json:"failure_sharp_penalty"`
	FailureSoftCap      float64            `json:"failure_soft_cap"`
	StatCaps            map[string]int     `json:"stat_caps"`
	StatCapDamping      float64            `json:"stat_cap_damping"`
	MinScore            float64            `json:"min_score"`
	MinWitScore         float64            `json:"min_wit_score"`
	MaximumFailure      float64            `json:"maximum_failure"`
	MinimumMood         string             `json:"minimum_mood"`
	PriorityStat        []string           `json:"priority_stat"`
}

// DefaultScoreConfig mirrors the shipped training_score.json.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		SupportWeights: map[string]float64{
			"spd": 1.0, "sta": 1.0, "pwr": 1.0, "guts": 1.0, "wit": 1.0,
			"friend": 0.8,
		},
		RainbowBonus:        1.5,
		BondBonus:           0.1,
		HintBonus:           0.3,
		SpiritBonus:         0.5,
		BurstBonus:          0.5,
		FailurePenalty:      0.05,
		FailureSharpPenalty: 0.1,
		FailureSoftCap:      20,
		StatCaps: map[string]int{
			"spd": 1100, "sta": 1100, "pwr": 1100, "guts": 1100, "wit": 1100,
		},
		StatCapDamping: 0.3,
		MinScore:       1.0,
		MinWitScore:    1.0,
		MaximumFailure: 15,
		MinimumMood:    "GREAT",
		PriorityStat:   []string{"spd", "sta", "wit", "pwr", "guts"},
	}
}

var (
	scoreCfg     ScoreConfig
	scoreCfgOnce sync.Once
)

// loadedScoreConfig returns the cached policy, reading
// <resource>/UmaData/training_score.json on first use. A missing or
// malformed file degrades to the defaults with a warning.
func loadedScoreConfig() ScoreConfig {
	scoreCfgOnce.Do(func() {
		scoreCfg = DefaultScoreConfig()
		path := filepath.Join(resdir.DataDir("UmaData"), "training_score.json")
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("<Training> score config missing, using defaults")
			return
		}
		if err := json.Unmarshal(data, &scoreCfg); err != nil {
			scoreCfg = DefaultScoreConfig()
			log.Warn().Err(err).Str("path", path).Msg("<Training> score config malformed, using defaults")
			return
		}
		applyScoreDefaults(&scoreCfg)
		log.Info().Str("path", path).Msg("<Training> score config loaded")
	})
	return scoreCfg
}

// applyScoreDefaults fills keys a partial user config left out.
func applyScoreDefaults(cfg *ScoreConfig) {
	def := DefaultScoreConfig()
	if len(cfg.SupportWeights) == 0 {
		cfg.SupportWeights = def.SupportWeights
	}
	if len(cfg.StatCaps) == 0 {
		cfg.StatCaps = def.StatCaps
	}
	if len(cfg.PriorityStat) == 0 {
		cfg.PriorityStat = def.PriorityStat
	}
	if cfg.MinimumMood == "" {
		cfg.MinimumMood = def.MinimumMood
	}
	if cfg.MaximumFailure == 0 {
		cfg.MaximumFailure = def.MaximumFailure
	}
	if cfg.FailureSoftCap == 0 {
		cfg.FailureSoftCap = def.FailureSoftCap
	}
}

// resetScoreConfigForTest clears the cache so tests can reload.
func resetScoreConfigForTest() {
	scoreCfgOnce = sync.Once{}
	scoreCfg = ScoreConfig{}
}
