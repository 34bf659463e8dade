package skills

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/resdir"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	catalogOnce sync.Once
	catalog     []string
)

// loadedCatalog returns the canonical skill name list, reading
// <resource>/UmaData/uma_skills.json on first use. A missing catalog
// degrades to the empty list: matching then falls back to trusting the
// configured target name.
func loadedCatalog() []string {
	catalogOnce.Do(func() {
		path := filepath.Join(resdir.DataDir("UmaData"), "uma_skills.json")
		names, err := loadCatalogFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("<Skills> catalog not loaded")
			return
		}
		catalog = names
		log.Info().Int("skills", len(catalog)).Msg("<Skills> catalog loaded")
	})
	return catalog
}

// loadCatalogFile parses one uma_skills.json.
func loadCatalogFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Skills []string `json:"skills"`
	}
	if err := sonic.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &wrapper); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return wrapper.Skills, nil
}

func setCatalogForTest(names []string) {
	catalogOnce = sync.Once{}
	catalogOnce.Do(func() {})
	catalog = names
}

func resetCatalogForTest() {
	catalogOnce = sync.Once{}
	catalog = nil
}

var (
	purchaseCfgMu    sync.Mutex
	purchaseCfgCache = map[string]PurchaseConfig{}
)

// loadedPurchaseConfig returns the purchase config from the named file
// under the resource data dir, cached per file since the GUI can point
// different careers at different lists. Missing or malformed config
// degrades to an empty plan with a warning.
func loadedPurchaseConfig(file string) PurchaseConfig {
	if file == "" {
		file = "skills.json"
	}
	purchaseCfgMu.Lock()
	defer purchaseCfgMu.Unlock()
	if cfg, ok := purchaseCfgCache[file]; ok {
		return cfg
	}

	path := filepath.Join(resdir.DataDir("UmaData"), file)
	cfg, err := loadPurchaseFile(path)
	if err != nil {
		cfg = PurchaseConfig{}
		log.Warn().Err(err).Str("path", path).Msg("<Skills> purchase config not loaded, using empty plan")
	} else {
		log.Info().
			Str("file", file).
			Int("priority", len(cfg.SkillPriority)).
			Int("gold_upgrades", len(cfg.GoldSkillUpgrades)).
			Msg("<Skills> purchase config loaded")
	}
	purchaseCfgCache[file] = cfg
	return cfg
}

// loadPurchaseFile parses one skills.json.
func loadPurchaseFile(path string) (PurchaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PurchaseConfig{}, err
	}
	var cfg PurchaseConfig
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &cfg); err != nil {
		return PurchaseConfig{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func resetPurchaseConfigForTest() {
	purchaseCfgMu.Lock()
	defer purchaseCfgMu.Unlock()
	purchaseCfgCache = map[string]PurchaseConfig{}
}
