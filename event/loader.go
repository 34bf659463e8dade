package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/resdir"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// Database files in load order. Order only decides which source label
// lands first; the merged result is the same either way.
var databaseFiles = []struct {
	file   string
	source string
}{
	{"support_card.json", SourceSupportCard},
	{"uma_data.json", SourceUmaData},
	{"ura_finale.json", SourceUraFinale},
}

type rawEvent struct {
	EventName    string            `json:"EventName"`
	EventOptions map[string]string `json:"EventOptions"`
}

var (
	dbOnce  sync.Once
	records map[string]*Record
	names   []string
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// loadedRecords returns the merged event database, loading every
// configured file on first use. A missing database is logged and
// skipped; lookups against whatever did load stay valid.
func loadedRecords() map[string]*Record {
	dbOnce.Do(func() {
		records = map[string]*Record{}
		dir := resdir.DataDir("UmaData")
		for _, db := range databaseFiles {
			if err := loadEventFile(filepath.Join(dir, db.file), db.source, records); err != nil {
				log.Warn().Err(err).Str("file", db.file).Msg("<Event> database not loaded")
			}
		}
		names = sortedNames(records)
		log.Info().Int("events", len(records)).Msg("<Event> databases loaded")
	})
	return records
}

// eventNames returns all known event names sorted, for deterministic
// candidate iteration.
func eventNames() []string {
	loadedRecords()
	return names
}

// loadEventFile reads one database file into the merged record map.
// The big databases ship with the resource bundle, so parse speed
// matters more than allocation churn here.
func loadEventFile(path, source string, into map[string]*Record) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var rows []rawEvent
	if err := sonic.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &rows); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if row.EventName == "" {
			continue
		}
		mergeRecord(into, row.EventName, source, row.EventOptions)
	}
	return nil
}

func sortedNames(recs map[string]*Record) []string {
	out := make([]string, 0, len(recs))
	for name := range recs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func resetDatabasesForTest() {
	dbOnce = sync.Once{}
	records = nil
	names = nil
}

// Priorities are the good/bad phrase lists driving option analysis.
type Priorities struct {
	GoodChoices []string `json:"Good_choices"`
	BadChoices  []string `json:"Bad_choices"`
}

var (
	prioOnce sync.Once
	prio     Priorities
)

// loadedPriorities returns the option priority config. Missing or
// malformed config degrades to empty lists: every option then analyzes
// as neither good nor bad and the caller falls back to choice 1.
func loadedPriorities() Priorities {
	prioOnce.Do(func() {
		path := filepath.Join(resdir.DataDir("UmaData"), "event_priority.json")
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Msg("<Event> priority config not loaded")
			return
		}
		if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &prio); err != nil {
			log.Warn().Err(err).Msg("<Event> priority config malformed, using empty lists")
			prio = Priorities{}
			return
		}
		log.Info().Int("good", len(prio.GoodChoices)).Int("bad", len(prio.BadChoices)).Msg("<Event> priority config loaded")
	})
	return prio
}

func resetPrioritiesForTest() {
	prioOnce = sync.Once{}
	prio = Priorities{}
}
