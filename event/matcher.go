package event

import (
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/fuzzy"
)

// Similarity floor for the last rung of the correction ladder.
const correctRatioThreshold = 0.6

// Fuzzy search ignores variations shorter than this; single glyphs
// would pull in most of the database.
const minVariationLen = 3

// Chain events carry a part marker after the name. OCR reads the glyphs
// inconsistently, so they are stripped before any lookup.
var chainMarkers = strings.NewReplacer("(❯❯❯)", "", "(❯❯)", "", "(❯)", "")

// StripChainMarkers removes chain-part markers and squeezes the
// remaining whitespace.
func StripChainMarkers(name string) string {
	return strings.Join(strings.Fields(chainMarkers.Replace(name)), " ")
}

var bracketChars = strings.NewReplacer("(", "", ")", "", "[", "", "]", "")

// cleanName lowercases a name and drops bracket glyphs so punctuation
// noise cannot break containment checks.
func cleanName(name string) string {
	return strings.Join(strings.Fields(bracketChars.Replace(strings.ToLower(name))), " ")
}

// SearchExact returns the record matching the name exactly. An empty
// result is the normal unknown-event outcome, not an error.
func SearchExact(name string) map[string]*Record {
	found := map[string]*Record{}
	if rec, ok := loadedRecords()[name]; ok {
		found[rec.Name] = rec
	}
	return found
}

// Variations lists the contiguous word combinations of a name, longest
// first, for partial matching of truncated OCR output.
func Variations(name string) []string {
	words := strings.Fields(cleanName(name))
	var out []string
	seen := map[string]bool{}
	for size := len(words); size >= 1; size-- {
		for start := 0; start+size <= len(words); start++ {
			v := strings.Join(words[start:start+size], " ")
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// SearchFuzzy returns every record whose cleaned name contains one of
// the query's word variations. Superset semantics: a truncated OCR name
// may legitimately hit several chain parts of the same event.
func SearchFuzzy(name string) map[string]*Record {
	recs := loadedRecords()
	found := map[string]*Record{}
	variations := Variations(name)
	for _, dbName := range eventNames() {
		cleaned := cleanName(dbName)
		for _, v := range variations {
			if len(v) < minVariationLen {
				continue
			}
			if strings.Contains(cleaned, v) {
				found[dbName] = recs[dbName]
				break
			}
		}
	}
	return found
}

// CorrectName maps raw OCR of an event name onto the database spelling.
// Ladder: exact match, then containment preferring the shortest database
// name, then best similarity ratio at or above the floor. Unrecognized
// input comes back unchanged so the caller can still log it.
func CorrectName(ocrName string) string {
	name := StripChainMarkers(ocrName)
	if name == "" {
		return name
	}
	if _, ok := loadedRecords()[name]; ok {
		return name
	}

	cleaned := cleanName(name)
	if cleaned == "" {
		return name
	}
	shortest := ""
	for _, dbName := range eventNames() {
		dbClean := cleanName(dbName)
		if strings.Contains(dbClean, cleaned) || strings.Contains(cleaned, dbClean) {
			if shortest == "" || len(dbName) < len(shortest) {
				shortest = dbName
			}
		}
	}
	if shortest != "" {
		return shortest
	}

	bestName, bestRatio := "", 0.0
	for _, dbName := range eventNames() {
		if r := fuzzy.Ratio(cleaned, cleanName(dbName)); r > bestRatio {
			bestRatio = r
			bestName = dbName
		}
	}
	if bestRatio >= correctRatioThreshold {
		return bestName
	}
	return name
}
