package skills

import (
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/fuzzy"
	"github.com/rs/zerolog/log"
)

// CatalogMatch is the outcome of resolving an OCR'd name against the
// canonical skill catalog.
type CatalogMatch struct {
	Name       string // catalog spelling, "" when nothing cleared the threshold
	Confidence float64
	Exact      bool
	IsTarget   bool // the match is the skill the caller was looking for
}

// CleanOCRText collapses whitespace runs in raw OCR output.
func CleanOCRText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// BestCatalogMatch resolves an OCR'd skill name against the catalog:
// exact case-insensitive match first, then the highest similarity at or
// above threshold. With a target name set, lookalike skills that differ
// from the target by word structure or a qualifier adjective are
// filtered out before scoring, so "Quick Acceleration" can never be
// bought for "Acceleration" on a noisy read. An empty catalog falls
// back to trusting the target name outright.
func BestCatalogMatch(ocrName, targetName string, threshold float64) CatalogMatch {
	allSkills := loadedCatalog()
	if len(allSkills) == 0 {
		log.Warn().Msg("<Skills> no catalog loaded, falling back to basic matching")
		if targetName != "" {
			return CatalogMatch{Name: targetName, Confidence: 0.8, IsTarget: true}
		}
		return CatalogMatch{}
	}

	cleanOCR := strings.ToLower(CleanOCRText(ocrName))
	if cleanOCR == "" {
		return CatalogMatch{}
	}
	targetClean := strings.ToLower(strings.TrimSpace(targetName))

	for _, skill := range allSkills {
		if cleanOCR == strings.ToLower(strings.TrimSpace(skill)) {
			return CatalogMatch{
				Name:       skill,
				Confidence: 1.0,
				Exact:      true,
				IsTarget:   targetClean != "" && strings.ToLower(strings.TrimSpace(skill)) == targetClean,
			}
		}
	}

	best := CatalogMatch{}
	for _, skill := range allSkills {
		skillClean := strings.ToLower(strings.TrimSpace(skill))

		if targetClean != "" && skillClean != targetClean &&
			!passesWordStructure(skillClean, targetClean, cleanOCR) {
			continue
		}

		similarity := fuzzy.Ratio(cleanOCR, skillClean)
		if targetClean != "" && skillClean == targetClean && similarity >= TARGET_BONUS_FLOOR {
			similarity += TARGET_BONUS
			if similarity > 1.0 {
				similarity = 1.0
			}
		}

		if similarity > best.Confidence && similarity >= threshold {
			best = CatalogMatch{
				Name:       skill,
				Confidence: similarity,
				IsTarget:   skillClean == targetClean,
			}
		}
	}

	log.Debug().
		Str("ocr", ocrName).
		Str("match", best.Name).
		Str("target", targetName).
		Float64("confidence", best.Confidence).
		Msg("<Skills> catalog match")
	return best
}

// passesWordStructure is the lookalike prefilter. The target itself is
// always allowed through; other candidates are rejected when their word
// count strays from the target's by more than one (unless the OCR text
// strays from the candidate the same way, since OCR splits and joins
// words), or when they carry a qualifier adjective the target lacks.
func passesWordStructure(skillClean, targetClean, cleanOCR string) bool {
	skillWords := wordSet(skillClean)
	targetWords := wordSet(targetClean)
	ocrWords := wordSet(cleanOCR)

	if delta := len(skillWords) - len(targetWords); delta > 1 || delta < -1 {
		ocrDelta := len(ocrWords) - len(skillWords)
		return ocrDelta <= 1 && ocrDelta >= -1
	}
	for w := range skillWords {
		if !targetWords[w] && qualifierWords[w] {
			return false
		}
	}
	return true
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// MatchesTarget reports whether an OCR'd on-screen name is the wanted
// skill, via the catalog-constrained matcher.
func MatchesTarget(ocrName, targetName string) bool {
	m := BestCatalogMatch(ocrName, targetName, MATCH_THRESHOLD)
	return m.Name != "" && m.IsTarget && m.Confidence >= MATCH_THRESHOLD
}

// FindAvailable looks a configured skill name up among the scanned
// rows: exact case-insensitive match first, then the row whose OCR'd
// name best resolves to the wanted skill. Not-found is the normal
// "skill not offered this career" outcome.
func FindAvailable(name string, available []Skill) (Skill, bool) {
	nameClean := strings.ToLower(strings.TrimSpace(name))
	for _, skill := range available {
		if strings.ToLower(strings.TrimSpace(skill.Name)) == nameClean {
			return skill, true
		}
	}

	best := Skill{}
	bestConfidence := 0.0
	for _, skill := range available {
		m := BestCatalogMatch(skill.Name, name, MATCH_THRESHOLD)
		if m.IsTarget && m.Confidence > bestConfidence {
			best = skill
			bestConfidence = m.Confidence
		}
	}
	if bestConfidence > 0 {
		log.Debug().
			Str("target", name).
			Str("row", best.Name).
			Float64("confidence", bestConfidence).
			Msg("<Skills> fuzzy row match")
		return best, true
	}
	return Skill{}, false
}
