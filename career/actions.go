package career

import (
	_ "embed"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

//go:embed messages/status_card.html
var statusCardHTML string

// CareerStateAction - OCR the lobby screen into the shared career
// snapshot the other components read from.
type CareerStateAction struct{}

func (a *CareerStateAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Msg("<Career> ---- State ----")

	controller := ctx.GetTasker().GetController()
	if controller == nil {
		log.Error().Msg("<Career> State: controller nil")
		return false
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Career> State: get screenshot failed")
		return false
	}

	snapshot := readSnapshot(ctx, img)
	setCurrent(snapshot)

	log.Info().
		Int("turn", snapshot.Turn).
		Bool("race_day", snapshot.RaceDay).
		Str("year", snapshot.Year).
		Str("mood", snapshot.Mood).
		Str("criteria", snapshot.Criteria).
		Int("skill_pts", snapshot.SkillPts).
		Float64("energy", snapshot.Energy).
		Interface("stats", snapshot.Stats).
		Msg("<Career> state parsed")

	maafocus.NodeActionStarting(ctx, fmt.Sprintf(statusCardHTML,
		snapshot.Year, turnLabel(snapshot), snapshot.Mood, energyLabel(snapshot.Energy),
		snapshot.Stats["spd"], snapshot.Stats["sta"], snapshot.Stats["pwr"],
		snapshot.Stats["guts"], snapshot.Stats["wit"], snapshot.SkillPts,
		snapshot.Criteria))
	return true
}

// CareerFinishAction - end of a career run, drop the snapshot.
type CareerFinishAction struct{}

func (a *CareerFinishAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Msg("<Career> ========== Finish ==========")
	resetState()
	return true
}

func turnLabel(s Snapshot) string {
	if s.RaceDay {
		return "Race Day"
	}
	return strconv.Itoa(s.Turn)
}

func energyLabel(energy float64) string {
	if energy < 0 {
		return "?"
	}
	return fmt.Sprintf("%.0f%%", energy)
}

func readSnapshot(ctx *maa.Context, img image.Image) Snapshot {
	s := emptySnapshot()
	s.Turn, s.RaceDay = ParseTurn(fieldText(ctx, img, "CareerTurnOCR", TURN_OCR_REGION))
	s.Year = CorrectYear(fieldText(ctx, img, "CareerYearOCR", YEAR_OCR_REGION))
	s.Mood = FuzzyMood(fieldText(ctx, img, "CareerMoodOCR", MOOD_OCR_REGION))
	s.Criteria = CorrectCriteria(fieldText(ctx, img, "CareerCriteriaOCR", CRITERIA_OCR_REGION))
	s.SkillPts = ParseStatValue(fieldText(ctx, img, "CareerSkillPtsOCR", SKILL_PTS_OCR_REGION))
	for _, statType := range STAT_TYPES {
		s.Stats[statType] = ParseStatValue(fieldText(ctx, img, "CareerStatOCR", STAT_OCR_REGIONS[statType]))
	}
	bar := ENERGY_BAR_REGION
	s.Energy = EnergyEstimate(img, image.Rect(bar[0], bar[1], bar[0]+bar[2], bar[1]+bar[3]))
	return s
}

// fieldText runs one OCR node over its region and returns the trimmed
// best text, empty when nothing was read.
func fieldText(ctx *maa.Context, img image.Image, node string, region [4]int) string {
	roi := maa.Rect{region[0], region[1], region[2], region[3]}
	override := map[string]any{node: map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition(node, img, override)
	if err != nil {
		log.Error().Err(err).Str("node", node).Msg("<Career> field OCR failed")
		return ""
	}
	if detail == nil || detail.Results == nil {
		return ""
	}
	for _, results := range [][]*maa.RecognitionResult{{detail.Results.Best}, detail.Results.Filtered, detail.Results.All} {
		if len(results) > 0 && results[0] != nil {
			if ocr, ok := results[0].AsOCR(); ok && strings.TrimSpace(ocr.Text) != "" {
				return strings.TrimSpace(ocr.Text)
			}
		}
	}
	return ""
}
