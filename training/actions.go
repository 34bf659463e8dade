package training

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/career"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

// TrainingCheckAction - collect signals for the hovered training type.
// Invoked once per type while the pipeline walks the five buttons,
// params {"type":"spd","is_last":false}.
type TrainingCheckAction struct{}

func (a *TrainingCheckAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	var params struct {
		Type   string `json:"type"`
		IsLast bool   `json:"is_last"`
	}
	if arg.CustomActionParam != "" {
		_ = json.Unmarshal([]byte(arg.CustomActionParam), &params)
	}
	if !validTrainingType(params.Type) {
		log.Error().Str("type", params.Type).Msg("<Training> invalid type param")
		return false
	}

	controller := ctx.GetTasker().GetController()
	if controller == nil {
		log.Error().Msg("<Training> Check: controller nil")
		return false
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Training> Check: get screenshot failed")
		return false
	}

	storeBundle(CollectSignals(ctx, img, params.Type))

	if params.IsLast {
		checkedLast = true
		for _, trainType := range TRAINING_TYPES {
			if _, ok := bundles[trainType]; !ok {
				log.Warn().Str("type", trainType).Msg("<Training> type never checked this visit")
			}
		}
	}
	return true
}

// TrainingDecideAction - rank the collected bundles and either click the
// winning training button or route to rest/recreation.
type TrainingDecideAction struct{}

func (a *TrainingDecideAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Msg("<Training> ---- Decide ----")
	if len(bundles) == 0 {
		log.Error().Msg("<Training> Decide: no signals collected")
		return false
	}
	if !checkedLast {
		log.Warn().Msg("<Training> Decide: check sequence incomplete")
	}

	cfg := loadedScoreConfig()
	snapshot := career.Current()
	rows, best := ChooseBest(cfg, snapshot.Stats)
	logDecisionTable(ctx, rows, best)

	if best < 0 {
		if !career.MeetsMinimum(snapshot.Mood, cfg.MinimumMood) {
			log.Info().Str("mood", snapshot.Mood).Str("minimum", cfg.MinimumMood).Msg("<Training> nothing worth training, mood low, recreation next")
			maafocus.SimpleHTML(ctx, "No training worth running; going out to fix mood")
			ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
				{Name: "TrainingRecreation"},
			})
		} else {
			log.Info().Msg("<Training> nothing worth training, resting")
			maafocus.SimpleHTML(ctx, "No training worth running; resting this turn")
			ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
				{Name: "TrainingRest"},
			})
		}
		return true
	}

	chosen := rows[best]
	coords := TRAINING_COORDS[chosen.Type]
	log.Info().
		Str("type", chosen.Type).
		Float64("score", chosen.Score).
		Float64("failure", chosen.Failure).
		Msg("<Training> Decide: training selected")
	maafocus.SimpleHTMLWithColor(ctx,
		fmt.Sprintf("Training %s (score %.2f, failure %.0f%%)", strings.ToUpper(chosen.Type), chosen.Score, chosen.Failure),
		"#11cf00")

	clickingBox := [4]int{coords[0] - 20, coords[1] - 20, 40, 40}
	ClickingBoxOverrideParam := map[string]any{
		"NodeClick": map[string]any{
			"action": map[string]any{
				"param": map[string]any{
					"target": clickingBox,
				},
			},
		},
	}
	ctx.RunTask("NodeClick", ClickingBoxOverrideParam)

	ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
		{Name: "TrainingConfirm"},
	})
	return true
}

// TrainingFinishAction - finish a training-screen visit and reset.
type TrainingFinishAction struct{}

func (a *TrainingFinishAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Int("checked_types", len(bundles)).Msg("<Training> ========== Finish ==========")
	resetBundles()
	return true
}

func validTrainingType(t string) bool {
	for _, v := range TRAINING_TYPES {
		if v == t {
			return true
		}
	}
	return false
}
