package event

import (
	"encoding/json"
	"image"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/imgproc"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/vision"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

// choiceLayout is what the counting recognition hands to the decide
// action through the recognition detail.
type choiceLayout struct {
	Count int      `json:"count"`
	Boxes [][4]int `json:"boxes"`
}

// EventCountChoicesRecognition - count the active choice markers in the
// left margin strip of the event dialog. Dimmed markers belong to
// not-yet-revealed choices and are culled by mean brightness.
type EventCountChoicesRecognition struct{}

func (r *EventCountChoicesRecognition) Run(ctx *maa.Context, arg *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	roi := maa.Rect{EVENT_CHOICE_REGION[0], EVENT_CHOICE_REGION[1], EVENT_CHOICE_REGION[2], EVENT_CHOICE_REGION[3]}
	override := map[string]any{"EventChoiceIcon": map[string]any{"roi": roi, "threshold": EVENT_CHOICE_CONFIDENCE}}
	detail, err := ctx.RunRecognition("EventChoiceIcon", arg.Img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Event> choice icon recognition failed")
		return nil, false
	}

	layout := choiceLayout{}
	for _, d := range vision.Dedup(templateDetections(detail), EVENT_CHOICE_DEDUP_DIST) {
		box := image.Rect(d.X, d.Y, d.X+d.W, d.Y+d.H)
		if luma := imgproc.MeanLuma(arg.Img, box); luma <= EVENT_CHOICE_MIN_LUMA {
			log.Debug().Float64("luma", luma).Int("y", d.Y).Msg("<Event> dimmed marker skipped")
			continue
		}
		layout.Boxes = append(layout.Boxes, [4]int{d.X, d.Y, d.W, d.H})
	}
	layout.Count = len(layout.Boxes)
	log.Info().Int("choices", layout.Count).Msg("<Event> choices counted")

	if layout.Count == 0 {
		return nil, false
	}
	detailJSON, err := json.Marshal(layout)
	if err != nil {
		log.Error().Err(err).Msg("<Event> failed to marshal choice layout")
		return nil, false
	}
	first := layout.Boxes[0]
	return &maa.CustomRecognitionResult{
		Box:    maa.Rect{first[0], first[1], first[2], first[3]},
		Detail: string(detailJSON),
	}, true
}

// EventDecideAction - read the event name, look it up, analyze the
// options and click the recommended choice. Unknown events take the
// first choice.
type EventDecideAction struct{}

func (a *EventDecideAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Msg("<Event> ---- Decide ----")

	controller := ctx.GetTasker().GetController()
	if controller == nil {
		log.Error().Msg("<Event> Decide: controller nil")
		return false
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Event> Decide: get screenshot failed")
		return false
	}

	layout, ok := countChoices(ctx, img)
	if !ok || layout.Count == 0 {
		log.Warn().Msg("<Event> Decide: no choices visible")
		return false
	}

	rawName := readEventName(ctx, img)
	if rawName == "" {
		log.Warn().Msg("<Event> Decide: no event name read, taking first choice")
		maafocus.SimpleHTML(ctx, "Event name unreadable, taking first choice")
		return clickChoice(ctx, layout, 1)
	}

	corrected := CorrectName(rawName)
	found := SearchExact(corrected)
	if len(found) == 0 {
		found = SearchFuzzy(corrected)
	}
	if len(found) == 0 {
		log.Info().Str("name", rawName).Str("corrected", corrected).Msg("<Event> unknown event, taking first choice")
		maafocus.SimpleHTML(ctx, "Unknown event \""+corrected+"\", taking first choice")
		return clickChoice(ctx, layout, 1)
	}

	rec := pickRecord(found)
	reco := Analyze(rec.Options, loadedPriorities())
	choice := 1
	if reco.Recommended != "" {
		choice = ChoiceNumber(reco.Recommended, layout.Count)
	}

	log.Info().
		Str("name", rawName).
		Str("event", rec.Name).
		Str("source", rec.Source).
		Bool("all_bad", reco.AllOptionsBad).
		Str("recommended", reco.Recommended).
		Int("choice", choice).
		Msg("<Event> Decide: analyzed")
	logAnalysisCard(ctx, rec, reco, choice)

	return clickChoice(ctx, layout, choice)
}

// countChoices runs the counting recognition on the given frame and
// unwraps its layout from the recognition detail.
func countChoices(ctx *maa.Context, img image.Image) (choiceLayout, bool) {
	nodeName := "EventDecide_CountChoices"
	config := map[string]any{
		nodeName: map[string]any{
			"recognition":        "Custom",
			"custom_recognition": "EventCountChoices",
		},
	}
	res, err := ctx.RunRecognition(nodeName, img, config)
	if err != nil {
		log.Error().Err(err).Msg("<Event> choice counting failed")
		return choiceLayout{}, false
	}
	if res == nil || res.DetailJson == "" {
		return choiceLayout{}, false
	}

	var wrapped struct {
		Best struct {
			Detail json.RawMessage `json:"detail"`
		} `json:"best"`
	}
	if err := json.Unmarshal([]byte(res.DetailJson), &wrapped); err != nil {
		log.Error().Err(err).Msg("<Event> failed to unwrap choice layout")
		return choiceLayout{}, false
	}
	var layout choiceLayout
	if err := json.Unmarshal(wrapped.Best.Detail, &layout); err != nil {
		log.Error().Err(err).Msg("<Event> failed to unmarshal choice layout")
		return choiceLayout{}, false
	}
	return layout, true
}

// readEventName joins the confident OCR tokens of the title banner,
// falling back to the plain best text when every token scores low.
func readEventName(ctx *maa.Context, img image.Image) string {
	roi := maa.Rect{EVENT_NAME_REGION[0], EVENT_NAME_REGION[1], EVENT_NAME_REGION[2], EVENT_NAME_REGION[3]}
	override := map[string]any{"EventNameOCR": map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition("EventNameOCR", img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Event> name OCR failed")
		return ""
	}
	if detail == nil {
		return ""
	}
	var parts []string
	for _, tk := range ocrTokens(detail.DetailJson) {
		text := strings.TrimSpace(tk.Text)
		if tk.Score >= EVENT_TOKEN_MIN_SCORE && text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return recognitionText(detail)
}

// pickRecord returns the first record in name order, so a fuzzy search
// hitting several chain parts resolves the same way every time.
func pickRecord(found map[string]*Record) *Record {
	for _, name := range sortedNames(found) {
		return found[name]
	}
	return nil
}

func clickChoice(ctx *maa.Context, layout choiceLayout, choice int) bool {
	if choice < 1 || choice > layout.Count {
		choice = 1
	}
	box := layout.Boxes[choice-1]
	ClickingBoxOverrideParam := map[string]any{
		"NodeClick": map[string]any{
			"action": map[string]any{
				"param": map[string]any{
					"target": box,
				},
			},
		},
	}
	ctx.RunTask("NodeClick", ClickingBoxOverrideParam)
	log.Info().Int("choice", choice).Ints("box", box[:]).Msg("<Event> choice clicked")
	return true
}

type ocrToken struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// ocrTokens pulls per-token text and confidence out of a recognition's
// raw detail JSON.
func ocrTokens(detailJSON string) []ocrToken {
	var wrapped struct {
		Best     *ocrToken  `json:"best"`
		Filtered []ocrToken `json:"filtered"`
		All      []ocrToken `json:"all"`
	}
	if err := json.Unmarshal([]byte(detailJSON), &wrapped); err != nil {
		return nil
	}
	if len(wrapped.Filtered) > 0 {
		return wrapped.Filtered
	}
	if wrapped.Best != nil && wrapped.Best.Text != "" {
		return []ocrToken{*wrapped.Best}
	}
	return wrapped.All
}

// recognitionText returns the first non-empty OCR text of a detail.
func recognitionText(detail *maa.RecognitionDetail) string {
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

// templateDetections converts a recognition's template matches into
// detections, preferring filtered results and falling back to all.
func templateDetections(detail *maa.RecognitionDetail) []vision.Detection {
	if detail == nil || detail.Results == nil {
		return nil
	}
	results := detail.Results.Filtered
	if len(results) == 0 {
		results = detail.Results.All
	}
	dets := make([]vision.Detection, 0, len(results))
	for _, res := range results {
		tm, ok := res.AsTemplateMatch()
		if !ok {
			continue
		}
		b := tm.Box
		dets = append(dets, vision.Detection{X: b.X(), Y: b.Y(), W: b.Width(), H: b.Height()})
	}
	return dets
}
