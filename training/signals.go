package training

import (
	"encoding/json"
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/imgproc"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/vision"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Failure label patterns in priority order: "15%", "% 15", bare "15".
var failurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3})\s*%`),
	regexp.MustCompile(`%\s*(\d{1,3})`),
	regexp.MustCompile(`(\d{1,3})`),
}

// ParseFailureText extracts a failure percentage from OCR text. A value
// outside 0..100 falls through to the next pattern. No usable number
// yields the conservative worst case: assume unsafe, not unknown.
func ParseFailureText(text string) (float64, bool) {
	for _, re := range failurePatterns {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			if v, err := strconv.Atoi(m[1]); err == nil && v <= 100 {
				return float64(v), true
			}
		}
	}
	return 100, false
}

// FailureConfidence averages per-token recognition scores into one 0..1
// confidence. No tokens means no confidence.
func FailureConfidence(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	return stat.Mean(scores, nil)
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

// CollectSignals assembles the signal bundle for the hovered training
// type from one full screenshot.
func CollectSignals(ctx *maa.Context, img image.Image, trainType string) *SignalBundle {
	bundle := &SignalBundle{
		Type:          trainType,
		SupportCounts: map[string]int{},
		SupportDetail: map[string][]BondSample{},
	}

	roi := maa.Rect{SUPPORT_ICON_REGION[0], SUPPORT_ICON_REGION[1], SUPPORT_ICON_REGION[2], SUPPORT_ICON_REGION[3]}

	for _, cardType := range SUPPORT_CARD_TYPES {
		node := fmt.Sprintf("TrainingSupportIcon_%s", cardType)
		override := map[string]any{node: map[string]any{"roi": roi}}
		detail, err := ctx.RunRecognition(node, img, override)
		if err != nil {
			log.Error().Err(err).Str("card_type", cardType).Msg("<Training> support icon recognition failed")
			continue
		}
		if detail == nil || !detail.Hit {
			continue
		}
		dets := vision.Dedup(templateDetections(detail), SUPPORT_DEDUP_DIST)
		if len(dets) == 0 {
			continue
		}
		for _, d := range dets {
			cx, cy := d.Center()
			r, g, b := vision.SampleRGB(img, cx, cy, BOND_SAMPLE_OFFSET[0], BOND_SAMPLE_OFFSET[1])
			bundle.SupportDetail[cardType] = append(bundle.SupportDetail[cardType], BondSample{
				X: cx, Y: cy,
				Level: vision.ClassifyBond(r, g, b),
				R:     r, G: g, B: b,
			})
		}
		bundle.SupportCounts[cardType] = len(dets)
	}

	bundle.HintPresent = checkHint(ctx, img, roi)
	bundle.SpiritCount, bundle.BurstCount = countSpirits(ctx, img)
	bundle.FailureRate, bundle.FailureConf = readFailure(ctx, img, trainType)

	log.Info().
		Str("type", trainType).
		Int("supports", bundle.TotalSupports()).
		Int("rainbow", bundle.RainbowCount()).
		Bool("hint", bundle.HintPresent).
		Int("spirits", bundle.SpiritCount).
		Int("bursts", bundle.BurstCount).
		Float64("failure", bundle.FailureRate).
		Float64("failure_conf", bundle.FailureConf).
		Msg("<Training> signals collected")
	return bundle
}

func checkHint(ctx *maa.Context, img image.Image, roi maa.Rect) bool {
	override := map[string]any{"TrainingHintIcon": map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition("TrainingHintIcon", img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Training> hint recognition failed")
		return false
	}
	return detail != nil && detail.Hit
}

// readFailure OCRs the failure percentage with a retry ladder: plain
// attempts first, then attempts on a yellow-text mask for the
// warning-colored rendering. Only confident in-range readings are
// accepted; exhaustion assumes the worst case.
func readFailure(ctx *maa.Context, img image.Image, trainType string) (float64, float64) {
	region, ok := FAILURE_OCR_REGIONS[trainType]
	if !ok {
		log.Error().Str("type", trainType).Msg("<Training> no failure region for type")
		return 100, 0
	}
	roi := maa.Rect{region[0], region[1], region[2], region[3]}

	for attempt := 0; attempt < FAILURE_OCR_ATTEMPTS; attempt++ {
		if attempt > 0 {
			img = recapture(ctx, img)
		}
		if rate, conf, ok := failureAttempt(ctx, img, roi); ok {
			return rate, conf
		}
	}

	for attempt := 0; attempt < FAILURE_OCR_ATTEMPTS; attempt++ {
		if attempt > 0 {
			img = recapture(ctx, img)
		}
		rect := image.Rect(region[0], region[1], region[0]+region[2], region[1]+region[3])
		masked := imgproc.YellowTextMask(img, rect)
		maskROI := maa.Rect{0, 0, masked.Bounds().Dx(), masked.Bounds().Dy()}
		if rate, conf, ok := failureAttempt(ctx, masked, maskROI); ok {
			return rate, conf
		}
	}

	imgproc.SaveDebugImage(img, "training_failure", trainType, 0.5)
	log.Warn().Str("type", trainType).Msg("<Training> failure OCR exhausted, assuming 100%")
	return 100, 0
}

func failureAttempt(ctx *maa.Context, img image.Image, roi maa.Rect) (float64, float64, bool) {
	override := map[string]any{"TrainingFailureOCR": map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition("TrainingFailureOCR", img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Training> failure OCR failed")
		return 0, 0, false
	}
	text := recognitionText(detail)
	if text == "" {
		return 0, 0, false
	}

	rate, parsed := ParseFailureText(text)
	tokens := ocrTokens(detail.DetailJson)
	scores := make([]float64, 0, len(tokens))
	for _, tk := range tokens {
		scores = append(scores, tk.Score)
	}
	conf := FailureConfidence(scores)

	if !parsed || conf < FAILURE_MIN_CONFIDENCE {
		log.Debug().Str("text", text).Float64("rate", rate).Float64("conf", conf).Msg("<Training> failure reading rejected")
		return 0, 0, false
	}
	return rate, conf, true
}

func recapture(ctx *maa.Context, fallback image.Image) image.Image {
	controller := ctx.GetTasker().GetController()
	if controller == nil {
		return fallback
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Training> recapture failed")
		return fallback
	}
	return img
}
