package training

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/imgproc"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/resdir"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/vision"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

var (
	burstOnce  sync.Once
	burstStats vision.NeedleStats
	burstErr   error
)

// initBurstTemplate loads and preprocesses the burst-state template once.
// The burst sub-region has a dynamic position, so it is matched with the
// in-process matcher instead of a pipeline node.
func initBurstTemplate() {
	burstOnce.Do(func() {
		path := filepath.Join(resdir.Base(), "image", "Training", "spirit_burst.png")
		f, err := os.Open(path)
		if err != nil {
			burstErr = fmt.Errorf("open burst template: %w", err)
			log.Warn().Err(burstErr).Msg("<Training> burst template unavailable")
			return
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			burstErr = fmt.Errorf("decode burst template: %w", err)
			log.Warn().Err(burstErr).Msg("<Training> burst template unavailable")
			return
		}
		burstStats = vision.GetNeedleStats(imgproc.ToRGBA(img))
		log.Info().Str("path", path).Msg("<Training> burst template loaded")
	})
}

// countSpirits finds spirit-training icons in the support strip and, for
// each, checks the burst sub-state below the icon. Returns icon count
// and lit-burst count.
func countSpirits(ctx *maa.Context, img image.Image) (int, int) {
	roi := maa.Rect{SUPPORT_ICON_REGION[0], SUPPORT_ICON_REGION[1], SUPPORT_ICON_REGION[2], SUPPORT_ICON_REGION[3]}
	override := map[string]any{"TrainingSpiritIcon": map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition("TrainingSpiritIcon", img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Training> spirit recognition failed")
		return 0, 0
	}
	if detail == nil || !detail.Hit {
		return 0, 0
	}

	dets := vision.Dedup(templateDetections(detail), SUPPORT_DEDUP_DIST)
	bursts := 0
	for _, d := range dets {
		if checkBurst(img, d) {
			bursts++
		}
	}
	return len(dets), bursts
}

// checkBurst matches the burst template against the sub-region below one
// spirit icon. A missing template or empty region reads as "not lit".
func checkBurst(img image.Image, d vision.Detection) bool {
	initBurstTemplate()
	if burstErr != nil || burstStats.Dn < 1e-6 {
		return false
	}

	cx, cy := d.Center()
	rect := vision.SampleRegion(img.Bounds(), cx, cy,
		SPIRIT_BURST_OFFSET[0], SPIRIT_BURST_OFFSET[1],
		SPIRIT_BURST_SIZE[0], SPIRIT_BURST_SIZE[1])
	if rect.Empty() {
		return false
	}

	sub := imgproc.CropRect(img, rect)
	integral := vision.NewIntegralImage(sub)
	_, _, score := vision.MatchTemplate(sub, integral, burstStats)
	return score >= SPIRIT_BURST_CONFIDENCE
}
