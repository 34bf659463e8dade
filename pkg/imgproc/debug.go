package imgproc

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// SaveDebugImage 将画面保存到 debug/<topic> 目录，用于排查识别失败时的画面。
// A scale below 1.0 downscales the frame first to keep the debug dir small.
func SaveDebugImage(img image.Image, topic, reason string, scale float64) {
	if img == nil {
		return
	}
	if scale > 0 && scale < 1 {
		img = Scale(img, scale)
	}
	dir := filepath.Join("debug", topic)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("Failed to create debug dir")
		return
	}
	name := fmt.Sprintf("%s_%s.png", reason, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Failed to create debug image file")
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Failed to encode debug image")
		return
	}
	log.Info().Str("path", path).Str("reason", reason).Msg("Saved debug frame to disk")
}
