package event

// Screen regions in (x, y, w, h) on the 1080x1920 reference layout.
// The choice region is the left margin strip where the option marker
// icons sit; the name region is the title banner of the event dialog.
var (
	EVENT_NAME_REGION   = [4]int{210, 243, 660, 72}
	EVENT_CHOICE_REGION = [4]int{0, 540, 190, 1150}
)

const (
	// Marker templates match loosely; dimmed duplicates are culled by
	// the brightness filter afterwards.
	EVENT_CHOICE_CONFIDENCE = 0.45
	EVENT_CHOICE_DEDUP_DIST = 150.0
	EVENT_CHOICE_MIN_LUMA   = 160.0

	// Tokens below this recognition score are dropped before the name
	// join.
	EVENT_TOKEN_MIN_SCORE = 0.8
)
