package skills

import (
	"encoding/json"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/career"
	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

var skillPointsDigits = regexp.MustCompile(`\d+`)

// ParseSkillPoints reads the points counter text. The font renders a
// trailing "1" as a backslash often enough to warrant the repair; the
// largest digit run wins because the region can catch stray digits from
// neighboring labels. Unreadable text reads as 0.
func ParseSkillPoints(text string) int {
	repaired := strings.ReplaceAll(text, `\`, "1")
	best := 0
	for _, m := range skillPointsDigits.FindAllString(repaired, -1) {
		if v, err := strconv.Atoi(m); err == nil && v > best {
			best = v
		}
	}
	return best
}

// SkillsCapCheckAction - route into the purchase flow when the skill
// points from the last career snapshot have reached the configured cap.
type SkillsCapCheckAction struct{}

func (a *SkillsCapCheckAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	opts := getOptionsFromAttach(ctx, arg.CurrentTaskName)
	current := career.Current().SkillPts

	log.Info().Int("points", current).Int("cap", opts.SkillPointCap).Msg("<Skills> cap check")
	if current < opts.SkillPointCap {
		return true
	}

	log.Info().Msg("<Skills> points at cap, entering purchase flow")
	maafocus.SimpleHTML(ctx, "Skill points at cap, buying skills")
	resetScanState()
	points = current
	ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
		{Name: "SkillsEnter"},
	})
	return true
}

// SkillsScanAction - collect name/price rows from the visible page and
// scroll on. Runs once per page until a page adds nothing new or the
// scroll bound is hit, then hands over to planning.
type SkillsScanAction struct{}

func (a *SkillsScanAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	opts := getOptionsFromAttach(ctx, arg.CurrentTaskName)

	controller := ctx.GetTasker().GetController()
	if controller == nil {
		log.Error().Msg("<Skills> Scan: controller nil")
		return false
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Skills> Scan: get screenshot failed")
		return false
	}

	if scrolls == 0 {
		if v := readSkillPoints(ctx, img); v > 0 {
			points = v
		} else if points == 0 {
			points = career.Current().SkillPts
			log.Warn().Int("points", points).Msg("<Skills> points OCR failed, using career snapshot")
		}
	}

	added := 0
	for _, row := range scanPage(ctx, img) {
		if storeSkill(row.Skill) {
			added++
		}
	}
	scrolls++
	log.Info().Int("page", scrolls).Int("new_rows", added).Int("total", len(collected)).Msg("<Skills> page scanned")

	if added > 0 && scrolls < opts.MaxScrolls {
		runSwipe(ctx, SCROLL_SWIPE, SCROLL_DURATION)
		ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
			{Name: "SkillsScan"},
		})
		return true
	}

	log.Info().Int("skills", len(collected)).Int("scrolls", scrolls).Msg("<Skills> scan complete")
	ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
		{Name: "SkillsPlan"},
	})
	return true
}

// SkillsPlanAction - build the purchase plan from the scanned rows,
// budget-filter it and queue the buys.
type SkillsPlanAction struct{}

func (a *SkillsPlanAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().Msg("<Skills> ---- Plan ----")
	opts := getOptionsFromAttach(ctx, arg.CurrentTaskName)
	cfg := loadedPurchaseConfig(opts.SkillFile)

	plan := BuildPlan(collected, cfg, opts.EndCareer)
	aff := FilterAffordable(plan, points)
	queue = append([]Skill(nil), aff.Skills...)
	logPlanSummary(ctx, plan, aff, points)

	if len(queue) == 0 {
		log.Info().Msg("<Skills> nothing affordable to buy")
		maafocus.SimpleHTML(ctx, "No skills to purchase")
		ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
			{Name: "SkillsExit"},
		})
		return true
	}

	// Back to the top of the list before locating the first buy.
	for i := 0; i < TOP_SWIPE_COUNT; i++ {
		runSwipe(ctx, TOP_SWIPE, TOP_SWIPE_DURATION)
	}

	ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
		{Name: "SkillsPurchaseStep"},
	})
	return true
}

// SkillsPurchaseStepAction - buy every queued skill visible on the
// current page, then scroll and repeat until the queue drains or the
// scroll bound is hit.
type SkillsPurchaseStepAction struct{}

func (a *SkillsPurchaseStepAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	opts := getOptionsFromAttach(ctx, arg.CurrentTaskName)

	controller := ctx.GetTasker().GetController()
	if controller == nil {
		log.Error().Msg("<Skills> Purchase: controller nil")
		return false
	}
	controller.PostScreencap().Wait()
	img, err := controller.CacheImage()
	if err != nil {
		log.Error().Err(err).Msg("<Skills> Purchase: get screenshot failed")
		return false
	}

	rows := scanPage(ctx, img)
	remaining := queue[:0]
	for _, target := range queue {
		row, ok := findRow(rows, target.Name)
		if !ok {
			remaining = append(remaining, target)
			continue
		}
		clickBuy(ctx, row)
		purchased = append(purchased, target)
		log.Info().Str("skill", target.Name).Str("price", target.Price).Msg("<Skills> purchased")
	}
	queue = remaining
	purchaseScroll++

	if len(queue) > 0 && purchaseScroll < opts.MaxScrolls {
		log.Debug().Int("pending", len(queue)).Msg("<Skills> scrolling for remaining buys")
		runSwipe(ctx, SCROLL_SWIPE, SCROLL_DURATION)
		ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
			{Name: "SkillsPurchaseStep"},
		})
		return true
	}

	failed = append(failed, queue...)
	queue = nil
	log.Info().Int("purchased", len(purchased)).Int("failed", len(failed)).Msg("<Skills> purchase pass done")
	logPurchaseOutcome(ctx, purchased, failed)

	next := "SkillsExit"
	if len(purchased) > 0 {
		// Confirm, learn and close are plain pipeline nodes from here.
		next = "SkillsConfirm"
	}
	ctx.OverrideNext(arg.CurrentTaskName, []maa.NextItem{
		{Name: next},
	})
	return true
}

// SkillsFinishAction - end of the purchase flow, drop per-visit state.
type SkillsFinishAction struct{}

func (a *SkillsFinishAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	log.Info().
		Int("scanned", len(collected)).
		Int("purchased", len(purchased)).
		Int("failed", len(failed)).
		Msg("<Skills> ========== Finish ==========")
	resetScanState()
	return true
}

// pageRow is one visible skill row with its name box for clicking.
type pageRow struct {
	Skill
	Box [4]int
}

// scanPage OCRs the name and price columns of the visible list and
// pairs them into rows by vertical position. A name without a readable
// price still forms a row; its price stays empty and is flagged later.
func scanPage(ctx *maa.Context, img image.Image) []pageRow {
	names := columnTokens(ctx, img, "SkillNameOCR", SKILL_NAME_COLUMN)
	prices := columnTokens(ctx, img, "SkillPriceOCR", SKILL_PRICE_COLUMN)

	rows := make([]pageRow, 0, len(names))
	for _, nameTok := range names {
		name := CleanOCRText(nameTok.Text)
		if name == "" {
			continue
		}
		// Snap confident reads onto the catalog spelling so dedup and
		// exact lookups see one name per skill across pages.
		if m := BestCatalogMatch(name, "", CATALOG_SELF_THRESHOLD); m.Name != "" {
			name = m.Name
		}
		row := pageRow{Skill: Skill{Name: name}, Box: nameTok.Box}
		nameCY := nameTok.Box[1] + nameTok.Box[3]/2
		for _, priceTok := range prices {
			priceCY := priceTok.Box[1] + priceTok.Box[3]/2
			if abs(priceCY-nameCY) <= ROW_PAIR_TOLERANCE {
				row.Price = digitsOnly(priceTok.Text)
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// findRow locates a planned skill on the visible page via the
// catalog-constrained matcher.
func findRow(rows []pageRow, targetName string) (pageRow, bool) {
	for _, row := range rows {
		if MatchesTarget(row.Name, targetName) {
			return row, true
		}
	}
	return pageRow{}, false
}

func clickBuy(ctx *maa.Context, row pageRow) {
	cy := row.Box[1] + row.Box[3]/2
	clickingBox := [4]int{BUY_BUTTON_X - 20, cy - 20, 40, 40}
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
}

func runSwipe(ctx *maa.Context, swipe [4]int, duration int) {
	override := map[string]any{
		"NodeSwipe": map[string]any{
			"action": map[string]any{
				"param": map[string]any{
					"begin":    [2]int{swipe[0], swipe[1]},
					"end":      [2]int{swipe[2], swipe[3]},
					"duration": duration,
				},
			},
		},
	}
	ctx.RunTask("NodeSwipe", override)
}

func readSkillPoints(ctx *maa.Context, img image.Image) int {
	roi := maa.Rect{SKILL_POINTS_REGION[0], SKILL_POINTS_REGION[1], SKILL_POINTS_REGION[2], SKILL_POINTS_REGION[3]}
	override := map[string]any{"SkillPointsOCR": map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition("SkillPointsOCR", img, override)
	if err != nil {
		log.Error().Err(err).Msg("<Skills> points OCR failed")
		return 0
	}
	if detail == nil {
		return 0
	}
	v := ParseSkillPoints(recognitionText(detail))
	log.Info().Int("points", v).Msg("<Skills> points read")
	return v
}

type boxedToken struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	Box   [4]int  `json:"box"`
}

// columnTokens runs one OCR node over a column strip and returns the
// per-token results with their boxes, preferring filtered tokens.
func columnTokens(ctx *maa.Context, img image.Image, node string, region [4]int) []boxedToken {
	roi := maa.Rect{region[0], region[1], region[2], region[3]}
	override := map[string]any{node: map[string]any{"roi": roi}}
	detail, err := ctx.RunRecognition(node, img, override)
	if err != nil {
		log.Error().Err(err).Str("node", node).Msg("<Skills> column OCR failed")
		return nil
	}
	if detail == nil || detail.DetailJson == "" {
		return nil
	}

	var wrapped struct {
		Filtered []boxedToken `json:"filtered"`
		All      []boxedToken `json:"all"`
	}
	if err := json.Unmarshal([]byte(detail.DetailJson), &wrapped); err != nil {
		log.Error().Err(err).Str("node", node).Msg("<Skills> column detail unreadable")
		return nil
	}
	if len(wrapped.Filtered) > 0 {
		return wrapped.Filtered
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

func digitsOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
