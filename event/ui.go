package event

import (
	"fmt"
	"html"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
)

// logAnalysisCard renders the per-option analysis to the GUI.
func logAnalysisCard(ctx *maa.Context, rec *Record, reco Recommendation, choice int) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<div style="color: #00bfff; font-weight: 900;">%s <span style="color: #888888; font-weight: 400;">(%s)</span></div>`,
		html.EscapeString(rec.Name), html.EscapeString(rec.Source)))
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; font-size: 12px;">`)

	for _, a := range reco.Options {
		color := "#064d7c"
		switch {
		case a.Label == reco.Recommended:
			color = "#11cf00"
		case a.HasBad && !a.HasGood:
			color = "#ff7000"
		}
		b.WriteString("<tr>")
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; color: %s; font-weight: 700; white-space: nowrap;">%s</td>`, color, html.EscapeString(a.Label)))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px;">%s%s%s</td>`,
			html.EscapeString(shorten(a.RewardText, 60)),
			phraseChips(a.GoodMatches, "#11cf00"),
			phraseChips(a.BadMatches, "#ff7000")))
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	b.WriteString(fmt.Sprintf(`<div style="font-size: 12px; color: #888888;">%s, clicking choice %d</div>`,
		html.EscapeString(reco.Reason), choice))

	maafocus.HTML(ctx, b.String())
}

func phraseChips(phrases []string, color string) string {
	var b strings.Builder
	for _, p := range phrases {
		b.WriteString(fmt.Sprintf(` <span style="color: %s;">[%s]</span>`, color, html.EscapeString(p)))
	}
	return b.String()
}

func shorten(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
