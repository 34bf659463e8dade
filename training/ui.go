package training

import (
	"fmt"
	"html"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
)

// logDecisionTable renders the per-type score table to the GUI.
func logDecisionTable(ctx *maa.Context, rows []ScoredTraining, best int) {
	var b strings.Builder
	b.WriteString(`<div style="color: #00bfff; font-weight: 900;">Training decision:</div>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; font-size: 12px;">`)
	b.WriteString(`<tr><th style="text-align:left; padding: 2px 4px;">Type</th><th style="text-align:right; padding: 2px 4px;">Score</th><th style="text-align:right; padding: 2px 4px;">Failure</th><th style="text-align:right; padding: 2px 4px;">Supports</th><th style="text-align:left; padding: 2px 4px;">Verdict</th></tr>`)

	for i, row := range rows {
		verdict := row.Rejected
		color := "#493a3a"
		switch {
		case i == best:
			verdict = "selected"
			color = "#11cf00"
		case verdict == "":
			verdict = "candidate"
			color = "#064d7c"
		default:
			color = "#ff7000"
		}
		b.WriteString("<tr>")
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; color: %s; font-weight: 700;">%s</td>`, color, strings.ToUpper(row.Type)))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; text-align: right;">%.2f</td>`, row.Score))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; text-align: right;">%.0f%%</td>`, row.Failure))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; text-align: right;">%d</td>`, row.Supports))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px;">%s</td>`, html.EscapeString(verdict)))
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")

	maafocus.HTML(ctx, b.String())
}
