package skills

import (
	"fmt"
	"html"
	"strings"

	"github.com/MaaUmaTeam/MaaUma/agent/go-service/pkg/maafocus"
	maa "github.com/MaaXYZ/maa-framework-go/v4"
)

// logPlanSummary renders the purchase plan and its budget cut to the GUI.
func logPlanSummary(ctx *maa.Context, plan []Skill, aff Affordable, availablePoints int) {
	if len(plan) == 0 {
		maafocus.SimpleHTML(ctx, "Nothing on the priority list is offered")
		return
	}

	affordable := map[string]bool{}
	for _, skill := range aff.Skills {
		affordable[skill.Name] = true
	}

	var b strings.Builder
	b.WriteString(`<div style="color: #00bfff; font-weight: 900;">Purchase plan</div>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; font-size: 12px;">`)
	for i, skill := range plan {
		color := "#11cf00"
		if !affordable[skill.Name] {
			color = "#888888"
		}
		price := skill.Price
		if price == "" {
			price = "?"
		}
		b.WriteString("<tr>")
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; color: %s;">%d. %s</td>`, color, i+1, html.EscapeString(skill.Name)))
		b.WriteString(fmt.Sprintf(`<td style="padding: 2px 4px; color: %s; text-align: right;">%s</td>`, color, html.EscapeString(price)))
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	b.WriteString(fmt.Sprintf(`<div style="font-size: 12px; color: #888888;">%d / %d points spent, %d left, %d of %d skills affordable</div>`,
		aff.TotalCost, availablePoints, aff.Remaining, len(aff.Skills), len(plan)))

	maafocus.HTML(ctx, b.String())
}

// logPurchaseOutcome reports what actually got bought.
func logPurchaseOutcome(ctx *maa.Context, bought, missed []Skill) {
	if len(bought) == 0 && len(missed) == 0 {
		return
	}
	var b strings.Builder
	if len(bought) > 0 {
		b.WriteString(fmt.Sprintf(`<div style="color: #11cf00; font-weight: 700;">Bought %d skill(s)</div>`, len(bought)))
	}
	for _, skill := range missed {
		b.WriteString(fmt.Sprintf(`<div style="color: #ff7000; font-size: 12px;">Not found on screen: %s</div>`, html.EscapeString(skill.Name)))
	}
	maafocus.HTML(ctx, b.String())
}
