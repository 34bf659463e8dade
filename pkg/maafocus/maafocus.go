// Package maafocus sends focus messages to the GUI log panel through the
// pipeline's LogMXU node.
package maafocus

import (
	"fmt"
	"strings"

	maa "github.com/MaaXYZ/maa-framework-go/v4"
)

// NodeActionStarting posts content (plain text or an HTML fragment) to the
// GUI via the Node.Action.Starting focus hook.
func NodeActionStarting(ctx *maa.Context, content string) bool {
	override := map[string]any{
		"LogMXU": map[string]any{
			"focus": map[string]any{
				"Node.Action.Starting": content,
			},
		},
	}
	ctx.RunTask("LogMXU", override)
	return true
}

// HTML posts an HTML fragment as a focus message.
func HTML(ctx *maa.Context, htmlText string) bool {
	return NodeActionStarting(ctx, strings.TrimLeft(htmlText, " \t\r\n"))
}

// SimpleHTMLWithColor posts one styled line in the given color.
func SimpleHTMLWithColor(ctx *maa.Context, text string, color string) bool {
	return HTML(ctx, fmt.Sprintf(`<span style="color: %s; font-weight: 500;">%s</span>`, color, text))
}

// SimpleHTML posts one styled line in the default accent color.
func SimpleHTML(ctx *maa.Context, text string) bool {
	return SimpleHTMLWithColor(ctx, text, "#00bfff")
}
