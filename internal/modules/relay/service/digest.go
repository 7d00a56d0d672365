package service

import (
	"fmt"
	"html"
	"strings"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/samber/lo"
)

// DigestTop is how many items a relayed digest lists
const DigestTop = 5

const digestInstruction = "Reply with the text to post on X. Your next message in this chat will be published."

// FormatDigest renders items as a Telegram HTML message for the operator.
func FormatDigest(title string, items []sourceDomain.Item, top int) string {
	if top <= 0 {
		top = DigestTop
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>[%s]</b>\n\n", html.EscapeString(title))

	for i, item := range lo.Slice(items, 0, top) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, html.EscapeString(item.Title))
		if item.Author != "" {
			fmt.Fprintf(&b, "<i>%s</i>\n", html.EscapeString(item.Author))
		}
		if item.Link != "" {
			fmt.Fprintf(&b, "Link: %s\n", html.EscapeString(item.Link))
		}
		b.WriteString("\n")
	}

	b.WriteString(digestInstruction)
	return b.String()
}
