package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Width reports the number of terminal columns text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most maxWidth columns, ending it with an
// ellipsis when something was cut.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if Width(text) <= maxWidth {
		return text
	}

	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var b strings.Builder
	current := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if current+w > available {
			break
		}
		b.WriteRune(r)
		current += w
	}
	b.WriteString(ellipsis)
	return b.String()
}
