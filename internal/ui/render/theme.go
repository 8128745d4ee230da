package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines prompt colors.
type ColorTheme struct {
	PromptFg    tcell.Color
	MessageFg   tcell.Color
	FilterFg    tcell.Color
	OptionFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	HelpFg      tcell.Color
	AnswerFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		PromptFg:    tcell.ColorGreen,
		MessageFg:   tcell.ColorDefault,
		FilterFg:    tcell.ColorDefault,
		OptionFg:    tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		HelpFg:      tcell.Color44, // cyan
		AnswerFg:    tcell.Color33,
	}
}

// ParseColor resolves a color name ("white", "#ff8800", "default"). The empty
// name returns fallback.
func ParseColor(name string, fallback tcell.Color) (tcell.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback, nil
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault && !strings.EqualFold(name, "default") {
		return fallback, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
