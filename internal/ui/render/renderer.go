package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/kk-code-lab/rselect/internal/textutil"
	"github.com/kk-code-lab/rselect/internal/ui/input"
)

// ErrScreenClosed is returned by ReadKey once the screen has been released.
var ErrScreenClosed = errors.New("screen closed")

const (
	promptPrefix   = "? "
	selectedPrefix = "> "
	optionPrefix   = "  "
)

// Renderer draws a prompt on a tcell screen, one row per call, top to bottom.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	out    *termenv.Output
	row    int

	closeOnce sync.Once
	closed    bool
}

// NewRenderer creates a renderer over an initialised screen. The final answer
// line is written to out once the screen has been released, colored only when
// out is a terminal.
func NewRenderer(screen tcell.Screen, out io.Writer) *Renderer {
	if out == nil {
		out = io.Discard
	}
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		out:    termenv.NewOutput(out),
	}
}

// SetColorProfile overrides the color profile detected for the answer line.
func (r *Renderer) SetColorProfile(profile termenv.Profile) {
	r.out.Profile = profile
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(theme ColorTheme) {
	r.theme = theme
}

// ResetPrompt clears the screen and moves back to the first row.
func (r *Renderer) ResetPrompt() error {
	if r.closed {
		return ErrScreenClosed
	}
	r.screen.Clear()
	r.screen.HideCursor()
	r.row = 0
	return nil
}

// PrintPromptInput draws "? message filter" and places the terminal cursor
// inside the filter text.
func (r *Renderer) PrintPromptInput(message, filter string, cursor int) error {
	w, h := r.screen.Size()
	y := r.nextRow()
	if y >= h {
		return nil
	}

	base := tcell.StyleDefault
	x := r.drawText(0, y, w, promptPrefix, base.Foreground(r.theme.PromptFg).Bold(true))
	x = r.drawText(x, y, w, textutil.Sanitize(message), base.Foreground(r.theme.MessageFg).Bold(true))
	x = r.drawText(x, y, w, " ", base)

	filterRunes := []rune(textutil.Sanitize(filter))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(filterRunes) {
		cursor = len(filterRunes)
	}
	cursorX := x + runewidth.StringWidth(string(filterRunes[:cursor]))
	r.drawText(x, y, w, string(filterRunes), base.Foreground(r.theme.FilterFg))

	if cursorX < w {
		r.screen.ShowCursor(cursorX, y)
	}
	return nil
}

// PrintOption draws one option row; the selected row is highlighted.
func (r *Renderer) PrintOption(selected bool, label string) error {
	w, h := r.screen.Size()
	y := r.nextRow()
	if y >= h {
		return nil
	}

	style := tcell.StyleDefault.Foreground(r.theme.OptionFg)
	prefix := optionPrefix
	if selected {
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		prefix = selectedPrefix
	}

	text := prefix + textutil.Truncate(textutil.Sanitize(label), w-textutil.Width(prefix))
	x := r.drawText(0, y, w, text, style)
	if selected {
		r.fillRow(x, y, w, style)
	}
	return nil
}

// PrintHelp draws the help line.
func (r *Renderer) PrintHelp(message string) error {
	w, h := r.screen.Size()
	y := r.nextRow()
	if y >= h {
		return nil
	}
	text := textutil.Truncate("["+textutil.Sanitize(message)+"]", w)
	r.drawText(0, y, w, text, tcell.StyleDefault.Foreground(r.theme.HelpFg))
	return nil
}

// Flush shows the frame.
func (r *Renderer) Flush() error {
	if r.closed {
		return ErrScreenClosed
	}
	r.screen.Show()
	return nil
}

// ReadKey blocks until a key is pressed. Resizes redraw the current frame;
// mouse and other events are skipped.
func (r *Renderer) ReadKey() (input.Key, error) {
	for {
		if r.closed {
			return input.Key{}, ErrScreenClosed
		}
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return input.Key{}, ErrScreenClosed
		case *tcell.EventKey:
			key := input.Decode(ev)
			if key.Kind == input.KindUnknown {
				continue
			}
			return key, nil
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// Cleanup releases the screen and prints the final "? message answer" line.
func (r *Renderer) Cleanup(message, answer string) error {
	if err := r.Close(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.out, "%s%s %s\n",
		r.styled(promptPrefix, r.theme.PromptFg),
		textutil.Sanitize(message),
		r.styled(textutil.Sanitize(answer), r.theme.AnswerFg))
	return err
}

// styled colors text for the answer line. The default color and the ASCII
// profile leave it untouched.
func (r *Renderer) styled(text string, color tcell.Color) string {
	if r.out.Profile == termenv.Ascii || !color.Valid() || text == "" {
		return text
	}
	var name string
	if color.IsRGB() {
		name = fmt.Sprintf("#%06x", color.Hex())
	} else {
		name = strconv.Itoa(int(color - tcell.ColorValid))
	}
	return r.out.String(text).Foreground(r.out.Color(name)).String()
}

// Close restores the terminal. Calls after the first are no-ops.
func (r *Renderer) Close() error {
	r.closeOnce.Do(func() {
		r.closed = true
		r.screen.Fini()
	})
	return nil
}

func (r *Renderer) nextRow() int {
	y := r.row
	r.row++
	return y
}
