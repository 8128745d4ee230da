package textinput

import (
	"unicode"

	"github.com/kk-code-lab/rselect/internal/ui/input"
)

// Input is a single-line editable buffer with a rune cursor.
type Input struct {
	runes  []rune
	cursor int
}

// New returns an empty buffer.
func New() *Input {
	return &Input{}
}

// Content returns the current text.
func (in *Input) Content() string {
	return string(in.runes)
}

// Cursor returns the cursor position as a rune index.
func (in *Input) Cursor() int {
	return in.cursor
}

// Len returns the number of runes in the buffer.
func (in *Input) Len() int {
	return len(in.runes)
}

// HandleKey applies key to the buffer and reports whether the content changed.
func (in *Input) HandleKey(key input.Key) bool {
	switch key.Kind {
	case input.KindChar:
		if key.Mod&(input.ModCtrl|input.ModAlt) != 0 {
			return false
		}
		in.insert(key.Rune)
		return true
	case input.KindBackspace:
		return in.backspace()
	case input.KindDelete:
		return in.delete()
	case input.KindDeleteWord:
		return in.deleteWord()
	case input.KindLeft:
		if in.cursor > 0 {
			in.cursor--
		}
	case input.KindRight:
		if in.cursor < len(in.runes) {
			in.cursor++
		}
	case input.KindHome:
		in.cursor = 0
	case input.KindEnd:
		in.cursor = len(in.runes)
	}
	return false
}

func (in *Input) insert(r rune) {
	in.runes = append(in.runes, 0)
	copy(in.runes[in.cursor+1:], in.runes[in.cursor:])
	in.runes[in.cursor] = r
	in.cursor++
}

func (in *Input) backspace() bool {
	if in.cursor == 0 {
		return false
	}
	in.runes = append(in.runes[:in.cursor-1], in.runes[in.cursor:]...)
	in.cursor--
	return true
}

func (in *Input) delete() bool {
	if in.cursor >= len(in.runes) {
		return false
	}
	in.runes = append(in.runes[:in.cursor], in.runes[in.cursor+1:]...)
	return true
}

func (in *Input) deleteWord() bool {
	if in.cursor == 0 {
		return false
	}
	start := previousWordBoundary(in.runes, in.cursor)
	in.runes = append(in.runes[:start], in.runes[in.cursor:]...)
	in.cursor = start
	return true
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	i := pos - 1
	for i >= 0 && !isWordChar(runes[i]) {
		i--
	}
	for i >= 0 && isWordChar(runes[i]) {
		i--
	}
	return i + 1
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
