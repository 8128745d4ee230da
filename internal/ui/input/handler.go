package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Decode converts a tcell key event into a Key.
func Decode(ev *tcell.EventKey) Key {
	if ev == nil {
		return Key{}
	}
	mod := convertModifiers(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyEnter:
		return Special(KindSubmit)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Special(KindCancel)
	case tcell.KeyUp:
		return Key{Kind: KindUp, Mod: mod}
	case tcell.KeyDown:
		return Key{Kind: KindDown, Mod: mod}
	case tcell.KeyLeft:
		return Key{Kind: KindLeft, Mod: mod}
	case tcell.KeyRight:
		return Key{Kind: KindRight, Mod: mod}
	case tcell.KeyHome, tcell.KeyCtrlA:
		return Special(KindHome)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return Special(KindEnd)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Special(KindBackspace)
	case tcell.KeyDelete:
		return Special(KindDelete)
	case tcell.KeyCtrlW:
		return Special(KindDeleteWord)
	case tcell.KeyRune:
		return decodeRune(ev.Rune(), mod)
	default:
		return Key{}
	}
}

func decodeRune(r rune, mod Modifiers) Key {
	if mod&ModCtrl != 0 {
		switch r {
		case 'a', 'A':
			return Special(KindHome)
		case 'e', 'E':
			return Special(KindEnd)
		case 'w', 'W':
			return Special(KindDeleteWord)
		case 'h', 'H':
			return Special(KindBackspace)
		case 'c', 'C':
			return Special(KindCancel)
		}
	}
	if mod&ModShift != 0 {
		// Normalize shifted alphabetic runes to reflect user intent (Shift+A => 'A')
		r = unicode.ToUpper(r)
		// The shift is already folded into the rune; keep j/k vim bindings
		// distinguishable from J/K without a dangling modifier.
		mod &^= ModShift
	}
	if !unicode.IsPrint(r) {
		return Key{}
	}
	return Char(r, mod)
}

func convertModifiers(m tcell.ModMask) Modifiers {
	var out Modifiers
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
