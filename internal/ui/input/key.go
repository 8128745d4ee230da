package input

// Kind identifies a decoded key event.
type Kind int

const (
	KindUnknown Kind = iota
	KindChar
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindBackspace
	KindDelete
	KindDeleteWord
	KindSubmit
	KindCancel
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a decoded key press. Rune is only meaningful for KindChar.
type Key struct {
	Kind Kind
	Rune rune
	Mod  Modifiers
}

// Char builds a KindChar key.
func Char(r rune, mod Modifiers) Key {
	return Key{Kind: KindChar, Rune: r, Mod: mod}
}

// Special builds a non-character key without modifiers.
func Special(kind Kind) Key {
	return Key{Kind: kind}
}

// IsChar reports whether k is the rune r pressed with exactly mod held.
func (k Key) IsChar(r rune, mod Modifiers) bool {
	return k.Kind == KindChar && k.Rune == r && k.Mod == mod
}

// Is reports whether k is the given kind pressed without modifiers.
func (k Key) Is(kind Kind) bool {
	return k.Kind == kind && k.Mod == ModNone
}

func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindUp:
		return "up"
	case KindDown:
		return "down"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindHome:
		return "home"
	case KindEnd:
		return "end"
	case KindBackspace:
		return "backspace"
	case KindDelete:
		return "delete"
	case KindDeleteWord:
		return "delete-word"
	case KindSubmit:
		return "submit"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}
