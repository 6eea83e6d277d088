package events

import "strings"

// KeyCode identifies a non-printable key, or KeyRune for a character
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
)

// Modifier is a bit set of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
	ModNone Modifier = 0
)

// Key is a single decoded key press
type Key struct {
	Code KeyCode
	Rune rune // set when Code == KeyRune
	Mod  Modifier
}

// Printable reports whether the key should be inserted as text
func (k Key) Printable() bool {
	return k.Code == KeyRune && k.Mod&(ModCtrl|ModAlt) == 0 && k.Rune >= 0x20
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
}

// String renders the key the way keybind configs spell it, e.g. "ctrl+c",
// "alt+x", "shift+tab", "up" or "q"
func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if k.Mod&ModShift != 0 {
		sb.WriteString("shift+")
	}
	switch k.Code {
	case KeyRune:
		if k.Rune == ' ' {
			sb.WriteString("space")
		} else {
			sb.WriteRune(k.Rune)
		}
	case KeyNone:
		sb.WriteString("none")
	default:
		sb.WriteString(keyNames[k.Code])
	}
	return sb.String()
}

// Rune builds a plain character key
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Ctrl builds a ctrl+letter key
func Ctrl(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mod: ModCtrl}
}

// Special builds a key without a rune, e.g. Special(KeyEnter)
func Special(code KeyCode) Key {
	return Key{Code: code}
}
