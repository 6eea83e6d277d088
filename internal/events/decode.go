package events

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformedInput marks bytes from the terminal that could not be decoded
var ErrMalformedInput = errors.New("malformed terminal input")

// Bracketed paste markers. The terminal wraps pasted text in them once the
// mode is enabled, which Bubble Tea does on startup.
var (
	pasteStart = []byte("\x1b[200~")
	pasteEnd   = []byte("\x1b[201~")
)

// maxPasteSize bounds the text buffered while waiting for pasteEnd
const maxPasteSize = 64 << 10

// Decoder decodes a stream of reads from a raw-mode terminal. It carries a
// bracketed paste across read boundaries; everything else is decoded per
// read. The zero value is ready to use.
type Decoder struct {
	pasting bool
	paste   []byte
}

// Decode turns one complete read into events. It is Decoder.Decode followed
// by Flush.
func Decode(data []byte) []Event {
	var d Decoder
	return append(d.Decode(data), d.Flush()...)
}

// Flush emits a paste that was started but never terminated
func (d *Decoder) Flush() []Event {
	if !d.pasting {
		return nil
	}
	text := string(d.paste)
	d.pasting, d.paste = false, nil
	return []Event{PasteEvent(text)}
}

// Decode turns one read into events. Each key press becomes a Key event;
// undecodable bytes become Error events wrapping ErrMalformedInput, in the
// position they occurred. Bracketed pastes become a single Paste event. Key
// releases and repeats reported by extended keyboard protocols are dropped.
//
// Outside a paste a read is treated as complete: an ESC at the end of data
// is the Escape key.
func (d *Decoder) Decode(data []byte) []Event {
	var out []Event
	i := 0
	for i < len(data) {
		if d.pasting {
			d.paste = append(d.paste, data[i:]...)
			end := bytes.Index(d.paste, pasteEnd)
			if end < 0 {
				if len(d.paste) > maxPasteSize {
					out = append(out, d.Flush()...)
				}
				return out
			}
			rest := d.paste[end+len(pasteEnd):]
			out = append(out, PasteEvent(string(d.paste[:end])))
			d.pasting, d.paste = false, nil
			data, i = rest, 0
			continue
		}

		b := data[i]

		if b == 0x1b {
			if bytes.HasPrefix(data[i:], pasteStart) {
				d.pasting = true
				i += len(pasteStart)
				continue
			}
			if i+1 >= len(data) {
				out = append(out, KeyEvent(Special(KeyEscape)))
				i++
				continue
			}
			next := data[i+1]
			switch {
			case next == '[':
				ev, ok, n := decodeCSI(data[i:])
				if ok {
					out = append(out, ev)
				}
				i += n
			case next == 'O' && i+2 < len(data):
				if code := ss3Key(data[i+2]); code != KeyNone {
					out = append(out, KeyEvent(Special(code)))
				} else {
					out = append(out, ErrorEvent(fmt.Errorf("%w: unknown SS3 sequence %q", ErrMalformedInput, data[i:i+3])))
				}
				i += 3
			case next >= 0x20 && next < 0x7f:
				out = append(out, KeyEvent(Key{Code: KeyRune, Rune: rune(next), Mod: ModAlt}))
				i += 2
			case next == 0x7f:
				out = append(out, KeyEvent(Key{Code: KeyBackspace, Mod: ModAlt}))
				i += 2
			default:
				out = append(out, KeyEvent(Special(KeyEscape)))
				i++
			}
			continue
		}

		if b < 0x20 {
			out = append(out, KeyEvent(controlKey(b)))
			i++
			continue
		}

		if b == 0x7f {
			out = append(out, KeyEvent(Special(KeyBackspace)))
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, ErrorEvent(fmt.Errorf("%w: invalid UTF-8 byte 0x%02x", ErrMalformedInput, b)))
			i++
			continue
		}
		out = append(out, KeyEvent(Rune(r)))
		i += size
	}
	return out
}

// controlKey maps C0 control bytes to keys
func controlKey(b byte) Key {
	switch b {
	case 0x00:
		return Key{Code: KeyRune, Rune: ' ', Mod: ModCtrl}
	case 0x08:
		return Special(KeyBackspace)
	case 0x09:
		return Special(KeyTab)
	case 0x0a, 0x0d:
		return Special(KeyEnter)
	}
	if b <= 0x1a {
		return Ctrl(rune('a' + b - 1))
	}
	// 0x1c-0x1f: ctrl+\ ctrl+] ctrl+^ ctrl+_
	return Ctrl(rune(b + 0x40))
}

// decodeCSI decodes "ESC [ params final". It returns the event, whether
// one should be emitted, and the number of bytes consumed.
func decodeCSI(data []byte) (Event, bool, int) {
	i := 2
	for i < len(data) {
		b := data[i]
		if b >= 0x40 && b <= 0x7e {
			break
		}
		if (b < '0' || b > '9') && b != ';' && b != ':' {
			// Private or intermediate bytes we never ask the terminal for.
			end := i + 1
			for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
				end++
			}
			end = min(end+1, len(data))
			return ErrorEvent(fmt.Errorf("%w: unsupported CSI sequence %q", ErrMalformedInput, data[:end])), true, end
		}
		i++
	}
	if i >= len(data) {
		return ErrorEvent(fmt.Errorf("%w: unterminated CSI sequence %q", ErrMalformedInput, data)), true, len(data)
	}

	final := data[i]
	params := parseParams(string(data[2:i]))
	consumed := i + 1

	mod, eventType := ModNone, 1
	if len(params) >= 2 {
		if len(params[1]) > 0 {
			mod = xtermModifier(params[1][0])
		}
		if len(params[1]) > 1 {
			eventType = params[1][1]
		}
	}
	if eventType != 1 {
		return Event{}, false, consumed
	}

	first := 0
	if len(params) > 0 && len(params[0]) > 0 {
		first = params[0][0]
	}

	var key Key
	switch final {
	case 'A':
		key = Special(KeyUp)
	case 'B':
		key = Special(KeyDown)
	case 'C':
		key = Special(KeyRight)
	case 'D':
		key = Special(KeyLeft)
	case 'H':
		key = Special(KeyHome)
	case 'F':
		key = Special(KeyEnd)
	case 'Z':
		key = Key{Code: KeyTab, Mod: ModShift}
	case '~':
		code := tildeKey(first)
		if code == KeyNone {
			return ErrorEvent(fmt.Errorf("%w: unknown key sequence %q", ErrMalformedInput, data[:consumed])), true, consumed
		}
		key = Special(code)
	case 'u':
		key = codepointKey(first)
	default:
		return ErrorEvent(fmt.Errorf("%w: unknown key sequence %q", ErrMalformedInput, data[:consumed])), true, consumed
	}
	key.Mod |= mod
	return KeyEvent(key), true, consumed
}

// parseParams splits "1;5:1" into [[1] [5 1]]. Empty fields read as 0.
func parseParams(s string) [][]int {
	if s == "" {
		return nil
	}
	var params [][]int
	for _, group := range strings.Split(s, ";") {
		var sub []int
		for _, field := range strings.Split(group, ":") {
			n, _ := strconv.Atoi(field)
			sub = append(sub, n)
		}
		params = append(params, sub)
	}
	return params
}

// xtermModifier decodes the "1 + bitmask" modifier parameter
func xtermModifier(p int) Modifier {
	if p < 2 {
		return ModNone
	}
	bits := p - 1
	var mod Modifier
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

func tildeKey(n int) KeyCode {
	switch n {
	case 1, 7:
		return KeyHome
	case 2:
		return KeyInsert
	case 3:
		return KeyDelete
	case 4, 8:
		return KeyEnd
	case 5:
		return KeyPageUp
	case 6:
		return KeyPageDown
	}
	return KeyNone
}

func ss3Key(b byte) KeyCode {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// codepointKey maps "CSI codepoint u" keys
func codepointKey(cp int) Key {
	switch cp {
	case 9:
		return Special(KeyTab)
	case 13:
		return Special(KeyEnter)
	case 27:
		return Special(KeyEscape)
	case 127:
		return Special(KeyBackspace)
	}
	return Rune(rune(cp))
}
