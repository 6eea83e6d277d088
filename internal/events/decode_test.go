package events

import (
	"errors"
	"testing"
)

func TestDecode_Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{name: "printable", input: "ab", want: []Key{Rune('a'), Rune('b')}},
		{name: "utf8", input: "é世", want: []Key{Rune('é'), Rune('世')}},
		{name: "space", input: " ", want: []Key{Rune(' ')}},
		{name: "carriage return", input: "\r", want: []Key{Special(KeyEnter)}},
		{name: "line feed", input: "\n", want: []Key{Special(KeyEnter)}},
		{name: "tab", input: "\t", want: []Key{Special(KeyTab)}},
		{name: "del is backspace", input: "\x7f", want: []Key{Special(KeyBackspace)}},
		{name: "ctrl+h is backspace", input: "\x08", want: []Key{Special(KeyBackspace)}},
		{name: "ctrl+c", input: "\x03", want: []Key{Ctrl('c')}},
		{name: "ctrl+v", input: "\x16", want: []Key{Ctrl('v')}},
		{name: "lone escape", input: "\x1b", want: []Key{Special(KeyEscape)}},
		{name: "arrow up", input: "\x1b[A", want: []Key{Special(KeyUp)}},
		{name: "arrow down", input: "\x1b[B", want: []Key{Special(KeyDown)}},
		{name: "arrow right", input: "\x1b[C", want: []Key{Special(KeyRight)}},
		{name: "arrow left", input: "\x1b[D", want: []Key{Special(KeyLeft)}},
		{name: "ss3 arrow", input: "\x1bOA", want: []Key{Special(KeyUp)}},
		{name: "home tilde", input: "\x1b[1~", want: []Key{Special(KeyHome)}},
		{name: "end", input: "\x1b[F", want: []Key{Special(KeyEnd)}},
		{name: "delete", input: "\x1b[3~", want: []Key{Special(KeyDelete)}},
		{name: "page up", input: "\x1b[5~", want: []Key{Special(KeyPageUp)}},
		{name: "page down", input: "\x1b[6~", want: []Key{Special(KeyPageDown)}},
		{name: "ctrl+right", input: "\x1b[1;5C", want: []Key{{Code: KeyRight, Mod: ModCtrl}}},
		{name: "shift+tab", input: "\x1b[Z", want: []Key{{Code: KeyTab, Mod: ModShift}}},
		{name: "alt+x", input: "\x1bx", want: []Key{{Code: KeyRune, Rune: 'x', Mod: ModAlt}}},
		{name: "alt+backspace", input: "\x1b\x7f", want: []Key{{Code: KeyBackspace, Mod: ModAlt}}},
		{name: "csi u enter", input: "\x1b[13u", want: []Key{Special(KeyEnter)}},
		{name: "csi u press", input: "\x1b[97;1:1u", want: []Key{Rune('a')}},
		{name: "release dropped", input: "\x1b[97;1:3u", want: nil},
		{name: "repeat dropped", input: "\x1b[1;1:2A", want: nil},
		{name: "mixed", input: "x\x1b[Ay\r", want: []Key{Rune('x'), Special(KeyUp), Rune('y'), Special(KeyEnter)}},
		{name: "escape then escape sequence", input: "\x1b\x1b[A", want: []Key{Special(KeyEscape), Special(KeyUp)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Decode(%q) = %v, want %d keys %v", tt.input, got, len(tt.want), tt.want)
			}
			for i, ev := range got {
				if ev.Kind != KindKey {
					t.Fatalf("Decode(%q)[%d] kind = %v, want key", tt.input, i, ev.Kind)
				}
				if ev.Key != tt.want[i] {
					t.Errorf("Decode(%q)[%d] = %v, want %v", tt.input, i, ev.Key, tt.want[i])
				}
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys int
	}{
		{name: "invalid utf8", input: "\xff", wantKeys: 0},
		{name: "invalid utf8 between keys", input: "a\xffb", wantKeys: 2},
		{name: "unterminated csi", input: "\x1b[1;", wantKeys: 0},
		{name: "unknown csi final", input: "\x1b[5x", wantKeys: 0},
		{name: "unknown tilde", input: "\x1b[99~", wantKeys: 0},
		{name: "mouse report", input: "\x1b[<0;10;5M", wantKeys: 0},
		{name: "unknown ss3", input: "\x1bOz", wantKeys: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.input))
			keys, errs := 0, 0
			for _, ev := range got {
				switch ev.Kind {
				case KindKey:
					keys++
				case KindError:
					errs++
					if !errors.Is(ev.Err, ErrMalformedInput) {
						t.Errorf("error %v does not wrap ErrMalformedInput", ev.Err)
					}
				}
			}
			if errs != 1 {
				t.Errorf("Decode(%q) produced %d errors, want 1 (%v)", tt.input, errs, got)
			}
			if keys != tt.wantKeys {
				t.Errorf("Decode(%q) produced %d keys, want %d", tt.input, keys, tt.wantKeys)
			}
		})
	}
}

func TestDecode_ErrorKeepsPosition(t *testing.T) {
	got := Decode([]byte("a\xffb"))
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	if got[0].Kind != KindKey || got[1].Kind != KindError || got[2].Kind != KindKey {
		t.Errorf("order = %v, want key, error, key", got)
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Rune('q'), "q"},
		{Rune('E'), "E"},
		{Rune(' '), "space"},
		{Ctrl('c'), "ctrl+c"},
		{Special(KeyEnter), "enter"},
		{Special(KeyEscape), "esc"},
		{Special(KeyPageDown), "pgdown"},
		{Key{Code: KeyTab, Mod: ModShift}, "shift+tab"},
		{Key{Code: KeyRune, Rune: 'x', Mod: ModAlt}, "alt+x"},
		{Key{Code: KeyUp, Mod: ModCtrl | ModShift}, "ctrl+shift+up"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKey_Printable(t *testing.T) {
	if !Rune('a').Printable() {
		t.Error("'a' should be printable")
	}
	if Ctrl('a').Printable() {
		t.Error("ctrl+a should not be printable")
	}
	if (Key{Code: KeyRune, Rune: 'a', Mod: ModAlt}).Printable() {
		t.Error("alt+a should not be printable")
	}
	if Special(KeyEnter).Printable() {
		t.Error("enter should not be printable")
	}
}

func TestDecode_BracketedPaste(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{
			name:  "whole paste",
			input: "\x1b[200~http://x\x1b[201~",
			want:  []Event{PasteEvent("http://x")},
		},
		{
			name:  "keys around paste",
			input: "a\x1b[200~eq\x1b[201~b",
			want:  []Event{KeyEvent(Rune('a')), PasteEvent("eq"), KeyEvent(Rune('b'))},
		},
		{
			name:  "escape sequences inside paste stay text",
			input: "\x1b[200~\x1b[A\r\n\x1b[201~",
			want:  []Event{PasteEvent("\x1b[A\r\n")},
		},
		{
			name:  "empty paste",
			input: "\x1b[200~\x1b[201~",
			want:  []Event{PasteEvent("")},
		},
		{
			name:  "unterminated paste is flushed",
			input: "\x1b[200~abc",
			want:  []Event{PasteEvent("abc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("Decode(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind || got[i].Text != tt.want[i].Text || got[i].Key != tt.want[i].Key {
					t.Errorf("event %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_PasteAcrossReads(t *testing.T) {
	var d Decoder
	if got := d.Decode([]byte("\x1b[200~http://")); len(got) != 0 {
		t.Fatalf("first read produced %v, want nothing until the paste ends", got)
	}
	if got := d.Decode([]byte("example.com\x1b[20")); len(got) != 0 {
		t.Fatalf("second read produced %v, want nothing until the paste ends", got)
	}
	got := d.Decode([]byte("1~q"))
	if len(got) != 2 {
		t.Fatalf("got %v, want paste then key", got)
	}
	if got[0].Kind != KindPaste || got[0].Text != "http://example.com" {
		t.Errorf("paste = %s, want %q", got[0], "http://example.com")
	}
	if got[1].Kind != KindKey || got[1].Key != Rune('q') {
		t.Errorf("after paste = %s, want key q", got[1])
	}
	if rest := d.Flush(); len(rest) != 0 {
		t.Errorf("Flush after a finished paste = %v, want nothing", rest)
	}
}

func TestDecoder_PasteSizeLimit(t *testing.T) {
	var d Decoder
	d.Decode(pasteStart)
	got := d.Decode(make([]byte, maxPasteSize+1))
	if len(got) != 1 || got[0].Kind != KindPaste {
		t.Fatalf("oversized paste produced %v, want one paste event", got)
	}
	if len(got[0].Text) != maxPasteSize+1 {
		t.Errorf("paste length = %d, want %d", len(got[0].Text), maxPasteSize+1)
	}
}
