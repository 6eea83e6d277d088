// Package input implements the single-line text input used for the URL field.
//
// A Widget is a plain value with no I/O. The cursor is a rune offset and
// every operation keeps it within [0, Len()].
package input

// Widget holds a text buffer and a cursor position
type Widget struct {
	buf    []rune
	cursor int
}

// New creates an empty widget
func New() Widget {
	return Widget{}
}

// Insert inserts r at the cursor and advances the cursor by one
func (w *Widget) Insert(r rune) {
	w.clamp()
	w.buf = append(w.buf, 0)
	copy(w.buf[w.cursor+1:], w.buf[w.cursor:])
	w.buf[w.cursor] = r
	w.cursor++
}

// InsertString inserts every rune of s at the cursor
func (w *Widget) InsertString(s string) {
	for _, r := range s {
		w.Insert(r)
	}
}

// DeleteBackward removes the rune before the cursor. No-op at position 0.
func (w *Widget) DeleteBackward() {
	w.clamp()
	if w.cursor == 0 {
		return
	}
	w.buf = append(w.buf[:w.cursor-1], w.buf[w.cursor:]...)
	w.cursor--
}

// DeleteForward removes the rune under the cursor. No-op at the end.
func (w *Widget) DeleteForward() {
	w.clamp()
	if w.cursor >= len(w.buf) {
		return
	}
	w.buf = append(w.buf[:w.cursor], w.buf[w.cursor+1:]...)
}

// MoveLeft moves the cursor one rune left, saturating at 0
func (w *Widget) MoveLeft() {
	w.cursor--
	w.clamp()
}

// MoveRight moves the cursor one rune right, saturating at Len()
func (w *Widget) MoveRight() {
	w.cursor++
	w.clamp()
}

// Home moves the cursor to the start of the buffer
func (w *Widget) Home() {
	w.cursor = 0
}

// End moves the cursor past the last rune
func (w *Widget) End() {
	w.cursor = len(w.buf)
}

// Reset clears the buffer and puts the cursor at 0
func (w *Widget) Reset() {
	w.buf = nil
	w.cursor = 0
}

// SetValue replaces the buffer and moves the cursor to the end
func (w *Widget) SetValue(s string) {
	w.buf = []rune(s)
	w.cursor = len(w.buf)
}

// Value returns a snapshot of the buffer
func (w Widget) Value() string {
	return string(w.buf)
}

// Cursor returns the cursor offset in runes
func (w Widget) Cursor() int {
	return w.cursor
}

// Len returns the buffer length in runes
func (w Widget) Len() int {
	return len(w.buf)
}

// Split returns the text before and after the cursor, for rendering
func (w Widget) Split() (before, after string) {
	c := min(max(w.cursor, 0), len(w.buf))
	return string(w.buf[:c]), string(w.buf[c:])
}

func (w *Widget) clamp() {
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor > len(w.buf) {
		w.cursor = len(w.buf)
	}
}
