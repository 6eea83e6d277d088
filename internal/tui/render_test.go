package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/keybinds"
	"github.com/studiowebux/reqline/internal/types"
)

var submitted = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func baseSnapshot() app.Snapshot {
	return app.Snapshot{
		Mode:     app.ModeNormal,
		Methods:  types.Methods,
		Selected: -1,
		Fallback: types.MethodGet,
	}
}

func TestRenderer_EmptyState(t *testing.T) {
	r := NewRenderer(nil)
	frame := r.Draw(baseSnapshot())

	for _, want := range []string{"reqline", "[NORMAL]", "press e to enter a URL", "GET", "POST", "PUT", "DELETE", "(none, sends GET)", "no requests yet", "edit url", "quit"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
}

func TestRenderer_FitsTerminal(t *testing.T) {
	r := NewRenderer(nil)
	r.Resize(60, 20)

	s := baseSnapshot()
	s.Input = "http://example.com/" + strings.Repeat("a", 200)
	for i := 0; i < 30; i++ {
		s.Log = append(s.Log, app.ExchangeEntry{
			Method:      types.MethodGet,
			URL:         fmt.Sprintf("http://example.com/%d/%s", i, strings.Repeat("b", 100)),
			SubmittedAt: submitted,
			Status:      200,
		})
	}

	lines := strings.Split(r.Draw(s), "\n")
	if len(lines) > 20 {
		t.Errorf("frame has %d lines, want at most 20", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 60 {
			t.Errorf("line %d is %d cells wide: %q", i, w, line)
		}
	}
}

func TestRenderer_EditingShowsBufferAndHelp(t *testing.T) {
	r := NewRenderer(nil)
	s := baseSnapshot()
	s.Mode = app.ModeEditing
	s.Input = "http://x"
	s.BeforeCur = "http://"
	s.AfterCur = "x"
	s.Cursor = 7

	frame := r.Draw(s)
	for _, want := range []string{"[EDITING]", "http://", "send", "stop editing"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
	if strings.Contains(frame, "edit url") {
		t.Error("editing footer should not list normal mode actions")
	}
}

func TestRenderer_LogEntries(t *testing.T) {
	r := NewRenderer(nil)
	s := baseSnapshot()
	s.Selected = 1
	s.Pending = true
	s.Log = []app.ExchangeEntry{
		{Method: types.MethodGet, URL: "http://ok", SubmittedAt: submitted, Status: 204, Duration: 12 * time.Millisecond},
		{Method: types.MethodPut, URL: "http://down", SubmittedAt: submitted, Err: "connection refused", Duration: 3 * time.Millisecond},
		{Method: types.MethodPost, URL: "http://slow", SubmittedAt: submitted, Pending: true},
	}

	frame := r.Draw(s)
	for _, want := range []string{"09:30:00", "http://ok", "204", "12ms", "error: connection refused", "http://slow", "pending", "request in flight"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q:\n%s", want, frame)
		}
	}
	if strings.Contains(frame, "(none, sends") {
		t.Error("fallback hint shown while a method is selected")
	}
}

func TestRenderer_ScrollHidesNewest(t *testing.T) {
	r := NewRenderer(nil)
	r.Resize(80, 12) // three log lines

	s := baseSnapshot()
	for i := 0; i < 10; i++ {
		s.Log = append(s.Log, app.ExchangeEntry{
			Method:      types.MethodGet,
			URL:         fmt.Sprintf("http://host/%02d", i),
			SubmittedAt: submitted,
			Status:      200,
		})
	}

	tail := r.Draw(s)
	if !strings.Contains(tail, "http://host/09") {
		t.Errorf("tail view missing newest entry:\n%s", tail)
	}

	s.Scroll = 5
	scrolled := r.Draw(s)
	if strings.Contains(scrolled, "http://host/09") {
		t.Errorf("scrolled view still shows newest entry:\n%s", scrolled)
	}
	if !strings.Contains(scrolled, "http://host/04") {
		t.Errorf("scrolled view missing entry 04:\n%s", scrolled)
	}
}

func TestRenderer_HelpFollowsRegistry(t *testing.T) {
	keys := keybinds.NewDefaultRegistry()
	keys.Unbind(keybinds.ContextNormal, keybinds.ActionEdit)
	keys.Register(keybinds.ContextNormal, "i", keybinds.ActionEdit)

	frame := NewRenderer(keys).Draw(baseSnapshot())
	if !strings.Contains(frame, "press i to enter a URL") {
		t.Errorf("hint does not use the rebound key:\n%s", frame)
	}
}

func TestRenderer_Notice(t *testing.T) {
	s := baseSnapshot()
	s.Notice = "URL is empty"
	if frame := NewRenderer(nil).Draw(s); !strings.Contains(frame, "URL is empty") {
		t.Errorf("frame missing notice:\n%s", frame)
	}
}
