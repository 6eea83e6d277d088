package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/events"
)

// fakeDispatcher records dispatch commands without sending anything
type fakeDispatcher struct {
	mu    sync.Mutex
	calls []app.Dispatch
}

func (d *fakeDispatcher) Dispatch(_ context.Context, cmd app.Dispatch) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, cmd)
}

func (d *fakeDispatcher) Calls() []app.Dispatch {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]app.Dispatch(nil), d.calls...)
}

// fakeClipboard is an in-memory clipboard
type fakeClipboard struct {
	mu      sync.Mutex
	text    string
	err     error
	written chan string
}

func newFakeClipboard(text string) *fakeClipboard {
	return &fakeClipboard{text: text, written: make(chan string, 1)}
}

func (c *fakeClipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, c.err
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	err := c.err
	if err == nil {
		c.text = text
	}
	c.mu.Unlock()
	if err == nil {
		c.written <- text
	}
	return err
}

// CreateTestModel creates a Model wired to fakes
func CreateTestModel(t *testing.T, opts app.Options) (*Model, *fakeDispatcher, *fakeClipboard) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	}
	dispatcher := &fakeDispatcher{}
	clip := newFakeClipboard("")
	m := NewModel(ctx, events.NewSource(), app.NewState(opts), dispatcher, clip, nil)
	return m, dispatcher, clip
}

// feed sends events through Update the way the running program would and
// returns the command of the last one
func feed(t *testing.T, m *Model, evs ...events.Event) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, ev := range evs {
		_, cmd = m.Update(eventMsg{ev: ev})
	}
	return cmd
}

// nextQueued waits for the next event pushed by a background goroutine
func nextQueued(t *testing.T, m *Model) events.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ev, err := m.src.Next(ctx)
	if err != nil {
		t.Fatalf("no event queued: %v", err)
	}
	return ev
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
