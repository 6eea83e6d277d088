package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/events"
	"github.com/studiowebux/reqline/internal/logging"
)

// eventMsg carries one event from the queue into Update
type eventMsg struct {
	ev  events.Event
	err error
}

// Dispatcher runs Dispatch commands off the loop
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd app.Dispatch)
}

// Model is the Bubble Tea model. Bubble Tea only paints: every input reaches
// the state machine through the event queue, consumed one event at a time by
// waitForEvent.
type Model struct {
	ctx        context.Context
	src        *events.Source
	state      *app.State
	renderer   *Renderer
	dispatcher Dispatcher
	clipboard  Clipboard
	logger     *slog.Logger

	frame string
}

// NewModel wires the consumer loop. logger and clipboard may be nil.
func NewModel(ctx context.Context, src *events.Source, state *app.State, dispatcher Dispatcher, clipboard Clipboard, logger *slog.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if clipboard == nil {
		clipboard = systemClipboard{}
	}
	m := &Model{
		ctx:        ctx,
		src:        src,
		state:      state,
		renderer:   NewRenderer(state.Keys()),
		dispatcher: dispatcher,
		clipboard:  clipboard,
		logger:     logger,
	}
	m.frame = m.renderer.Draw(state.Snapshot())
	return m
}

// Init starts consuming the queue
func (m *Model) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent returns a Cmd that blocks until the next queued event
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, err := m.src.Next(m.ctx)
		return eventMsg{ev: ev, err: err}
	}
}

// Update handles Bubble Tea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// resize goes through the queue to keep event order
		m.src.Push(events.ResizeEvent(msg.Width, msg.Height))
		return m, nil

	case eventMsg:
		if msg.err != nil {
			m.logger.Debug("event loop stopped", "error", msg.err)
			return m, tea.Quit
		}
		return m, m.consume(msg.ev)
	}
	return m, nil
}

// consume applies one event and re-arms the wait unless the app is quitting
func (m *Model) consume(ev events.Event) tea.Cmd {
	switch ev.Kind {
	case events.KindResize:
		m.renderer.Resize(ev.Width, ev.Height)
	case events.KindTick:
		m.renderer.Tick()
	case events.KindError:
		m.logger.Warn("event error", "error", ev.Err)
	case events.KindKey:
		m.logger.Debug("key", "key", ev.Key.String(), "mode", m.state.Mode().String())
	}

	tr := m.state.Handle(ev)
	if tr.Command != nil {
		m.run(tr.Command)
	}
	if tr.Redraw {
		m.frame = m.renderer.Draw(m.state.Snapshot())
	}

	if m.state.ShouldQuit() {
		m.logger.Info("quit", "pending", m.state.Pending())
		return tea.Quit
	}
	return m.waitForEvent()
}

// View returns the last drawn frame
func (m *Model) View() string {
	return m.frame
}

// State exposes the application state, for the caller after the program exits
func (m *Model) State() *app.State {
	return m.state
}
