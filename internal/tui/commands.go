package tui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/events"
)

// Clipboard reads and writes the system clipboard
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// run executes a command. Nothing here blocks the loop: outcomes come back
// through the event queue.
func (m *Model) run(cmd app.Command) {
	switch c := cmd.(type) {
	case app.Dispatch:
		m.dispatcher.Dispatch(m.ctx, c)

	case app.Copy:
		go func() {
			if err := m.clipboard.WriteAll(c.Text); err != nil {
				m.src.Push(events.ErrorEvent(fmt.Errorf("copy to clipboard: %w", err)))
				return
			}
			m.logger.Debug("copied url", "url", c.Text)
		}()

	case app.Paste:
		go func() {
			text, err := m.clipboard.ReadAll()
			if err != nil {
				m.src.Push(events.ErrorEvent(fmt.Errorf("paste from clipboard: %w", err)))
				return
			}
			m.src.Push(events.PasteEvent(text))
		}()

	default:
		m.logger.Warn("unknown command", "command", fmt.Sprintf("%T", cmd))
	}
}
