package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/dispatch"
	"github.com/studiowebux/reqline/internal/events"
	"github.com/studiowebux/reqline/internal/logging"
)

// ErrNotTerminal is returned when the interactive mode is started without a
// terminal on stdin and stdout
var ErrNotTerminal = errors.New("interactive mode requires a terminal")

// Options configures Run
type Options struct {
	State  app.Options
	Sender dispatch.Sender

	TickRate  time.Duration
	FrameRate float64

	Logger *slog.Logger

	// In and Out default to os.Stdin and os.Stdout
	In  *os.File
	Out *os.File
}

// IsTerminal reports whether f is a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run starts the interactive UI and blocks until the user quits. The
// terminal is put in raw mode for the duration and restored on return.
func Run(ctx context.Context, opts Options) error {
	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !IsTerminal(in) || !IsTerminal(out) {
		return ErrNotTerminal
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	previous, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(int(in.Fd()), previous); err != nil {
			logger.Error("failed to restore terminal", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	src := events.NewSource()
	if w, h, err := term.GetSize(int(out.Fd())); err == nil {
		src.Push(events.ResizeEvent(w, h))
	}
	src.Start(ctx, events.Options{
		Input:     in,
		TickRate:  opts.TickRate,
		FrameRate: opts.FrameRate,
	})

	state := app.NewState(opts.State)
	model := NewModel(ctx, src, state, dispatch.New(opts.Sender, src, logger), nil, logger)

	logger.Info("ui started", "tick_rate", opts.TickRate, "frame_rate", opts.FrameRate)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info("ui stopped")
	return nil
}
