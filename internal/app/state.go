package app

import (
	"strings"
	"time"

	"github.com/studiowebux/reqline/internal/events"
	"github.com/studiowebux/reqline/internal/input"
	"github.com/studiowebux/reqline/internal/keybinds"
	"github.com/studiowebux/reqline/internal/selectlist"
	"github.com/studiowebux/reqline/internal/types"
)

// Mode represents the current interaction mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDITING"
	default:
		return "UNKNOWN"
	}
}

// context returns the keybinding context used for the mode
func (m Mode) context() keybinds.Context {
	if m == ModeEditing {
		return keybinds.ContextEditing
	}
	return keybinds.ContextNormal
}

// Options configures a new State
type Options struct {
	Keys *keybinds.Registry // copied; nil means the default bindings

	// URL prefills the input, Method preselects the method list
	URL    string
	Method *types.Method

	// FallbackMethod is sent when no method is selected
	FallbackMethod types.Method

	// Headers and Body are attached to every dispatched request
	Headers []types.Header
	Body    *string

	Now func() time.Time
}

// State is the application state. It must only be touched by the consumer
// loop; Handle is not safe for concurrent use.
type State struct {
	keys     *keybinds.Registry
	fallback types.Method
	headers  []types.Header
	body     *string
	now      func() time.Time

	input   input.Widget
	methods selectlist.List[types.Method]
	mode    Mode
	log     []ExchangeEntry

	shouldQuit bool
	lastToken  uint64
	inflight   uint64 // token of the pending exchange, 0 when idle
	notice     string
	scroll     int // log lines hidden below the view, 0 follows the tail
}

// NewState creates the initial state in Normal mode
func NewState(opts Options) *State {
	s := &State{
		keys:     opts.Keys,
		fallback: opts.FallbackMethod,
		headers:  append([]types.Header(nil), opts.Headers...),
		body:     opts.Body,
		now:      opts.Now,
		input:    input.New(),
		methods:  selectlist.New(types.Methods...),
		mode:     ModeNormal,
	}
	if s.keys == nil {
		s.keys = keybinds.NewDefaultRegistry()
	} else {
		s.keys = s.keys.Clone()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.URL != "" {
		s.input.SetValue(opts.URL)
	}
	if opts.Method != nil {
		for i, m := range types.Methods {
			if m == *opts.Method {
				s.methods.Select(i)
			}
		}
	}
	return s
}

// Mode returns the current mode
func (s *State) Mode() Mode { return s.mode }

// ShouldQuit reports whether the loop should exit
func (s *State) ShouldQuit() bool { return s.shouldQuit }

// Pending reports whether a dispatch is in flight
func (s *State) Pending() bool { return s.inflight != 0 }

// Keys returns the registry used for key routing
func (s *State) Keys() *keybinds.Registry { return s.keys }

// Handle applies one event and reports whether a redraw is needed and which
// command, if any, the loop must run
func (s *State) Handle(ev events.Event) Transition {
	switch ev.Kind {
	case events.KindKey:
		return s.handleKey(ev.Key)
	case events.KindTick, events.KindRender, events.KindResize:
		return Transition{Redraw: true}
	case events.KindError:
		if ev.Err != nil {
			s.notice = ev.Err.Error()
		}
		return Transition{Redraw: true}
	case events.KindResult:
		return s.handleResult(ev.Result)
	case events.KindPaste:
		return s.handlePaste(ev.Text)
	}
	return Transition{}
}

func (s *State) handleKey(k events.Key) Transition {
	if s.mode == ModeEditing && k.Printable() {
		s.input.Insert(k.Rune)
		return Transition{Redraw: true}
	}

	action, ok := s.keys.Match(s.mode.context(), k.String())
	if !ok {
		return Transition{}
	}

	if s.mode == ModeEditing {
		return s.handleEditingAction(action)
	}
	return s.handleNormalAction(action)
}

func (s *State) handleNormalAction(action keybinds.Action) Transition {
	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		s.shouldQuit = true
	case keybinds.ActionEdit:
		s.mode = ModeEditing
		s.notice = ""
	case keybinds.ActionMethodNext:
		s.methods.Next()
	case keybinds.ActionMethodPrevious:
		s.methods.Previous()
	case keybinds.ActionMethodClear:
		s.methods.Unselect()
	case keybinds.ActionScrollUp:
		if s.scroll < len(s.log)-1 {
			s.scroll++
		}
	case keybinds.ActionScrollDown:
		if s.scroll > 0 {
			s.scroll--
		}
	case keybinds.ActionCopyURL:
		if strings.TrimSpace(s.input.Value()) == "" {
			s.notice = "nothing to copy"
			return Transition{Redraw: true}
		}
		return Transition{Redraw: true, Command: Copy{Text: s.input.Value()}}
	default:
		return Transition{}
	}
	return Transition{Redraw: true}
}

func (s *State) handleEditingAction(action keybinds.Action) Transition {
	switch action {
	case keybinds.ActionQuitForce:
		s.shouldQuit = true
	case keybinds.ActionTextSubmit:
		return s.submit()
	case keybinds.ActionTextCancel:
		s.mode = ModeNormal
	case keybinds.ActionTextBackspace:
		s.input.DeleteBackward()
	case keybinds.ActionTextDelete:
		s.input.DeleteForward()
	case keybinds.ActionTextMoveLeft:
		s.input.MoveLeft()
	case keybinds.ActionTextMoveRight:
		s.input.MoveRight()
	case keybinds.ActionTextMoveHome:
		s.input.Home()
	case keybinds.ActionTextMoveEnd:
		s.input.End()
	case keybinds.ActionTextClear:
		s.input.Reset()
	case keybinds.ActionTextPaste:
		return Transition{Command: Paste{}}
	default:
		return Transition{}
	}
	return Transition{Redraw: true}
}

// submit starts a dispatch for the current buffer. Only one exchange may be
// in flight; the buffer is kept until its result arrives.
func (s *State) submit() Transition {
	if s.inflight != 0 {
		return Transition{}
	}

	url := strings.TrimSpace(s.input.Value())
	if url == "" {
		s.notice = "URL is empty"
		return Transition{Redraw: true}
	}

	method := s.fallback
	if m, ok := s.methods.SelectedItem(); ok {
		method = m
	}

	s.lastToken++
	s.inflight = s.lastToken
	s.log = append(s.log, ExchangeEntry{
		Token:       s.inflight,
		Method:      method,
		URL:         url,
		SubmittedAt: s.now(),
		Pending:     true,
	})
	s.scroll = 0
	s.notice = ""
	s.mode = ModeNormal

	return Transition{
		Redraw: true,
		Command: Dispatch{
			Token: s.inflight,
			Request: types.Request{
				Method:  method,
				URL:     url,
				Headers: append([]types.Header(nil), s.headers...),
				Body:    s.body,
			},
		},
	}
}

func (s *State) handleResult(r events.Result) Transition {
	if r.Token == 0 || r.Token != s.inflight {
		return Transition{}
	}

	for i := len(s.log) - 1; i >= 0; i-- {
		entry := &s.log[i]
		if entry.Token != r.Token || !entry.Pending {
			continue
		}
		entry.Pending = false
		entry.Duration = r.Duration
		if r.Err != nil {
			entry.Err = r.Err.Error()
			if entry.Err == "" {
				entry.Err = "request failed"
			}
		} else {
			entry.Status = r.Status
		}
		break
	}

	s.inflight = 0
	s.input.Reset()
	return Transition{Redraw: true}
}

func (s *State) handlePaste(text string) Transition {
	if s.mode != ModeEditing {
		return Transition{}
	}
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
	if clean == "" {
		return Transition{}
	}
	s.input.InsertString(clean)
	return Transition{Redraw: true}
}

// Snapshot returns a read-only copy of everything the renderer needs
func (s *State) Snapshot() Snapshot {
	before, after := s.input.Split()
	selected, ok := s.methods.Selected()
	if !ok {
		selected = -1
	}
	return Snapshot{
		Mode:      s.mode,
		Input:     s.input.Value(),
		Cursor:    s.input.Cursor(),
		BeforeCur: before,
		AfterCur:  after,
		Methods:   s.methods.Items(),
		Selected:  selected,
		Fallback:  s.fallback,
		Log:       append([]ExchangeEntry(nil), s.log...),
		Pending:   s.inflight != 0,
		Notice:    s.notice,
		Scroll:    s.scroll,
	}
}
