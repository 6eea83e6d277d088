package events

import (
	"fmt"
	"time"
)

// Kind tags an Event
type Kind int

const (
	KindKey Kind = iota
	KindTick
	KindRender
	KindResize
	KindError
	KindResult
	KindPaste
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindTick:
		return "tick"
	case KindRender:
		return "render"
	case KindResize:
		return "resize"
	case KindError:
		return "error"
	case KindResult:
		return "result"
	case KindPaste:
		return "paste"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one dispatched request
type Result struct {
	Token    uint64
	Status   int
	Duration time.Duration
	Err      error
}

// Event is one item of the ordered stream consumed by the state machine.
// Only the field matching Kind is meaningful.
type Event struct {
	Kind   Kind
	Key    Key
	Width  int
	Height int
	Err    error
	Result Result
	Text   string
}

// KeyEvent wraps a key press
func KeyEvent(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// TickEvent is a periodic liveness tick
func TickEvent() Event {
	return Event{Kind: KindTick}
}

// RenderEvent asks for a frame
func RenderEvent() Event {
	return Event{Kind: KindRender}
}

// ResizeEvent reports new terminal dimensions
func ResizeEvent(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// ErrorEvent reports an input or background failure
func ErrorEvent(err error) Event {
	return Event{Kind: KindError, Err: err}
}

// ResultEvent carries a dispatch outcome
func ResultEvent(r Result) Event {
	return Event{Kind: KindResult, Result: r}
}

// PasteEvent carries text read from the clipboard
func PasteEvent(text string) Event {
	return Event{Kind: KindPaste, Text: text}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key(" + e.Key.String() + ")"
	case KindResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case KindError:
		return fmt.Sprintf("error(%v)", e.Err)
	case KindResult:
		if e.Result.Err != nil {
			return fmt.Sprintf("result(#%d, %v)", e.Result.Token, e.Result.Err)
		}
		return fmt.Sprintf("result(#%d, %d)", e.Result.Token, e.Result.Status)
	default:
		return e.Kind.String()
	}
}
