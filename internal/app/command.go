package app

import "github.com/studiowebux/reqline/internal/types"

// Command is a side effect requested by a transition. The state machine
// never performs I/O itself; the consumer loop executes commands.
type Command interface {
	command()
}

// Dispatch asks for Request to be sent. Its outcome must come back as a
// Result event carrying Token.
type Dispatch struct {
	Token   uint64
	Request types.Request
}

// Copy asks for Text to be written to the system clipboard
type Copy struct {
	Text string
}

// Paste asks for the clipboard to be read and delivered as a Paste event
type Paste struct{}

func (Dispatch) command() {}
func (Copy) command()     {}
func (Paste) command()    {}

// Transition is the outcome of handling one event
type Transition struct {
	Redraw  bool
	Command Command // nil when there is nothing to do
}
