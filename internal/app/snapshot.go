package app

import "github.com/studiowebux/reqline/internal/types"

// Snapshot is an immutable view of State for rendering
type Snapshot struct {
	Mode Mode

	Input     string
	Cursor    int
	BeforeCur string
	AfterCur  string

	Methods  []types.Method
	Selected int // -1 when nothing is selected
	Fallback types.Method

	Log     []ExchangeEntry
	Pending bool
	Notice  string
	Scroll  int // log lines hidden below the view
}

// Method returns the method the next dispatch will use
func (s Snapshot) Method() types.Method {
	if s.Selected >= 0 && s.Selected < len(s.Methods) {
		return s.Methods[s.Selected]
	}
	return s.Fallback
}
