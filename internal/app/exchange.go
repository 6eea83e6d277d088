package app

import (
	"time"

	"github.com/studiowebux/reqline/internal/types"
)

// ExchangeEntry is one line of the exchange log. It is appended pending and
// resolved exactly once, with either a status code or an error message.
type ExchangeEntry struct {
	Token       uint64
	Method      types.Method
	URL         string
	SubmittedAt time.Time

	Pending  bool
	Status   int
	Err      string
	Duration time.Duration
}

// Failed reports whether the exchange ended with a transport error
func (e ExchangeEntry) Failed() bool {
	return !e.Pending && e.Err != ""
}
