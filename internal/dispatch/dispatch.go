// Package dispatch runs requests off the consumer loop and feeds their
// outcome back into the event queue.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/studiowebux/reqline/internal/app"
	"github.com/studiowebux/reqline/internal/events"
	"github.com/studiowebux/reqline/internal/logging"
	"github.com/studiowebux/reqline/internal/types"
)

// ErrNoResponse is reported when a Sender returns neither a response nor
// an error
var ErrNoResponse = errors.New("sender returned no response")

// Sender performs one HTTP exchange
type Sender interface {
	Send(ctx context.Context, req *types.Request) (*types.Response, error)
}

// Sink receives the Result event. events.Source satisfies it.
type Sink interface {
	Push(e events.Event)
}

// Dispatcher starts one goroutine per dispatch. There is no retry and no
// cancellation once a request has started; the sender's timeout bounds it.
type Dispatcher struct {
	sender Sender
	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

// New creates a dispatcher. logger may be nil.
func New(sender Sender, sink Sink, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{sender: sender, sink: sink, logger: logger, now: time.Now}
}

// Dispatch sends cmd.Request in the background and pushes exactly one
// Result event tagged with cmd.Token
func (d *Dispatcher) Dispatch(ctx context.Context, cmd app.Dispatch) {
	req := cmd.Request
	d.logger.Debug("dispatch", "token", cmd.Token, "method", req.Method, "url", req.URL)

	go func() {
		start := d.now()
		result := events.Result{Token: cmd.Token}

		resp, err := d.send(ctx, &req)
		result.Duration = d.now().Sub(start)
		if err != nil {
			result.Err = err
			d.logger.Warn("request failed",
				"token", cmd.Token, "method", req.Method, "url", req.URL,
				"duration", result.Duration, "error", err)
		} else {
			result.Status = resp.Status
			if resp.Duration > 0 {
				result.Duration = resp.Duration
			}
			d.logger.Info("request completed",
				"token", cmd.Token, "method", req.Method, "url", req.URL,
				"status", resp.Status, "duration", result.Duration)
		}

		d.sink.Push(events.ResultEvent(result))
	}()
}

// send calls the sender, turning a nil response or a panic into an error
// so the goroutine always reports back
func (d *Dispatcher) send(ctx context.Context, req *types.Request) (resp *types.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, fmt.Errorf("sender panicked: %v", r)
		}
	}()
	resp, err = d.sender.Send(ctx, req)
	if err == nil && resp == nil {
		err = ErrNoResponse
	}
	return resp, err
}
