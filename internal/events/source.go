package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// readBufferSize bounds a single read from the terminal
const readBufferSize = 256

// maxConsecutiveReadErrors stops the reader when the stream is clearly dead
const maxConsecutiveReadErrors = 5

// Source is the single ordered event stream. Any number of goroutines may
// Push; Push never blocks. Next hands events out one at a time in the order
// they were pushed.
type Source struct {
	mu     sync.Mutex
	queue  []Event
	notify chan struct{}
}

// NewSource creates an empty stream
func NewSource() *Source {
	return &Source{notify: make(chan struct{}, 1)}
}

// Push appends an event to the stream
func (s *Source) Push(e Event) {
	s.mu.Lock()
	s.queue = append(s.queue, e)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Next blocks until an event is available or ctx is done
func (s *Source) Next(ctx context.Context) (Event, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			e := s.queue[0]
			s.queue[0] = Event{}
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return e, nil
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Len returns the number of queued events
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Options configures the background producers started by Start
type Options struct {
	// Input is the raw terminal byte stream. Nil disables key events.
	Input io.Reader
	// TickRate is the Tick period. Zero disables ticks.
	TickRate time.Duration
	// FrameRate is the number of Render events per second. Zero disables them.
	FrameRate float64
}

// Start launches the producers described by opts. They run until ctx is
// done; the input reader additionally stops when the stream ends.
func (s *Source) Start(ctx context.Context, opts Options) {
	if opts.TickRate > 0 {
		go s.every(ctx, opts.TickRate, TickEvent)
	}
	if opts.FrameRate > 0 {
		go s.every(ctx, time.Duration(float64(time.Second)/opts.FrameRate), RenderEvent)
	}
	if opts.Input != nil {
		go s.readInput(ctx, opts.Input)
	}
}

func (s *Source) every(ctx context.Context, period time.Duration, mk func() Event) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Push(mk())
		case <-ctx.Done():
			return
		}
	}
}

// readInput owns the input stream. A blocked Read is abandoned at process exit.
func (s *Source) readInput(ctx context.Context, r io.Reader) {
	buf := make([]byte, readBufferSize)
	var dec Decoder
	failures := 0
	for {
		n, err := r.Read(buf)
		if ctx.Err() != nil {
			return
		}
		if n > 0 {
			failures = 0
			for _, e := range dec.Decode(buf[:n]) {
				s.Push(e)
			}
		}
		if err == nil {
			continue
		}
		s.Push(ErrorEvent(fmt.Errorf("read terminal input: %w", err)))
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
			for _, e := range dec.Flush() {
				s.Push(e)
			}
			return
		}
		failures++
		if failures >= maxConsecutiveReadErrors {
			return
		}
	}
}
