package events

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

func nextWithin(t *testing.T, s *Source, d time.Duration) Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	e, err := s.Next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	return e
}

func TestSource_FIFO(t *testing.T) {
	s := NewSource()
	s.Push(KeyEvent(Rune('a')))
	s.Push(TickEvent())
	s.Push(KeyEvent(Rune('b')))

	want := []string{"key(a)", "tick", "key(b)"}
	for _, w := range want {
		if got := nextWithin(t, s, time.Second).String(); got != w {
			t.Errorf("Next() = %s, want %s", got, w)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after draining", s.Len())
	}
}

func TestSource_NextBlocksUntilPush(t *testing.T) {
	s := NewSource()
	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Push(RenderEvent())
	}()
	if got := nextWithin(t, s, time.Second); got.Kind != KindRender {
		t.Errorf("Next() kind = %v, want render", got.Kind)
	}
}

func TestSource_NextHonorsContext(t *testing.T) {
	s := NewSource()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Next() error = %v, want deadline exceeded", err)
	}
}

func TestSource_ConcurrentProducersKeepPerProducerOrder(t *testing.T) {
	s := NewSource()
	const producers, perProducer = 4, 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				s.Push(ResizeEvent(p, i))
			}
		}(p)
	}
	wg.Wait()

	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	for n := 0; n < producers*perProducer; n++ {
		e := nextWithin(t, s, time.Second)
		if e.Height <= last[e.Width] {
			t.Fatalf("producer %d: got %d after %d", e.Width, e.Height, last[e.Width])
		}
		last[e.Width] = e.Height
	}
}

// A tick that elapses while no key arrives must surface before a later key.
func TestSource_TickBeforeDelayedKey(t *testing.T) {
	s := NewSource()
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx, Options{Input: r, TickRate: 10 * time.Millisecond})

	go func() {
		time.Sleep(60 * time.Millisecond)
		w.Write([]byte("q"))
	}()

	first := nextWithin(t, s, time.Second)
	if first.Kind != KindTick {
		t.Fatalf("first event = %s, want tick", first)
	}
	for {
		e := nextWithin(t, s, time.Second)
		if e.Kind == KindKey {
			if e.Key != Rune('q') {
				t.Errorf("key = %v, want q", e.Key)
			}
			return
		}
		if e.Kind != KindTick {
			t.Fatalf("unexpected event %s", e)
		}
	}
}

// A key that arrives before the first tick must surface first.
func TestSource_KeyBeforeSlowTick(t *testing.T) {
	s := NewSource()
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx, Options{Input: r, TickRate: time.Hour})

	go w.Write([]byte("\x1b[A"))

	if e := nextWithin(t, s, time.Second); e.Kind != KindKey || e.Key != Special(KeyUp) {
		t.Errorf("first event = %s, want key(up)", e)
	}
}

func TestSource_RenderEventsFromFrameRate(t *testing.T) {
	s := NewSource()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx, Options{FrameRate: 100})

	if e := nextWithin(t, s, time.Second); e.Kind != KindRender {
		t.Errorf("event = %s, want render", e)
	}
}

func TestSource_ReaderReportsErrorsAndStopsAtEOF(t *testing.T) {
	s := NewSource()
	r, w := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx, Options{Input: r})

	go func() {
		w.Write([]byte("\xff"))
		w.Close()
	}()

	decodeErr := nextWithin(t, s, time.Second)
	if decodeErr.Kind != KindError || !errors.Is(decodeErr.Err, ErrMalformedInput) {
		t.Fatalf("event = %s, want malformed input error", decodeErr)
	}
	eof := nextWithin(t, s, time.Second)
	if eof.Kind != KindError || !errors.Is(eof.Err, io.EOF) {
		t.Fatalf("event = %s, want EOF error", eof)
	}
}

func TestSource_ProducersStopWithContext(t *testing.T) {
	s := NewSource()
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx, Options{TickRate: 5 * time.Millisecond})
	nextWithin(t, s, time.Second)
	cancel()

	time.Sleep(20 * time.Millisecond)
	drained := s.Len()
	time.Sleep(30 * time.Millisecond)
	if s.Len() > drained {
		t.Errorf("ticks kept arriving after cancel: %d -> %d", drained, s.Len())
	}
}

func TestSource_ReaderJoinsPasteAcrossReads(t *testing.T) {
	s := NewSource()
	r, w := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx, Options{Input: r})

	go func() {
		w.Write([]byte("\x1b[200~http://"))
		w.Write([]byte("x\x1b[201~"))
	}()

	e := nextWithin(t, s, time.Second)
	if e.Kind != KindPaste || e.Text != "http://x" {
		t.Fatalf("event = %s, want paste of %q", e, "http://x")
	}
	if s.Len() != 0 {
		t.Errorf("queue holds %d extra events, want none", s.Len())
	}
}
