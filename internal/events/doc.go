/*
Package events produces the single ordered event stream consumed by the
application state machine.

# Event Kinds

  - Key: one key press decoded from the raw terminal input
  - Tick: periodic liveness tick (Options.TickRate)
  - Render: frame request (Options.FrameRate per second)
  - Resize: new terminal dimensions
  - Error: undecodable input or a failed read
  - Result: outcome of a dispatched HTTP request
  - Paste: text read from the clipboard

# Source

Source is an unbounded multi-producer FIFO. Push never blocks, so
producers (ticker goroutines, the input reader, dispatch goroutines) are
never held up by a slow consumer. Next blocks until an event is queued and
returns events strictly in push order, so ticks and keys interleave by
arrival time.

Start launches the producers. The input reader is the only code that reads
the terminal stream; everything it reads goes through Decode. Producers are
not stopped individually: the ticker goroutines exit with their context and
a reader blocked in Read is reclaimed when the process exits.

# Example Usage

	src := events.NewSource()
	src.Start(ctx, events.Options{
		Input:    os.Stdin,
		TickRate: 250 * time.Millisecond,
	})

	for {
		ev, err := src.Next(ctx)
		if err != nil {
			return err
		}
		handle(ev)
	}
*/
package events
