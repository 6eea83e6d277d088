/*
Package tui implements the terminal user interface for reqline.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern, with
one twist: Bubble Tea does not read the keyboard. The events.Source owns
stdin (in raw mode via golang.org/x/term) and merges keys, ticks, render
requests, request results and clipboard pastes into one ordered queue.

  - Model: holds the app.State, the Renderer and the queue
  - Update: consumes exactly one queued event per eventMsg, runs the
    returned command, redraws when asked and re-arms waitForEvent
  - View: returns the frame drawn by the last redraw

Window size changes arrive as tea.WindowSizeMsg and are pushed back onto the
queue as Resize events so they are ordered with everything else.

# Key Components

  - model.go: Model, the consumer loop
  - commands.go: dispatch and clipboard side effects
  - render.go: Renderer, layout and styles
  - run.go: terminal setup and program start

# Commands

Side effects never run inside Update. Dispatch hands the request to the
dispatcher goroutine; Copy and Paste talk to the clipboard in their own
goroutine. All of them report back by pushing events.
*/
package tui
