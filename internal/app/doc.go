/*
Package app holds the application state machine.

State is driven one event at a time by Handle, which returns a Transition
telling the caller whether to redraw and which Command to run. The package
performs no I/O: dispatching requests and clipboard access happen in the
consumer loop, and their outcomes come back as Result and Paste events.

Mode transitions:

	NORMAL  --e-->     EDITING
	EDITING --esc-->   NORMAL   (buffer kept)
	EDITING --enter--> NORMAL   (Dispatch emitted, buffer kept until the result)
	any     --ctrl+c-> quit
	NORMAL  --q-->     quit

At most one exchange is in flight. Enter while one is pending does nothing,
and a Result whose token is not the pending one is ignored.
*/
package app
