// Command desktop runs the text-mode cooperative desktop against the
// controlling terminal: a time.Ticker stands in for the host's periodic
// timer callback, and keyboard.StartInput stands in for the host's
// keyboard callback, both feeding a single select loop that calls into
// desktop.Desktop non-reentrantly, per the concurrency model in §5.
package main

import (
	"time"

	"deskos/desktop"
	"deskos/fb"
	"deskos/keyboard"
)

const tickInterval = 33 * time.Millisecond

func main() {
	screen := fb.NewScreen()
	defer screen.Close()

	done := make(chan struct{})
	keys := keyboard.StartInput(screen.Tcell(), done)

	d := desktop.New(screen)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				close(done)
				return
			}
			if isQuit(ev) {
				close(done)
				return
			}
			d.Key(ev)
			d.Draw()
			screen.Render()

		case <-ticker.C:
			d.Tick()
			d.Draw()
			screen.Render()
		}
	}
}

// isQuit recognizes Ctrl-C (ETX, 0x03) as the process-level exit gesture;
// the desktop's own state machine has no notion of quitting.
func isQuit(ev keyboard.Event) bool {
	return !ev.IsRaw() && ev.Rune() == 0x03
}
