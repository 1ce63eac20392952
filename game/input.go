package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// WatchQuit polls screen events and calls cancel on q, Esc or Ctrl-C. It
// returns once a quit key is seen, an interrupt event is posted, or the
// screen is finalized. Resize events resync the display.
func WatchQuit(screen tcell.Screen, cancel context.CancelFunc) error {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuitKey(ev) {
				cancel()
				return nil
			}
		}
	}
}

// StopWatching wakes a WatchQuit blocked in PollEvent so it can return
func StopWatching(screen tcell.Screen) {
	_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
