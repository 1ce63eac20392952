package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func watch(t *testing.T, screen tcell.Screen, cancel context.CancelFunc) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- WatchQuit(screen, cancel) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchQuit: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WatchQuit did not return")
	}
}

func TestWatchQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)
			watch(t, screen, cancel)

			if ctx.Err() == nil {
				t.Fatal("quit key did not cancel the context")
			}
		})
	}
}

func TestStopWatchingReturnsWithoutCancel(t *testing.T) {
	screen := newTestScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StopWatching(screen)
	watch(t, screen, cancel)

	if ctx.Err() != nil {
		t.Fatal("interrupt cancelled the context")
	}
}
