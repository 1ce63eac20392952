package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestScreenRendererDrawsGlyphs(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	r := NewScreenRenderer(screen)
	r.DrawCell(1, 3, true)
	r.DrawCell(2, 4, true)
	r.DrawCell(2, 4, false)
	r.Show()

	cells, width, _ := screen.GetContents()
	at := func(row, col int) rune {
		runes := cells[row*width+col].Runes
		if len(runes) == 0 {
			return ' '
		}
		return runes[0]
	}
	if got := at(1, 3); got != '#' {
		t.Fatalf("live cell glyph = %q, want '#'", got)
	}
	if got := at(2, 4); got != ' ' {
		t.Fatalf("dead cell glyph = %q, want ' '", got)
	}
}

func TestTerminalRendererPrintsFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 2, 3)
	r.DrawCell(0, 1, true)
	r.DrawCell(5, 5, true)
	r.Show()

	out := strings.TrimPrefix(buf.String(), ansiClear)
	want := gridPosEmpty + gridPosBlock + gridPosEmpty + "\n" +
		gridPosEmpty + gridPosEmpty + gridPosEmpty + "\n"
	if out != want {
		t.Fatalf("frame = %q, want %q", out, want)
	}
}
