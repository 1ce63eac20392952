package model

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// ansiClear moves the cursor home and clears the terminal
	ansiClear = "\033[H\033[2J"

	cellGlyphAlive = '#'
	cellGlyphDead  = ' '
)

// Renderer draws single cells and presents them once per tick
type Renderer interface {
	DrawCell(row, col int, alive bool)
	Show()
}

// ScreenRenderer draws one glyph per cell on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer hides the cursor and clears the screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	screen.HideCursor()
	screen.Clear()
	return &ScreenRenderer{screen: screen, style: tcell.StyleDefault}
}

// DrawCell puts the glyph for the cell at its screen position
func (r *ScreenRenderer) DrawCell(row, col int, alive bool) {
	glyph := cellGlyphDead
	if alive {
		glyph = cellGlyphAlive
	}
	r.screen.SetContent(col, row, glyph, nil, r.style)
}

// Show flushes the pending cells to the terminal
func (r *ScreenRenderer) Show() {
	r.screen.Show()
}

// TerminalRenderer implements basic terminal rendering by reprinting the whole frame
type TerminalRenderer struct {
	out   *bufio.Writer
	frame [][]bool
}

// NewTerminalRenderer creates a renderer for a height x width board
func NewTerminalRenderer(w io.Writer, height, width int) *TerminalRenderer {
	frame := make([][]bool, height)
	for i := range frame {
		frame[i] = make([]bool, width)
	}
	return &TerminalRenderer{out: bufio.NewWriter(w), frame: frame}
}

// DrawCell records the cell in the frame; out-of-frame cells are ignored
func (r *TerminalRenderer) DrawCell(row, col int, alive bool) {
	if row < 0 || row >= len(r.frame) || col < 0 || col >= len(r.frame[row]) {
		return
	}
	r.frame[row][col] = alive
}

// Show clears the terminal and prints the frame
func (r *TerminalRenderer) Show() {
	r.out.WriteString(ansiClear)
	for _, row := range r.frame {
		for _, alive := range row {
			if alive {
				r.out.WriteString(gridPosBlock)
			} else {
				r.out.WriteString(gridPosEmpty)
			}
		}
		r.out.WriteByte('\n')
	}
	r.out.Flush()
}
