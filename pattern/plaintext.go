// Package pattern loads initial live-cell coordinates from pattern files.
package pattern

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/nbockisch/lifers/model"
)

const (
	extPlaintext = ".cells"

	symbolAlive   = 'O'
	symbolDead    = '.'
	symbolBlank   = ' '
	symbolComment = '!'
)

var (
	ErrUnknownExtension = errors.New("unknown file extension")
	ErrPatternTooLarge  = errors.New("pattern file exceeds the dimensions of the board")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyBoard       = errors.New("board has no cells")
)

// File is a pattern file path that seeds a grid of any size
type File string

// Seed loads the pattern for a height x width board
func (f File) Seed(height, width int) (model.FlipSet, error) {
	return Load(string(f), height, width)
}

// Load opens the pattern at path and returns the coordinates of its live cells.
// The format is chosen by file extension.
func Load(path string, height, width int) (model.FlipSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open pattern: %+v", path)
	}
	defer file.Close()

	switch ext := filepath.Ext(path); ext {
	case extPlaintext:
		return ParsePlaintext(file, height, width)
	default:
		return nil, errors.Wrapf(ErrUnknownExtension, "[Load] %q", ext)
	}
}

// ParsePlaintext parses a plaintext (.cells) pattern anchored at the top-left
// corner of a height x width board. Empty lines are skipped and lines whose
// first non-space character is '!' are comments.
func ParsePlaintext(r io.Reader, height, width int) (model.FlipSet, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.WithStack(ErrEmptyBoard)
	}

	var (
		flips   model.FlipSet
		row     int
		lineNo  int
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line, " "), string(symbolComment)) {
			continue
		}

		if row >= height || utf8.RuneCountInString(line) > width {
			return nil, errors.Wrapf(ErrPatternTooLarge, "[ParsePlaintext] %dx%d", width, height)
		}

		col := 0
		for _, symbol := range line {
			switch symbol {
			case symbolAlive:
				flips = append(flips, model.Coord{Row: row, Col: col})
			case symbolDead, symbolBlank:
			default:
				return nil, errors.Wrapf(ErrInvalidCharacter, "[ParsePlaintext] %q at line %d", symbol, lineNo)
			}
			col++
		}

		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePlaintext] failed to read pattern")
	}

	return flips, nil
}
