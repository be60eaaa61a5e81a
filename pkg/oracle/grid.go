package oracle

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/operator-framework/deduce/pkg/board"
)

var ErrInvalidGrid = errors.New("invalid grid")

// Grid holds the digit of every cell in row-major order. Empty cells hold
// the zero Digit.
type Grid [board.NumCells]board.Digit

// ParseGrid reads 81 cells from s. Digits 1-9 are givens, '0' and '.' are
// empty cells, and whitespace is ignored.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if n == board.NumCells {
			return Grid{}, fmt.Errorf("%w: more than %d cells", ErrInvalidGrid, board.NumCells)
		}
		switch {
		case r == '.' || r == '0':
		case r >= '1' && r <= '9':
			g[n] = board.Digit(r - '0')
		default:
			return Grid{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidGrid, r, n+1)
		}
		n++
	}
	if n != board.NumCells {
		return Grid{}, fmt.Errorf("%w: %d cells, want %d", ErrInvalidGrid, n, board.NumCells)
	}
	return g, nil
}

// Givens returns the filled cells as candidates.
func (g Grid) Givens() []board.Candidate {
	var givens []board.Candidate
	for cell, d := range g {
		if d.Valid() {
			givens = append(givens, board.Candidate{Cell: board.Cell(cell), Digit: d})
		}
	}
	return givens
}

// Holds reports whether c is filled in on the grid.
func (g Grid) Holds(c board.Candidate) bool {
	return g[c.Cell] == c.Digit
}

// String renders the grid as 81 characters with '.' for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	for _, d := range g {
		if d.Valid() {
			b.WriteByte(byte('0' + d))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Format renders the grid as nine lines of space separated digits.
func (g Grid) Format() string {
	var b strings.Builder
	for row := range 9 {
		for col := range 9 {
			if col != 0 {
				b.WriteByte(' ')
			}
			if d := g[board.NewCell(row, col)]; d.Valid() {
				b.WriteByte(byte('0' + d))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
