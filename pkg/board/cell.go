package board

import (
	"errors"
	"fmt"
)

var ErrInvalidCandidate = errors.New("invalid candidate")

// Digit is a value that may occupy a cell, 1 through 9. The zero Digit
// stands for an empty cell.
type Digit uint8

const (
	MinDigit Digit = 1
	MaxDigit Digit = 9
)

func (d Digit) Valid() bool {
	return d >= MinDigit && d <= MaxDigit
}

// NumCells is the number of cells on the grid.
const NumCells = 81

// Cell identifies one of the 81 cells in row-major order.
type Cell uint8

func NewCell(row, col int) Cell {
	return Cell(row*9 + col)
}

func (c Cell) Row() Row {
	return Row(c / 9)
}

func (c Cell) Col() Col {
	return Col(c % 9)
}

func (c Cell) Block() Block {
	return Block(c/27*3 + c%9/3)
}

// RowPos returns the position of the cell within its row.
func (c Cell) RowPos() Position[House] {
	return Position[House](c % 9)
}

// ColPos returns the position of the cell within its column.
func (c Cell) ColPos() Position[House] {
	return Position[House](c / 9)
}

// BlockPos returns the position of the cell within its block, counted
// left to right, top to bottom.
func (c Cell) BlockPos() Position[House] {
	return Position[House](c/9%3*3 + c%3)
}

// PosIn returns the position the cell would have in a house of the same
// kind as h. The cell does not need to belong to h.
func (c Cell) PosIn(h House) Position[House] {
	switch h.Categorize().Kind {
	case RowKind:
		return c.RowPos()
	case ColKind:
		return c.ColPos()
	default:
		return c.BlockPos()
	}
}

// LinePos returns the position the cell would have in a line of the same
// orientation as l.
func (c Cell) LinePos(l Line) Position[Line] {
	return Position[Line](c.PosIn(l.House()))
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row()+1, c.Col()+1)
}

// Candidate pairs a cell with a digit that might legally occupy it.
type Candidate struct {
	Cell  Cell
	Digit Digit
}

func NewCandidate(row, col int, digit Digit) Candidate {
	return Candidate{Cell: NewCell(row, col), Digit: digit}
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s#%d", c.Cell, c.Digit)
}

// ParseCandidate parses the form produced by Candidate.String, e.g. "r1c5#3".
// Rows and columns are 1-based.
func ParseCandidate(s string) (Candidate, error) {
	var row, col, digit int
	if _, err := fmt.Sscanf(s, "r%dc%d#%d", &row, &col, &digit); err != nil {
		return Candidate{}, fmt.Errorf("%w %q: %v", ErrInvalidCandidate, s, err)
	}
	if row < 1 || row > 9 || col < 1 || col > 9 || digit < 1 || digit > 9 {
		return Candidate{}, fmt.Errorf("%w %q: out of range", ErrInvalidCandidate, s)
	}
	c := NewCandidate(row-1, col-1, Digit(digit))
	if c.String() != s {
		return Candidate{}, fmt.Errorf("%w %q: trailing input", ErrInvalidCandidate, s)
	}
	return c, nil
}

func (c Candidate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Candidate) UnmarshalText(text []byte) error {
	parsed, err := ParseCandidate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
