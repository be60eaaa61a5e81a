package board

import "fmt"

type Row uint8

type Col uint8

type Block uint8

func (r Row) House() House {
	return House(r)
}

func (r Row) Line() Line {
	return Line(r)
}

func (c Col) House() House {
	return House(9 + c)
}

func (c Col) Line() Line {
	return Line(9 + c)
}

func (b Block) House() House {
	return House(18 + b)
}

// HouseKind tells rows, columns and blocks apart.
type HouseKind uint8

const (
	RowKind HouseKind = iota
	ColKind
	BlockKind
)

func (k HouseKind) String() string {
	switch k {
	case RowKind:
		return "row"
	case ColKind:
		return "column"
	case BlockKind:
		return "block"
	}
	return fmt.Sprintf("HouseKind(%d)", uint8(k))
}

// NumHouses is the number of houses on the grid: 9 rows, 9 columns and
// 9 blocks.
const NumHouses = 27

// House is a row, column or block.
type House uint8

// HouseType is a house split into its kind and its index within that kind.
type HouseType struct {
	Kind  HouseKind
	Index uint8
}

func (h House) Categorize() HouseType {
	return HouseType{Kind: HouseKind(h / 9), Index: uint8(h % 9)}
}

// CellAt returns the cell found at pos within the house.
func (h House) CellAt(pos Position[House]) Cell {
	t := h.Categorize()
	i, p := int(t.Index), int(pos)
	switch t.Kind {
	case RowKind:
		return NewCell(i, p)
	case ColKind:
		return NewCell(p, i)
	default:
		return NewCell(i/3*3+p/3, i%3*3+p%3)
	}
}

// Cells returns the cells of the house ordered by position.
func (h House) Cells() [9]Cell {
	var cells [9]Cell
	for pos := range 9 {
		cells[pos] = h.CellAt(Position[House](pos))
	}
	return cells
}

func (h House) String() string {
	return h.Categorize().String()
}

func (t HouseType) House() House {
	return House(uint8(t.Kind)*9 + t.Index)
}

func (t HouseType) String() string {
	return fmt.Sprintf("%s %d", t.Kind, t.Index+1)
}

// Line is a row (0..8) or a column (9..17).
type Line uint8

func (l Line) House() House {
	return House(l)
}

func (l Line) Categorize() HouseType {
	return l.House().Categorize()
}

func (l Line) String() string {
	return l.House().String()
}

// MiniLine is the intersection of a block with a row or column. Row
// minilines are numbered 0..26 as row*3+stack, column minilines 27..53 as
// 27+col*3+band.
type MiniLine uint8

// MiniLineOf returns the miniline where line crosses block. The two must
// intersect.
func MiniLineOf(line Line, block Block) MiniLine {
	t := line.Categorize()
	if t.Kind == RowKind {
		return MiniLine(t.Index*3 + uint8(block)%3)
	}
	return MiniLine(27 + t.Index*3 + uint8(block)/3)
}

func (m MiniLine) Line() Line {
	if m < 27 {
		return Line(m / 3)
	}
	return Line(9 + (m-27)/3)
}

func (m MiniLine) Block() Block {
	if m < 27 {
		row, stack := m/3, m%3
		return Block(row/3*3 + stack)
	}
	col, band := (m-27)/3, (m-27)%3
	return Block(band*3 + col/3)
}

func (m MiniLine) String() string {
	return fmt.Sprintf("%s / %s", m.Line(), m.Block().House())
}

// Position is the index of a cell within a house of kind H. H is only a
// marker: Position[House] counts within a row, column or block, and
// Position[Line] within a row or column.
type Position[H any] uint8

func (p Position[H]) String() string {
	return fmt.Sprintf("p%d", uint8(p)+1)
}
