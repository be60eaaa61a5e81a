// Package deduction records the outcomes of applying strategies to a grid:
// which candidates were proven, which were eliminated, and the evidence each
// rule application left behind.
//
// A Deduction is a closed union of record shapes. It is generic over how its
// conflicts (the candidates a record eliminates) are represented: inside a
// Deductions ledger conflicts are a Range into a shared buffer, and readers
// get records whose conflicts are a []board.Candidate view of that buffer.
// The specific strategy that produced a record is not stored; StrategyOf
// derives it from the record's shape.
package deduction

import (
	"fmt"

	"github.com/operator-framework/deduce/pkg/bitset"
	"github.com/operator-framework/deduce/pkg/board"
)

// Range is the half-open interval [Start, End) of a ledger's eliminated
// entries that holds one record's conflicts.
type Range struct {
	Start int
	End   int
}

// Deduction is one successful strategy application. The implementations are
// NakedSingles, HiddenSingles, LockedCandidates, Subsets, BasicFish and
// Reserved; C is the representation of conflicts.
type Deduction[C any] interface {
	conflicts() C
}

// Materialized is a Deduction whose conflicts have been resolved against a
// ledger.
type Materialized = Deduction[[]board.Candidate]

// NakedSingles records a candidate that is the only one left in its cell.
type NakedSingles[C any] struct {
	Candidate board.Candidate
}

// HiddenSingles records a candidate that is the only place left for its
// digit within the house named by House.
type HiddenSingles[C any] struct {
	Candidate board.Candidate
	House     board.HouseType
}

// LockedCandidates records a digit confined to one miniline.
type LockedCandidates[C any] struct {
	Digit board.Digit
	// MiniLine is the only miniline of the block or line that still holds Digit.
	MiniLine board.MiniLine
	// IsPointing is set when the block confines the digit to the miniline, so
	// the rest of the line loses it. Otherwise the line confines the digit and
	// the rest of the block loses it ("claiming").
	IsPointing bool
	Conflicts  C
}

// Subsets records a naked or hidden pair, triple or quad.
type Subsets[C any] struct {
	// House contains every cell of the locked set.
	House board.House
	// Positions of the locked cells within House, 2 to 4 of them.
	Positions bitset.Set[board.Position[board.House]]
	// Digits of the locked set; always as many as Positions.
	Digits    bitset.Set[board.Digit]
	Conflicts C
}

// BasicFish records an X-Wing, Swordfish or Jellyfish.
type BasicFish[C any] struct {
	Digit board.Digit
	// Lines that form the fish, 2 to 4 of them.
	Lines bitset.Set[board.Line]
	// Positions is the union of the positions of Digit in Lines; always as
	// many as Lines.
	Positions bitset.Set[board.Position[board.Line]]
	Conflicts C
}

// Reserved is a placeholder for record shapes that do not exist yet. No
// strategy produces it, and classifying it is an error.
type Reserved[C any] struct{}

func (NakedSingles[C]) conflicts() C {
	var zero C
	return zero
}

func (HiddenSingles[C]) conflicts() C {
	var zero C
	return zero
}

func (d LockedCandidates[C]) conflicts() C { return d.Conflicts }

func (d Subsets[C]) conflicts() C { return d.Conflicts }

func (d BasicFish[C]) conflicts() C { return d.Conflicts }

func (Reserved[C]) conflicts() C {
	var zero C
	return zero
}

// Conflicts returns the conflicts of any record shape. Singles carry none and
// return the zero value of C.
func Conflicts[C any](d Deduction[C]) C {
	return d.conflicts()
}

// withSlices replaces the index range of a stored record with the matching
// slice of eliminated. The slice is capacity-clipped so that appending to it
// never writes into the ledger.
func withSlices(d Deduction[Range], eliminated []board.Candidate) Materialized {
	view := func(r Range) []board.Candidate {
		return eliminated[r.Start:r.End:r.End]
	}
	switch d := d.(type) {
	case NakedSingles[Range]:
		return NakedSingles[[]board.Candidate]{Candidate: d.Candidate}
	case HiddenSingles[Range]:
		return HiddenSingles[[]board.Candidate]{Candidate: d.Candidate, House: d.House}
	case LockedCandidates[Range]:
		return LockedCandidates[[]board.Candidate]{
			Digit:      d.Digit,
			MiniLine:   d.MiniLine,
			IsPointing: d.IsPointing,
			Conflicts:  view(d.Conflicts),
		}
	case Subsets[Range]:
		return Subsets[[]board.Candidate]{
			House:     d.House,
			Positions: d.Positions,
			Digits:    d.Digits,
			Conflicts: view(d.Conflicts),
		}
	case BasicFish[Range]:
		return BasicFish[[]board.Candidate]{
			Digit:     d.Digit,
			Lines:     d.Lines,
			Positions: d.Positions,
			Conflicts: view(d.Conflicts),
		}
	case Reserved[Range]:
		return Reserved[[]board.Candidate]{}
	}
	panic(fmt.Sprintf("deduction: unsupported record %T", d))
}

// withRange is the inverse of withSlices: it keeps every inline field of d
// and replaces its conflicts with r. It panics on nil and on any type outside
// the union, pointers to the variants included.
func withRange(d Materialized, r Range) Deduction[Range] {
	switch d := d.(type) {
	case NakedSingles[[]board.Candidate]:
		return NakedSingles[Range]{Candidate: d.Candidate}
	case HiddenSingles[[]board.Candidate]:
		return HiddenSingles[Range]{Candidate: d.Candidate, House: d.House}
	case LockedCandidates[[]board.Candidate]:
		return LockedCandidates[Range]{
			Digit:      d.Digit,
			MiniLine:   d.MiniLine,
			IsPointing: d.IsPointing,
			Conflicts:  r,
		}
	case Subsets[[]board.Candidate]:
		return Subsets[Range]{
			House:     d.House,
			Positions: d.Positions,
			Digits:    d.Digits,
			Conflicts: r,
		}
	case BasicFish[[]board.Candidate]:
		return BasicFish[Range]{
			Digit:     d.Digit,
			Lines:     d.Lines,
			Positions: d.Positions,
			Conflicts: r,
		}
	case Reserved[[]board.Candidate]:
		return Reserved[Range]{}
	}
	panic(fmt.Sprintf("deduction: unsupported record %T", d))
}
