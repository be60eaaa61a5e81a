// Package ledgerfile reads and writes a deduction ledger as JSON.
//
// Records are written with their conflicts spelled out, and read back through
// the ledger's append path, so a decoded ledger never holds a range that does
// not fit its buffers.
package ledgerfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/operator-framework/deduce/pkg/bitset"
	"github.com/operator-framework/deduce/pkg/board"
	"github.com/operator-framework/deduce/pkg/deduction"
	"github.com/operator-framework/deduce/pkg/strategy"
)

const (
	KindNakedSingles     = "naked_singles"
	KindHiddenSingles    = "hidden_singles"
	KindLockedCandidates = "locked_candidates"
	KindSubsets          = "subsets"
	KindBasicFish        = "basic_fish"
	KindReserved         = "reserved"
)

type Document struct {
	Deduced    []board.Candidate `json:"deduced,omitempty"`
	Deductions []Entry           `json:"deductions"`
}

// Entry is the file form of one deduction. Only the fields of its Kind are
// set.
type Entry struct {
	Kind string `json:"kind"`
	// Strategy is informational. When reading it must name a strategy but
	// is otherwise ignored.
	Strategy  *strategy.Strategy `json:"strategy,omitempty"`
	Candidate *board.Candidate   `json:"candidate,omitempty"`
	House     *board.House       `json:"house,omitempty"`
	Digit     board.Digit        `json:"digit,omitempty"`
	MiniLine  *board.MiniLine    `json:"miniline,omitempty"`
	Pointing  bool               `json:"pointing,omitempty"`
	Lines     []int              `json:"lines,omitempty"`
	Positions []int              `json:"positions,omitempty"`
	Digits    []int              `json:"digits,omitempty"`
	Conflicts []board.Candidate  `json:"conflicts,omitempty"`
}

// NewEntry converts a materialized deduction to its file form.
func NewEntry(d deduction.Materialized) Entry {
	var e Entry
	if s, err := deduction.StrategyOf(d); err == nil {
		e.Strategy = &s
	}
	switch d := d.(type) {
	case deduction.NakedSingles[[]board.Candidate]:
		e.Kind = KindNakedSingles
		e.Candidate = &d.Candidate
	case deduction.HiddenSingles[[]board.Candidate]:
		e.Kind = KindHiddenSingles
		e.Candidate = &d.Candidate
		h := d.House.House()
		e.House = &h
	case deduction.LockedCandidates[[]board.Candidate]:
		e.Kind = KindLockedCandidates
		e.Digit = d.Digit
		e.MiniLine = &d.MiniLine
		e.Pointing = d.IsPointing
		e.Conflicts = d.Conflicts
	case deduction.Subsets[[]board.Candidate]:
		e.Kind = KindSubsets
		e.House = &d.House
		e.Positions = ints(d.Positions)
		e.Digits = ints(d.Digits)
		e.Conflicts = d.Conflicts
	case deduction.BasicFish[[]board.Candidate]:
		e.Kind = KindBasicFish
		e.Digit = d.Digit
		e.Lines = ints(d.Lines)
		e.Positions = ints(d.Positions)
		e.Conflicts = d.Conflicts
	default:
		e.Kind = KindReserved
	}
	return e
}

// Deduction converts the entry back into a materialized deduction.
func (e Entry) Deduction() (deduction.Materialized, error) {
	switch e.Kind {
	case KindNakedSingles:
		if e.Candidate == nil {
			return nil, fmt.Errorf("%s: missing candidate", e.Kind)
		}
		return deduction.NakedSingles[[]board.Candidate]{Candidate: *e.Candidate}, nil
	case KindHiddenSingles:
		if e.Candidate == nil {
			return nil, fmt.Errorf("%s: missing candidate", e.Kind)
		}
		house, err := e.house()
		if err != nil {
			return nil, err
		}
		return deduction.HiddenSingles[[]board.Candidate]{Candidate: *e.Candidate, House: house.Categorize()}, nil
	case KindLockedCandidates:
		if err := e.digit(); err != nil {
			return nil, err
		}
		if e.MiniLine == nil || *e.MiniLine >= 54 {
			return nil, fmt.Errorf("%s: missing or invalid miniline", e.Kind)
		}
		return deduction.LockedCandidates[[]board.Candidate]{
			Digit:      e.Digit,
			MiniLine:   *e.MiniLine,
			IsPointing: e.Pointing,
			Conflicts:  e.Conflicts,
		}, nil
	case KindSubsets:
		house, err := e.house()
		if err != nil {
			return nil, err
		}
		positions, err := set[board.Position[board.House]](e.Kind, "positions", e.Positions, 0, 9)
		if err != nil {
			return nil, err
		}
		digits, err := set[board.Digit](e.Kind, "digits", e.Digits, int(board.MinDigit), int(board.MaxDigit)+1)
		if err != nil {
			return nil, err
		}
		return deduction.Subsets[[]board.Candidate]{
			House:     house,
			Positions: positions,
			Digits:    digits,
			Conflicts: e.Conflicts,
		}, nil
	case KindBasicFish:
		if err := e.digit(); err != nil {
			return nil, err
		}
		lines, err := set[board.Line](e.Kind, "lines", e.Lines, 0, 18)
		if err != nil {
			return nil, err
		}
		positions, err := set[board.Position[board.Line]](e.Kind, "positions", e.Positions, 0, 9)
		if err != nil {
			return nil, err
		}
		return deduction.BasicFish[[]board.Candidate]{
			Digit:     e.Digit,
			Lines:     lines,
			Positions: positions,
			Conflicts: e.Conflicts,
		}, nil
	case KindReserved:
		return deduction.Reserved[[]board.Candidate]{}, nil
	}
	return nil, fmt.Errorf("unknown deduction kind %q", e.Kind)
}

func (e Entry) house() (board.House, error) {
	if e.House == nil || *e.House >= board.NumHouses {
		return 0, fmt.Errorf("%s: missing or invalid house", e.Kind)
	}
	return *e.House, nil
}

func (e Entry) digit() error {
	if !e.Digit.Valid() {
		return fmt.Errorf("%s: invalid digit %d", e.Kind, e.Digit)
	}
	return nil
}

func ints[T ~uint8](s bitset.Set[T]) []int {
	items := s.Items()
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = int(item)
	}
	return out
}

// set builds a bitset from items, each of which must lie in [lo, hi).
func set[T ~uint8](kind, field string, items []int, lo, hi int) (bitset.Set[T], error) {
	var s bitset.Set[T]
	for _, i := range items {
		if i < lo || i >= hi {
			return s, fmt.Errorf("%s: %s item %d out of range", kind, field, i)
		}
		s = s.Add(T(i))
	}
	return s, nil
}

// Encode writes the ledger to w as one JSON document.
func Encode(w io.Writer, ledger *deduction.Deductions) error {
	doc := Document{
		Deduced:    ledger.DeducedEntries(),
		Deductions: make([]Entry, 0, ledger.Len()),
	}
	it := ledger.Iter()
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		doc.Deductions = append(doc.Deductions, NewEntry(d))
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Decode reads a JSON document from r and replays it into a new ledger built
// with options.
func Decode(r io.Reader, options ...deduction.Option) (*deduction.Deductions, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding ledger: %w", err)
	}

	ledger := deduction.New(options...)
	for i, e := range doc.Deductions {
		d, err := e.Deduction()
		if err != nil {
			return nil, fmt.Errorf("deduction %d: %w", i, err)
		}
		ledger.Record(d)
	}
	ledger.Deduce(doc.Deduced...)
	return ledger, nil
}
