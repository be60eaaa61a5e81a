package deduction

import (
	"fmt"

	"github.com/operator-framework/deduce/pkg/bitset"
	"github.com/operator-framework/deduce/pkg/board"
	"github.com/operator-framework/deduce/pkg/strategy"
)

// InconsistentDeduction is returned when a record has a shape no strategy
// can produce: a subset or fish of the wrong size, a subset without
// conflicts, or a Reserved record. It always points at a bug in whatever
// produced the record.
type InconsistentDeduction struct {
	Deduction Materialized
	Reason    string
}

func (e InconsistentDeduction) Error() string {
	return fmt.Sprintf("inconsistent deduction %T: %s", e.Deduction, e.Reason)
}

// StrategyOf returns the strategy that produced d.
//
// Several strategies share a record shape and are told apart by the data:
// fish by the number of positions, and subsets additionally by whether the
// first conflict lies on one of the subset's own positions (hidden) or
// outside of them (naked).
func StrategyOf(d Materialized) (strategy.Strategy, error) {
	switch d := d.(type) {
	case NakedSingles[[]board.Candidate]:
		return strategy.NakedSingles, nil
	case HiddenSingles[[]board.Candidate]:
		return strategy.HiddenSingles, nil
	case LockedCandidates[[]board.Candidate]:
		return strategy.LockedCandidates, nil
	case BasicFish[[]board.Candidate]:
		switch d.Positions.Len() {
		case 2:
			return strategy.XWing, nil
		case 3:
			return strategy.Swordfish, nil
		case 4:
			return strategy.Jellyfish, nil
		}
		return 0, InconsistentDeduction{
			Deduction: d,
			Reason:    fmt.Sprintf("fish with %d positions", d.Positions.Len()),
		}
	case Subsets[[]board.Candidate]:
		if len(d.Conflicts) == 0 {
			return 0, InconsistentDeduction{Deduction: d, Reason: "subset without conflicts"}
		}
		conflictPos := d.Conflicts[0].Cell.PosIn(d.House)
		isHidden := bitset.Of(conflictPos).Overlaps(d.Positions)
		switch n := d.Positions.Len(); {
		case !isHidden && n == 2:
			return strategy.NakedPairs, nil
		case !isHidden && n == 3:
			return strategy.NakedTriples, nil
		case !isHidden && n == 4:
			return strategy.NakedQuads, nil
		case isHidden && n == 2:
			return strategy.HiddenPairs, nil
		case isHidden && n == 3:
			return strategy.HiddenTriples, nil
		case isHidden && n == 4:
			return strategy.HiddenQuads, nil
		}
		return 0, InconsistentDeduction{
			Deduction: d,
			Reason:    fmt.Sprintf("subset with %d positions", d.Positions.Len()),
		}
	}
	return 0, InconsistentDeduction{Deduction: d, Reason: "unsupported record"}
}

// MustStrategyOf is like StrategyOf but panics on inconsistent records.
func MustStrategyOf(d Materialized) strategy.Strategy {
	s, err := StrategyOf(d)
	if err != nil {
		panic(err)
	}
	return s
}
