package deduction

import (
	"fmt"
	"strings"

	"github.com/operator-framework/deduce/pkg/board"
)

// Explain returns a one-line, human-readable account of d, starting with the
// name of the strategy that produced it.
func Explain(d Materialized) (string, error) {
	s, err := StrategyOf(d)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(s.String())
	b.WriteString(": ")

	switch d := d.(type) {
	case NakedSingles[[]board.Candidate]:
		fmt.Fprintf(&b, "%s can only hold %d", d.Candidate.Cell, d.Candidate.Digit)
	case HiddenSingles[[]board.Candidate]:
		fmt.Fprintf(&b, "%s is the only place for %d in %s", d.Candidate.Cell, d.Candidate.Digit, d.House)
	case LockedCandidates[[]board.Candidate]:
		line, block := d.MiniLine.Line(), d.MiniLine.Block().House()
		if d.IsPointing {
			fmt.Fprintf(&b, "in %s, %d is confined to %s", block, d.Digit, line)
		} else {
			fmt.Fprintf(&b, "in %s, %d is confined to %s", line, d.Digit, block)
		}
		writeConflicts(&b, d.Conflicts)
	case Subsets[[]board.Candidate]:
		fmt.Fprintf(&b, "digits %s are locked in %s at positions %s", d.Digits, d.House, d.Positions)
		writeConflicts(&b, d.Conflicts)
	case BasicFish[[]board.Candidate]:
		fmt.Fprintf(&b, "%d in %s is restricted to positions %s", d.Digit, d.Lines, d.Positions)
		writeConflicts(&b, d.Conflicts)
	}
	return b.String(), nil
}

func writeConflicts(b *strings.Builder, conflicts []board.Candidate) {
	if len(conflicts) == 0 {
		return
	}
	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = c.String()
	}
	fmt.Fprintf(b, "; eliminates %s", strings.Join(parts, ", "))
}
