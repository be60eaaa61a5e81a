package oracle

import (
	"fmt"

	"github.com/operator-framework/deduce/pkg/board"
	"github.com/operator-framework/deduce/pkg/deduction"
)

// DeducedLog is the Finding index used for entries of the deduced log, which
// do not belong to a single record.
const DeducedLog = -1

// Finding is one disagreement between a ledger and a solution.
type Finding struct {
	// Index of the deduction, or DeducedLog.
	Index int `json:"index"`
	// Candidate is nil for findings about a whole record.
	Candidate *board.Candidate `json:"candidate,omitempty"`
	Reason    string           `json:"reason"`
}

func (f Finding) String() string {
	where := fmt.Sprintf("deduction %d", f.Index)
	if f.Index == DeducedLog {
		where = "deduced log"
	}
	if f.Candidate == nil {
		return fmt.Sprintf("%s: %s", where, f.Reason)
	}
	return fmt.Sprintf("%s: %s %s", where, *f.Candidate, f.Reason)
}

// Audit checks every entry of ledger against solution: proven candidates must
// be part of it, eliminated ones must not, and every record must classify.
func Audit(ledger *deduction.Deductions, solution Grid) []Finding {
	var findings []Finding
	for _, c := range ledger.DeducedEntries() {
		if !solution.Holds(c) {
			findings = append(findings, Finding{Index: DeducedLog, Candidate: &c, Reason: "is proven but not in the solution"})
		}
	}

	it := ledger.Iter()
	for i := 0; ; i++ {
		ded, ok := it.Next()
		if !ok {
			break
		}
		if _, err := deduction.StrategyOf(ded); err != nil {
			findings = append(findings, Finding{Index: i, Reason: err.Error()})
		}
		switch d := ded.(type) {
		case deduction.NakedSingles[[]board.Candidate]:
			if !solution.Holds(d.Candidate) {
				findings = append(findings, Finding{Index: i, Candidate: &d.Candidate, Reason: "is proven but not in the solution"})
			}
		case deduction.HiddenSingles[[]board.Candidate]:
			if !solution.Holds(d.Candidate) {
				findings = append(findings, Finding{Index: i, Candidate: &d.Candidate, Reason: "is proven but not in the solution"})
			}
		}
		for _, c := range deduction.Conflicts(ded) {
			if solution.Holds(c) {
				findings = append(findings, Finding{Index: i, Candidate: &c, Reason: "is eliminated but part of the solution"})
			}
		}
	}
	return findings
}
