package deduction_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/deduce/pkg/board"
	"github.com/operator-framework/deduce/pkg/deduction"
	"github.com/operator-framework/deduce/pkg/strategy"
)

var _ = Describe("Deductions", func() {
	var (
		ledger  *deduction.Deductions
		single  deduction.Materialized
		xwing   deduction.Materialized
		pointed deduction.Materialized
	)

	BeforeEach(func() {
		ledger = deduction.New()
		single = deduction.NakedSingles[candidates]{Candidate: board.NewCandidate(0, 0, 5)}
		xwing = deduction.BasicFish[candidates]{
			Digit:     3,
			Lines:     rows(1, 4),
			Positions: linePositions(2, 6),
			Conflicts: candidates{board.NewCandidate(0, 2, 3), board.NewCandidate(8, 6, 3)},
		}
		pointed = deduction.LockedCandidates[candidates]{
			Digit:      9,
			MiniLine:   board.MiniLineOf(board.Row(3).Line(), 4),
			IsPointing: true,
			Conflicts:  candidates{board.NewCandidate(3, 0, 9), board.NewCandidate(3, 8, 9), board.NewCandidate(3, 7, 9)},
		}
	})

	It("starts empty", func() {
		Expect(ledger.Len()).To(Equal(0))
		_, ok := ledger.Get(0)
		Expect(ok).To(BeFalse())
		Expect(ledger.Iter().Collect()).To(BeEmpty())
		Expect(ledger.DeducedEntries()).To(BeEmpty())
	})

	It("classifies a recorded naked single", func() {
		Expect(ledger.Record(single)).To(Equal(0))
		got, ok := ledger.Get(0)
		Expect(ok).To(BeTrue())
		Expect(deduction.StrategyOf(got)).To(Equal(strategy.NakedSingles))
	})

	It("classifies a recorded x-wing", func() {
		ledger.Record(single)
		n := ledger.Record(xwing)
		got, ok := ledger.Get(n)
		Expect(ok).To(BeTrue())
		Expect(deduction.StrategyOf(got)).To(Equal(strategy.XWing))
	})

	It("returns the conflicts of each record in the order they were recorded", func() {
		ledger.Record(xwing)
		ledger.Record(single)
		ledger.Record(pointed)

		Expect(ledger.Len()).To(Equal(3))
		for i, want := range []deduction.Materialized{xwing, single, pointed} {
			got, ok := ledger.Get(i)
			Expect(ok).To(BeTrue())
			Expect(deduction.Conflicts(got)).To(Equal(deduction.Conflicts(want)))
		}
		Expect(ledger.EliminatedEntries()).To(HaveLen(5))
	})

	It("materializes records equal to what was recorded", func() {
		ledger.Record(pointed)
		got, _ := ledger.Get(0)
		Expect(got).To(Equal(pointed))
	})

	It("returns nothing past the end", func() {
		ledger.Record(single)
		ledger.Record(xwing)
		for _, i := range []int{ledger.Len(), ledger.Len() + 1, 1000, -1} {
			_, ok := ledger.Get(i)
			Expect(ok).To(BeFalse(), "index %d", i)
		}
	})

	It("iterates in recording order and can be restarted", func() {
		ledger.Record(single)
		ledger.Record(xwing)
		ledger.Record(pointed)

		first := ledger.Iter().Collect()
		second := ledger.Iter().Collect()
		Expect(first).To(Equal([]deduction.Materialized{single, xwing, pointed}))
		Expect(second).To(Equal(first))
	})

	It("materializes the same record identically through Get and Iter", func() {
		ledger.Record(xwing)
		a, _ := ledger.Get(0)
		b, _ := ledger.Get(0)
		it := ledger.Iter()
		c, ok := it.Next()
		Expect(ok).To(BeTrue())
		Expect(a).To(Equal(b))
		Expect(c).To(Equal(a))
		_, ok = it.Next()
		Expect(ok).To(BeFalse())
	})

	It("keeps issued views valid across later records", func() {
		ledger.Record(xwing)
		before, _ := ledger.Get(0)
		for range 100 {
			ledger.Record(pointed)
		}
		after, _ := ledger.Get(0)
		Expect(deduction.Conflicts(before)).To(Equal(deduction.Conflicts(after)))
	})

	It("does not let appends to a view write into the ledger", func() {
		ledger.Record(xwing)
		ledger.Record(pointed)
		got, _ := ledger.Get(0)
		conflicts := deduction.Conflicts(got)
		_ = append(conflicts, board.NewCandidate(5, 5, 5))

		next, _ := ledger.Get(1)
		Expect(next).To(Equal(pointed))
	})

	It("copies conflicts on record", func() {
		conflicts := candidates{board.NewCandidate(0, 2, 3)}
		ledger.Record(deduction.LockedCandidates[candidates]{Digit: 3, Conflicts: conflicts})
		conflicts[0] = board.NewCandidate(8, 8, 8)

		got, _ := ledger.Get(0)
		Expect(deduction.Conflicts(got)).To(Equal(candidates{board.NewCandidate(0, 2, 3)}))
	})

	It("logs deduced entries separately", func() {
		ledger.Record(single)
		ledger.Deduce(board.NewCandidate(0, 0, 5), board.NewCandidate(0, 1, 6))
		Expect(ledger.DeducedEntries()).To(Equal(candidates{board.NewCandidate(0, 0, 5), board.NewCandidate(0, 1, 6)}))
		Expect(ledger.EliminatedEntries()).To(BeEmpty())
	})

	It("stores a reserved record without classifying it", func() {
		ledger.Record(deduction.Reserved[candidates]{})
		got, ok := ledger.Get(0)
		Expect(ok).To(BeTrue())
		_, err := deduction.StrategyOf(got)
		Expect(err).To(BeAssignableToTypeOf(deduction.InconsistentDeduction{}))
	})

	Describe("subsets", func() {
		subset := func(conflicts ...board.Candidate) deduction.Materialized {
			return deduction.Subsets[candidates]{
				House:     board.Row(2).House(),
				Positions: housePositions(0, 1),
				Digits:    digits(1, 2),
				Conflicts: conflicts,
			}
		}

		It("classifies a recorded subset as hidden when its conflicts lie inside the positions", func() {
			ledger.Record(single)
			recorded := subset(board.NewCandidate(2, 0, 7), board.NewCandidate(2, 1, 8))
			n := ledger.Record(recorded)

			got, ok := ledger.Get(n)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(recorded))
			Expect(deduction.StrategyOf(got)).To(Equal(strategy.HiddenPairs))
		})

		It("classifies a recorded subset as naked when its conflicts lie outside the positions", func() {
			ledger.Record(single)
			recorded := subset(board.NewCandidate(2, 5, 1), board.NewCandidate(2, 8, 2))
			n := ledger.Record(recorded)

			got, ok := ledger.Get(n)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(recorded))
			Expect(deduction.StrategyOf(got)).To(Equal(strategy.NakedPairs))
		})

		It("keeps the classification through iteration", func() {
			ledger.Record(subset(board.NewCandidate(2, 0, 7)))
			ledger.Record(subset(board.NewCandidate(2, 5, 1)))

			var got []strategy.Strategy
			for _, ded := range ledger.Iter().Collect() {
				got = append(got, deduction.MustStrategyOf(ded))
			}
			Expect(got).To(Equal([]strategy.Strategy{strategy.HiddenPairs, strategy.NakedPairs}))
		})
	})

	Describe("Record", func() {
		It("panics on a nil deduction", func() {
			Expect(func() { ledger.Record(nil) }).To(PanicWith("deduction: cannot record a nil deduction"))
			Expect(ledger.Len()).To(Equal(0))
		})

		It("panics on a pointer to a record instead of storing it as reserved", func() {
			fish := xwing.(deduction.BasicFish[candidates])
			Expect(func() { ledger.Record(&fish) }).To(PanicWith(ContainSubstring("unsupported record *deduction.BasicFish")))
			Expect(ledger.Len()).To(Equal(0))
			Expect(ledger.EliminatedEntries()).To(BeEmpty())
		})
	})

	Describe("Clone", func() {
		It("shares no storage with the original", func() {
			ledger.Record(xwing)
			ledger.Deduce(board.NewCandidate(1, 1, 1))
			clone := ledger.Clone()
			clone.Record(pointed)
			clone.Deduce(board.NewCandidate(2, 2, 2))

			Expect(ledger.Len()).To(Equal(1))
			Expect(ledger.DeducedEntries()).To(HaveLen(1))
			Expect(clone.Len()).To(Equal(2))
			Expect(clone.Iter().Collect()[0]).To(Equal(xwing))
		})
	})

	Describe("LoggingTracer", func() {
		It("writes one block per recorded deduction", func() {
			var buf bytes.Buffer
			ledger = deduction.New(deduction.WithTracer(deduction.LoggingTracer{Writer: &buf}))
			ledger.Record(single)
			ledger.Record(xwing)
			ledger.Record(deduction.Reserved[candidates]{})

			Expect(buf.String()).To(Equal(
				"---\nDeduction 0: naked singles\n" +
					"---\nDeduction 1: x-wing\nConflicts:\n- r1c3#3\n- r9c7#3\n" +
					"---\nDeduction 2: unclassified\n"))
		})
	})
})
