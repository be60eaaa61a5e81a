package deduction

import (
	"slices"

	"github.com/operator-framework/deduce/pkg/board"
)

// Deductions is the append-only ledger of one solve run. It owns three
// buffers: the records, every candidate proven true, and every candidate
// eliminated. Records keep their conflicts as a Range into the eliminated
// buffer so that a run does not allocate one small list per record.
//
// Records are never removed or rewritten, so a Range stays valid for the
// lifetime of the ledger. Materialized records returned by Get and Iter
// share the ledger's storage and must be treated as read-only. A Deductions
// is not safe for concurrent use; give each concurrent search branch its own
// ledger.
type Deductions struct {
	deductions        []Deduction[Range]
	deducedEntries    []board.Candidate
	eliminatedEntries []board.Candidate
	tracer            Tracer
}

type Option func(d *Deductions)

// WithTracer sets a Tracer that is called for every recorded deduction.
func WithTracer(t Tracer) Option {
	return func(d *Deductions) {
		d.tracer = t
	}
}

func New(options ...Option) *Deductions {
	d := &Deductions{tracer: DefaultTracer{}}
	for _, option := range options {
		option(d)
	}
	return d
}

// Len returns the number of recorded deductions.
func (d *Deductions) Len() int {
	return len(d.deductions)
}

// Get returns the index-th deduction with its conflicts resolved, or false if
// there is no such deduction.
func (d *Deductions) Get(index int) (Materialized, bool) {
	if index < 0 || index >= len(d.deductions) {
		return nil, false
	}
	return withSlices(d.deductions[index], d.eliminatedEntries), true
}

// Iter returns an iterator over the deductions in the order they were
// recorded. Each call starts from the first deduction.
func (d *Deductions) Iter() *Iter {
	return &Iter{
		deductions:        d.deductions,
		eliminatedEntries: d.eliminatedEntries,
	}
}

// Record appends ded to the ledger and returns its index. The conflicts of
// ded are copied into the eliminated buffer as one contiguous run. Record
// panics if ded is nil or not one of the record values of the union; the
// ledger is left unchanged in that case.
func (d *Deductions) Record(ded Materialized) int {
	if ded == nil {
		panic("deduction: cannot record a nil deduction")
	}
	conflicts := Conflicts(ded)
	r := Range{Start: len(d.eliminatedEntries), End: len(d.eliminatedEntries) + len(conflicts)}
	stored := withRange(ded, r)
	d.eliminatedEntries = append(d.eliminatedEntries, conflicts...)

	index := len(d.deductions)
	d.deductions = append(d.deductions, stored)
	d.tracer.Trace(step{index: index, deduction: withSlices(d.deductions[index], d.eliminatedEntries)})
	return index
}

// Deduce appends candidates proven true to the deduced log.
func (d *Deductions) Deduce(candidates ...board.Candidate) {
	d.deducedEntries = append(d.deducedEntries, candidates...)
}

// DeducedEntries returns every candidate proven true, in discovery order.
func (d *Deductions) DeducedEntries() []board.Candidate {
	return d.deducedEntries[:len(d.deducedEntries):len(d.deducedEntries)]
}

// EliminatedEntries returns every candidate eliminated by a recorded
// deduction, in recording order.
func (d *Deductions) EliminatedEntries() []board.Candidate {
	return d.eliminatedEntries[:len(d.eliminatedEntries):len(d.eliminatedEntries)]
}

// Clone returns a deep copy of the ledger sharing no storage with d.
func (d *Deductions) Clone() *Deductions {
	return &Deductions{
		deductions:        slices.Clone(d.deductions),
		deducedEntries:    slices.Clone(d.deducedEntries),
		eliminatedEntries: slices.Clone(d.eliminatedEntries),
		tracer:            d.tracer,
	}
}

// Iter walks the deductions of a ledger. It sees the ledger as it was when
// Iter was called.
type Iter struct {
	deductions        []Deduction[Range]
	eliminatedEntries []board.Candidate
	next              int
}

// Next returns the next deduction, or false when there are none left.
func (it *Iter) Next() (Materialized, bool) {
	if it.next >= len(it.deductions) {
		return nil, false
	}
	ded := withSlices(it.deductions[it.next], it.eliminatedEntries)
	it.next++
	return ded, true
}

// Collect drains the iterator into a slice.
func (it *Iter) Collect() []Materialized {
	out := make([]Materialized, 0, len(it.deductions)-it.next)
	for ded, ok := it.Next(); ok; ded, ok = it.Next() {
		out = append(out, ded)
	}
	return out
}
