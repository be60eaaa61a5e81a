package deduction

import (
	"fmt"
	"io"
)

// Step is one recorded deduction as seen by a Tracer.
type Step interface {
	Index() int
	Deduction() Materialized
}

type Tracer interface {
	Trace(s Step)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ Step) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(s Step) {
	ded := s.Deduction()
	name := "unclassified"
	if st, err := StrategyOf(ded); err == nil {
		name = st.String()
	}
	fmt.Fprintf(t.Writer, "---\nDeduction %d: %s\n", s.Index(), name)
	conflicts := Conflicts(ded)
	if len(conflicts) == 0 {
		return
	}
	fmt.Fprintf(t.Writer, "Conflicts:\n")
	for _, c := range conflicts {
		fmt.Fprintf(t.Writer, "- %s\n", c)
	}
}

type step struct {
	index     int
	deduction Materialized
}

func (s step) Index() int {
	return s.index
}

func (s step) Deduction() Materialized {
	return s.deduction
}
