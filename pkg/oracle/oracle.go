// Package oracle solves a grid with a SAT solver. It gives explainers and
// tests a ground truth to check deductions against.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/operator-framework/deduce/pkg/board"
)

var (
	ErrIncomplete        = errors.New("cancelled before a solution could be found")
	ErrMultipleSolutions = errors.New("grid has more than one solution")
)

// NotSatisfiable lists givens that together admit no solution.
type NotSatisfiable []board.Candidate

func (e NotSatisfiable) Error() string {
	const msg = "grid not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(s, ", "))
}

const (
	satisfiable   = 1
	unsatisfiable = -1
)

type solver struct {
	g      inter.S
	givens []z.Lit
}

// litOf maps a candidate to its SAT variable. Variables start at 1.
func litOf(c board.Candidate) z.Lit {
	return z.Var(int(c.Cell)*9 + int(c.Digit)).Pos()
}

func candidateOf(m z.Lit) board.Candidate {
	n := int(m.Var()) - 1
	return board.Candidate{Cell: board.Cell(n / 9), Digit: board.Digit(n%9 + 1)}
}

func newSolver(grid Grid) *solver {
	s := &solver{g: gini.New()}
	s.addRules()
	for _, c := range grid.Givens() {
		s.givens = append(s.givens, litOf(c))
	}
	return s
}

// addRules teaches the solver that every cell holds exactly one digit and
// every house holds every digit exactly once.
func (s *solver) addRules() {
	for cell := board.Cell(0); cell < board.NumCells; cell++ {
		ms := make([]z.Lit, 0, 9)
		for d := board.MinDigit; d <= board.MaxDigit; d++ {
			ms = append(ms, litOf(board.Candidate{Cell: cell, Digit: d}))
		}
		s.exactlyOne(ms)
	}
	for h := board.House(0); h < board.NumHouses; h++ {
		cells := h.Cells()
		for d := board.MinDigit; d <= board.MaxDigit; d++ {
			ms := make([]z.Lit, 0, 9)
			for _, cell := range cells {
				ms = append(ms, litOf(board.Candidate{Cell: cell, Digit: d}))
			}
			s.exactlyOne(ms)
		}
	}
}

func (s *solver) exactlyOne(ms []z.Lit) {
	s.clause(ms...)
	for i := range ms {
		for j := i + 1; j < len(ms); j++ {
			s.clause(ms[i].Not(), ms[j].Not())
		}
	}
}

func (s *solver) clause(ms ...z.Lit) {
	for _, m := range ms {
		s.g.Add(m)
	}
	s.g.Add(z.LitNull)
}

// pollInterval is how often a running solve checks its context.
const pollInterval = 5 * time.Millisecond

// pending is the part of a background gini solve that await drives.
type pending interface {
	Test() (result int, done bool)
	Stop() int
}

// await waits for run to finish and returns its result. If ctx is done
// first, run is stopped and the error wraps ErrIncomplete.
func await(ctx context.Context, run pending) (int, error) {
	result, done := run.Test()
	if done {
		return result, nil
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			run.Stop()
			return 0, fmt.Errorf("%w: %v", ErrIncomplete, ctx.Err())
		case <-ticker.C:
			if result, done = run.Test(); done {
				return result, nil
			}
		}
	}
}

func (s *solver) solve(ctx context.Context) (Grid, error) {
	if err := ctx.Err(); err != nil {
		return Grid{}, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}
	s.g.Assume(s.givens...)
	result, err := await(ctx, s.g.GoSolve())
	if err != nil {
		return Grid{}, err
	}
	switch result {
	case satisfiable:
		return s.model(), nil
	case unsatisfiable:
		whys := s.g.Why(nil)
		core := make(NotSatisfiable, 0, len(whys))
		for _, m := range whys {
			core = append(core, candidateOf(m))
		}
		return Grid{}, core
	}
	return Grid{}, ErrIncomplete
}

func (s *solver) model() Grid {
	var g Grid
	for cell := board.Cell(0); cell < board.NumCells; cell++ {
		for d := board.MinDigit; d <= board.MaxDigit; d++ {
			if s.g.Value(litOf(board.Candidate{Cell: cell, Digit: d})) {
				g[cell] = d
			}
		}
	}
	return g
}

// Solve returns a solution of grid. If the givens contradict each other the
// error is a NotSatisfiable naming them.
func Solve(ctx context.Context, grid Grid) (Grid, error) {
	return newSolver(grid).solve(ctx)
}

// Unique returns the solution of grid, failing with ErrMultipleSolutions if
// it is not the only one.
func Unique(ctx context.Context, grid Grid) (Grid, error) {
	s := newSolver(grid)
	solution, err := s.solve(ctx)
	if err != nil {
		return Grid{}, err
	}

	// forbid the model found and search again
	block := make([]z.Lit, 0, board.NumCells)
	for _, c := range solution.Givens() {
		block = append(block, litOf(c).Not())
	}
	s.clause(block...)

	_, err = s.solve(ctx)
	var unsat NotSatisfiable
	switch {
	case err == nil:
		return Grid{}, ErrMultipleSolutions
	case errors.As(err, &unsat):
		return solution, nil
	}
	return Grid{}, err
}
