package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/operator-framework/deduce/cmd/root"
	"github.com/operator-framework/deduce/internal/config"
)

const (
	puzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

	soundLedger = `{
  "deduced": ["r1c3#4"],
  "deductions": [
    {"kind": "naked_singles", "candidate": "r1c3#4"},
    {"kind": "basic_fish", "digit": 3, "lines": [1, 4], "positions": [2, 6], "conflicts": ["r1c7#3"]}
  ]
}`

	unsoundLedger = `{
  "deductions": [
    {"kind": "subsets", "house": 0, "positions": [2, 3], "digits": [4, 6], "conflicts": ["r1c9#2"]},
    {"kind": "reserved"}
  ]
}`
)

var _ = Describe("deduce", func() {
	var (
		cfg    config.Config
		stdout bytes.Buffer
		stderr bytes.Buffer
		dir    string
	)

	run := func(args ...string) error {
		cmd := root.NewRootCmd(&cfg)
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	writeLedger := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		cfg = config.Config{Output: config.OutputText}
		stdout.Reset()
		stderr.Reset()
		dir = GinkgoT().TempDir()
	})

	Describe("explain", func() {
		It("explains every deduction", func() {
			Expect(run("explain", writeLedger("ledger.json", soundLedger))).To(Succeed())
			Expect(stdout.String()).To(Equal(
				"1. naked singles: r1c3 can only hold 4\n" +
					"2. x-wing: 3 in {row 2, row 5} is restricted to positions {p3, p7}; eliminates r1c7#3\n"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("traces the replay when asked to", func() {
			Expect(run("explain", "--trace", writeLedger("ledger.json", soundLedger))).To(Succeed())
			Expect(stderr.String()).To(ContainSubstring("Deduction 1: x-wing"))
		})

		It("writes json", func() {
			Expect(run("explain", "-o", "json", writeLedger("ledger.json", soundLedger))).To(Succeed())
			Expect(stdout.String()).To(MatchJSON(`[
				{"index": 0, "strategy": "naked singles", "explanation": "naked singles: r1c3 can only hold 4"},
				{"index": 1, "strategy": "x-wing", "explanation": "x-wing: 3 in {row 2, row 5} is restricted to positions {p3, p7}; eliminates r1c7#3"}
			]`))
		})

		It("fails on inconsistent deductions", func() {
			err := run("explain", writeLedger("ledger.json", unsoundLedger))
			Expect(err).To(MatchError("1 of 2 deductions are inconsistent"))
			Expect(stdout.String()).To(ContainSubstring("2. error: inconsistent deduction"))
		})

		It("writes json errors without a strategy", func() {
			err := run("explain", "-o", "json", writeLedger("ledger.json", unsoundLedger))
			Expect(err).To(MatchError("1 of 2 deductions are inconsistent"))
			Expect(stdout.String()).To(ContainSubstring(`{"index":0,"strategy":"naked pairs",`))
			Expect(stdout.String()).To(ContainSubstring(`{"index":1,"error":"inconsistent deduction`))
		})

		It("fails on a missing file", func() {
			Expect(run("explain", filepath.Join(dir, "missing.json"))).To(MatchError(ContainSubstring("not found")))
		})

		It("rejects an unknown output format", func() {
			Expect(run("explain", "-o", "yaml", writeLedger("ledger.json", soundLedger))).To(MatchError(ContainSubstring("invalid output format")))
		})
	})

	Describe("sudoku", func() {
		It("prints the solution", func() {
			Expect(run("sudoku", puzzle)).To(Succeed())
			Expect(stdout.String()).To(HavePrefix("5 3 4 6 7 8 9 1 2\n"))
		})

		It("fails on an ambiguous grid", func() {
			err := run("sudoku", strings.Repeat(".", 81))
			Expect(err).To(MatchError(ContainSubstring("more than one solution")))
		})
	})

	Describe("audit", func() {
		It("accepts a sound ledger", func() {
			Expect(run("audit", puzzle, writeLedger("ledger.json", soundLedger))).To(Succeed())
			Expect(stdout.String()).To(Equal("ledger agrees with the solution\n"))
		})

		It("reports an unsound ledger", func() {
			err := run("audit", puzzle, writeLedger("ledger.json", unsoundLedger))
			Expect(err).To(MatchError("2 findings in 2 deductions"))
			Expect(stdout.String()).To(ContainSubstring("deduction 0: r1c9#2 is eliminated but part of the solution"))
		})

		It("writes json findings", func() {
			err := run("audit", "-o", "json", puzzle, writeLedger("ledger.json", unsoundLedger))
			Expect(err).To(MatchError("2 findings in 2 deductions"))
			Expect(stdout.String()).To(ContainSubstring(`{"index":0,"candidate":"r1c9#2","reason":"is eliminated but part of the solution"}`))
			Expect(stdout.String()).To(ContainSubstring(`{"index":1,"reason":"inconsistent deduction`))
		})
	})
})
