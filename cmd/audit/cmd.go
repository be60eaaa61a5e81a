package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/operator-framework/deduce/cmd/explain"
	"github.com/operator-framework/deduce/internal/config"
	"github.com/operator-framework/deduce/pkg/oracle"
)

func NewAuditCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "audit <grid> <ledger>",
		Short: "Checks a ledger file against the solution of a sudoku",
		Long: `Solves the sudoku given as 81 cells and checks every deduction of the
ledger against the solution: proven candidates must be part of it and
eliminated candidates must not. Exits non-zero when any check fails.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[1]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[1])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := oracle.ParseGrid(args[0])
			if err != nil {
				return err
			}
			solution, err := oracle.Unique(cmd.Context(), grid)
			if err != nil {
				return fmt.Errorf("no solution found: %w", err)
			}
			ledger, err := explain.Load(args[1], cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			findings := oracle.Audit(ledger, solution)
			if err := report(cmd.OutOrStdout(), cfg.Output, findings); err != nil {
				return err
			}
			if len(findings) > 0 {
				return fmt.Errorf("%d findings in %d deductions", len(findings), ledger.Len())
			}
			return nil
		},
	}
}

func report(w io.Writer, output string, findings []oracle.Finding) error {
	if output == config.OutputJSON {
		if findings == nil {
			findings = []oracle.Finding{}
		}
		return json.NewEncoder(w).Encode(findings)
	}
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "ledger agrees with the solution")
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	return nil
}
