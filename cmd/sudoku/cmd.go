package sudoku

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/operator-framework/deduce/internal/config"
	"github.com/operator-framework/deduce/pkg/oracle"
)

func NewSudokuCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <grid>",
		Short: "Returns the solved sudoku board",
		Long: `Returns the unique solution of a sudoku. The grid is given as 81 cells
in row-major order, with 1-9 for givens and '.' or '0' for empty cells.
Whitespace is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := oracle.ParseGrid(args[0])
			if err != nil {
				return err
			}
			solution, err := oracle.Unique(cmd.Context(), grid)
			if err != nil {
				return fmt.Errorf("no solution found: %w", err)
			}
			return writeSolution(cmd.OutOrStdout(), cfg.Output, solution)
		},
	}
}

func writeSolution(w io.Writer, output string, solution oracle.Grid) error {
	if output == config.OutputJSON {
		return json.NewEncoder(w).Encode(struct {
			Solution string `json:"solution"`
		}{Solution: solution.String()})
	}
	_, err := io.WriteString(w, solution.Format())
	return err
}
