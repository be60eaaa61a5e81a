package root

import (
	"github.com/spf13/cobra"

	"github.com/operator-framework/deduce/cmd/audit"
	"github.com/operator-framework/deduce/cmd/explain"
	"github.com/operator-framework/deduce/cmd/sudoku"
	"github.com/operator-framework/deduce/internal/config"
)

func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deduce",
		Short: "Deduce explains the steps taken to solve a sudoku",
		Long: `Deduce reads ledgers of sudoku deductions, names the strategy behind
each step and checks them against the solution of the puzzle.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "trace every replayed deduction to stderr (DEDUCE_TRACE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format, text or json (DEDUCE_OUTPUT)")

	// add sub-commands
	rootCmd.AddCommand(explain.NewExplainCommand(cfg))
	rootCmd.AddCommand(sudoku.NewSudokuCommand(cfg))
	rootCmd.AddCommand(audit.NewAuditCommand(cfg))

	return rootCmd
}
