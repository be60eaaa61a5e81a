package explain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/operator-framework/deduce/internal/config"
	"github.com/operator-framework/deduce/internal/ledgerfile"
	"github.com/operator-framework/deduce/pkg/deduction"
	"github.com/operator-framework/deduce/pkg/strategy"
)

func NewExplainCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <ledger>",
		Short: "Explains every deduction of a ledger file",
		Long: `Reads a ledger of deductions in JSON format and prints, for each
deduction, the strategy that produced it and what it proves.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := Load(args[0], cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return explain(cmd.OutOrStdout(), cfg.Output, ledger)
		},
	}
}

// Load reads the ledger file at path, tracing the replay to traceWriter when
// cfg asks for it.
func Load(path string, cfg *config.Config, traceWriter io.Writer) (*deduction.Deductions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file (%s): %w", path, err)
	}
	defer f.Close()

	var options []deduction.Option
	if cfg.Trace {
		options = append(options, deduction.WithTracer(deduction.LoggingTracer{Writer: traceWriter}))
	}
	ledger, err := ledgerfile.Decode(f, options...)
	if err != nil {
		return nil, fmt.Errorf("error parsing ledger file (%s): %w", path, err)
	}
	return ledger, nil
}

type explanation struct {
	Index       int                `json:"index"`
	Strategy    *strategy.Strategy `json:"strategy,omitempty"`
	Explanation string             `json:"explanation,omitempty"`
	Error       string             `json:"error,omitempty"`
}

func explain(w io.Writer, output string, ledger *deduction.Deductions) error {
	explanations := make([]explanation, 0, ledger.Len())
	inconsistent := 0
	it := ledger.Iter()
	for i := 0; ; i++ {
		d, ok := it.Next()
		if !ok {
			break
		}
		e := explanation{Index: i}
		text, err := deduction.Explain(d)
		if err != nil {
			inconsistent++
			e.Error = err.Error()
		} else {
			s := deduction.MustStrategyOf(d)
			e.Strategy = &s
			e.Explanation = text
		}
		explanations = append(explanations, e)
	}

	if output == config.OutputJSON {
		if err := json.NewEncoder(w).Encode(explanations); err != nil {
			return err
		}
	} else {
		for _, e := range explanations {
			if e.Error != "" {
				fmt.Fprintf(w, "%d. error: %s\n", e.Index+1, e.Error)
				continue
			}
			fmt.Fprintf(w, "%d. %s\n", e.Index+1, e.Explanation)
		}
	}

	if inconsistent > 0 {
		return fmt.Errorf("%d of %d deductions are inconsistent", inconsistent, ledger.Len())
	}
	return nil
}
