package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/vendormatch/internal/currency"
)

var ratesForce bool

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show USD exchange rates used for conversion",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		conv := currency.New(currencyConfig())
		rates := conv.Rates(ctx, ratesForce)

		formatRates(os.Stdout, conv.Supported(ctx), rates)
		return nil
	},
}

func init() {
	ratesCmd.Flags().BoolVar(&ratesForce, "force", false, "bypass the cache and refetch")
	rootCmd.AddCommand(ratesCmd)
}

// formatRates writes one row per currency, units per USD.
func formatRates(out io.Writer, codes []string, rates map[string]float64) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tPER_USD")
	for _, code := range codes {
		_, _ = fmt.Fprintf(w, "%s\t%.4f\n", code, rates[code])
	}
	_ = w.Flush()
}
