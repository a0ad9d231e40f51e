package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/vendormatch/internal/export"
	"github.com/sells-group/vendormatch/internal/fileio"
	"github.com/sells-group/vendormatch/internal/ingest"
	"github.com/sells-group/vendormatch/internal/model"
	"github.com/sells-group/vendormatch/internal/store"
)

var (
	matchVendorPath string
	matchClientPaths []string
	matchOutXLSX    string
	matchOutHTML    string
	matchOutJSON    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a vendor contract file against client files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		var runID string
		if st != nil {
			defer st.Close()
			run, err := st.CreateRun(ctx, matchVendorPath, matchClientPaths)
			if err != nil {
				return err
			}
			runID = run.ID
		}

		vendors, clientTables, err := loadInputs(ctx, matchVendorPath, matchClientPaths)
		if err != nil {
			if st != nil {
				if ferr := st.FailRun(ctx, runID, err); ferr != nil {
					zap.L().Error("mark run failed", zap.Error(ferr))
				}
			}
			return err
		}

		result := newPipeline().Run(vendors, clientTables...)

		if st != nil {
			if err := st.CompleteRun(ctx, runID, result); err != nil {
				return err
			}
		}

		if matchOutXLSX != "" {
			if err := export.WriteXLSX(matchOutXLSX, result); err != nil {
				return err
			}
			zap.L().Info("wrote xlsx export", zap.String("path", matchOutXLSX))
		}
		if matchOutHTML != "" {
			if err := export.WriteHTML(matchOutHTML, result); err != nil {
				return err
			}
			zap.L().Info("wrote html report", zap.String("path", matchOutHTML))
		}
		if matchOutJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return eris.Wrap(err, "encode result")
			}
		}

		stats := result.Stats
		zap.L().Info("matching complete",
			zap.Int("total_vendors", stats.TotalVendors),
			zap.Int("matched", stats.MatchedVendors),
			zap.Int("unmatched", stats.UnmatchedVendors),
			zap.Float64("match_rate_pct", stats.MatchRate),
			zap.Int("exact", stats.ExactMatches),
			zap.Int("fuzzy", stats.FuzzyMatches),
			zap.Float64("total_relationship_value_usd", stats.TotalRelationshipValueUSD),
		)
		return nil
	},
}

func init() {
	matchCmd.Flags().StringVar(&matchVendorPath, "vendors", "", "vendor contract file, CSV or XLSX (required)")
	matchCmd.Flags().StringSliceVar(&matchClientPaths, "clients", nil, "client/opportunity files, CSV or XLSX (required, repeatable)")
	matchCmd.Flags().StringVar(&matchOutXLSX, "out-xlsx", "", "write results to an XLSX workbook")
	matchCmd.Flags().StringVar(&matchOutHTML, "out-html", "", "write an HTML report")
	matchCmd.Flags().BoolVar(&matchOutJSON, "json", false, "print the full result as JSON to stdout")
	_ = matchCmd.MarkFlagRequired("vendors")
	_ = matchCmd.MarkFlagRequired("clients")
	rootCmd.AddCommand(matchCmd)
}

// loadInputs reads and canonicalizes the vendor file and all client files,
// client files concurrently.
func loadInputs(ctx context.Context, vendorPath string, clientPaths []string) ([]model.VendorRecord, [][]model.ClientRecord, error) {
	vendorRows, err := fileio.ReadTable(vendorPath)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "read vendor file %s", vendorPath)
	}
	vendors, err := ingest.Vendors(vendorRows, fileio.SourceTag(vendorPath))
	if err != nil {
		return nil, nil, eris.Wrapf(err, "ingest vendor file %s", vendorPath)
	}

	clientTables := make([][]model.ClientRecord, len(clientPaths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range clientPaths {
		g.Go(func() error {
			rows, err := fileio.ReadTable(path)
			if err != nil {
				return eris.Wrapf(err, "read client file %s", path)
			}
			table, err := ingest.Clients(rows, fileio.SourceTag(path))
			if err != nil {
				return eris.Wrapf(err, "ingest client file %s", path)
			}
			clientTables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return vendors, clientTables, nil
}

// openStore opens the configured run store, or returns nil when persistence
// is disabled.
func openStore(ctx context.Context) (store.Store, error) {
	if cfg.Store.Path == "" {
		return nil, nil
	}
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}
