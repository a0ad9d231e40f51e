package ingest

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

// Vendors canonicalizes a raw vendor-contract table. The first row is the
// header. A table with no recognizable company-name column is a malformed
// input and fails with an error naming the missing field; every other
// per-record defect degrades to a safe default.
func Vendors(rows [][]string, source string) ([]model.VendorRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]

	nameCol := findColumn(header, "company name", "company_name", "vendor name", "supplier name", "supplier", "vendor", "company")
	if nameCol < 0 {
		return nil, eris.New("ingest: no company name column found in vendor data")
	}

	valueCol := findColumn(header, "total value", "total_value", "contract value", "annual value", "value", "amount", "spend")
	currencyCol := findColumn(header, "currency code", "currency")
	endDateCol := findColumn(header, "end date", "end_date", "contract end date", "expiry date", "expiration")
	termsCol := findColumn(header, "terms months", "terms_months", "contract term", "term", "terms")

	records := make([]model.VendorRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := model.VendorRecord{
			CompanyName: cleanName(cell(row, nameCol)),
			TotalValue:  ExtractNumeric(cell(row, valueCol)),
			Currency:    defaultCurrency(cell(row, currencyCol)),
			EndDate:     ParseDate(cell(row, endDateCol)),
			TermsMonths: cell(row, termsCol),
			Source:      source,
		}
		records = append(records, r)
	}

	zap.L().Info("ingested vendor table",
		zap.String("source", source),
		zap.Int("rows", len(records)),
	)
	return records, nil
}
