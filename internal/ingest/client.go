package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

// Clients canonicalizes a raw client or opportunity table into one row per
// company for the given source. Record type is inferred from the header: a
// pipeline-stage column marks the table as opportunity data, otherwise it is
// treated as active client spend. Rows naming an ultimate parent account are
// attributed to the parent; spend is summed per company within the source.
func Clients(rows [][]string, source string) ([]model.ClientRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]

	accountCol := findColumn(header, "company name", "company_name", "account name", "account", "client name", "company")
	if accountCol < 0 {
		return nil, eris.New("ingest: no company name column found in client data")
	}

	parentCol := findColumn(header, "ultimate parent account", "ultimate parent name", "ultimate parent", "parent account", "parent name")
	spendCol := findColumn(header, "client spend", "client_spend", "travel budget", "bookings value", "travel volume", "budget", "spend", "value", "amount")
	currencyCol := findColumn(header, "currency code", "currency")
	stageCol := findColumn(header, "stage")

	recordType := model.RecordTypeActive
	contractType := "active"
	if stageCol >= 0 {
		recordType = model.RecordTypeOpportunity
		contractType = ""
	}

	// Sum spend per company within this source so the table arrives at the
	// consolidator as one row per (company, source) pair.
	var order []string
	grouped := make(map[string]*model.ClientRecord)

	for _, row := range rows[1:] {
		name := cleanName(cell(row, parentCol))
		if name == "" {
			name = cleanName(cell(row, accountCol))
		}
		if name == "" {
			continue
		}

		rec, ok := grouped[name]
		if !ok {
			rec = &model.ClientRecord{
				CompanyName:  name,
				Currency:     defaultCurrency(cell(row, currencyCol)),
				Source:       source,
				RecordType:   recordType,
				Stage:        cell(row, stageCol),
				ContractType: contractType,
			}
			grouped[name] = rec
			order = append(order, name)
		}
		rec.ClientSpend += ExtractNumeric(cell(row, spendCol))
		if rec.Stage == "" && stageCol >= 0 {
			rec.Stage = cell(row, stageCol)
		}
	}

	records := make([]model.ClientRecord, 0, len(order))
	for _, name := range order {
		records = append(records, *grouped[name])
	}

	zap.L().Info("ingested client table",
		zap.String("source", source),
		zap.String("record_type", recordType),
		zap.Int("input_rows", len(rows)-1),
		zap.Int("companies", len(records)),
	)
	return records, nil
}

// cleanName trims a name cell and drops the textual null artifacts that
// spreadsheet exports leave behind.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "null", "none", "n/a":
		return ""
	}
	return s
}

func defaultCurrency(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "USD"
	}
	return s
}
