// Package export renders pipeline results as XLSX workbooks and HTML
// reports. It is a pure consumer of the core's output tables.
package export

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/vendormatch/internal/model"
)

// WriteXLSX writes the full pipeline result to an XLSX workbook: flat
// matches, consolidated relationships, summary, and the non-empty breakdown
// tables as separate sheets.
func WriteXLSX(path string, result *model.Result) error {
	f := xlsx.NewFile()

	if err := addMatchSheet(f, result.Matches); err != nil {
		return err
	}
	if err := addRelationshipSheet(f, result.Relationships); err != nil {
		return err
	}
	if result.Summary != nil {
		if err := addSummarySheet(f, result.Summary); err != nil {
			return err
		}
	}
	if result.Breakdowns != nil {
		if err := addBreakdownSheets(f, result.Breakdowns); err != nil {
			return err
		}
	}

	return eris.Wrap(f.Save(path), "export: save xlsx")
}

func addMatchSheet(f *xlsx.File, matches []model.Match) error {
	sheet, err := f.AddSheet("Matches")
	if err != nil {
		return eris.Wrap(err, "export: add matches sheet")
	}
	writeRow(sheet,
		"Company Name", "Matched Client", "Vendor Spend (USD)", "Client Spend (USD)",
		"Total Relationship Value", "Match Type", "Match Score", "Matched Variant",
	)
	for _, m := range matches {
		writeRow(sheet,
			m.VendorName, m.ClientName,
			money(m.Vendor.TotalValue), money(m.Client.ClientSpend),
			money(m.TotalRelationshipValue),
			string(m.Type), fmt.Sprintf("%.3f", m.Score), m.MatchedVariant,
		)
	}
	return nil
}

func addRelationshipSheet(f *xlsx.File, rels []model.ConsolidatedRelationship) error {
	sheet, err := f.AddSheet("Relationships")
	if err != nil {
		return eris.Wrap(err, "export: add relationships sheet")
	}
	writeRow(sheet,
		"Company Name", "Relationship Type", "Match Quality", "Vendor Contracts",
		"Vendor Spend (USD)", "Client Spend (USD)", "Total Value (USD)",
		"Vendor Currencies", "Earliest Contract End", "Client Sources", "Opportunity Stages",
	)
	for _, r := range rels {
		writeRow(sheet,
			r.CompanyName, r.RelationshipType, r.MatchQuality,
			fmt.Sprintf("%d", r.VendorContractCount),
			money(r.VendorTotalSpendUSD), money(r.ClientTotalSpendUSD),
			money(r.TotalRelationshipValue),
			r.VendorCurrenciesUsed, r.VendorEarliestEndDate, r.ClientSources, r.OpportunityStages,
		)
	}
	return nil
}

func addSummarySheet(f *xlsx.File, s *model.Summary) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}
	writeRow(sheet, "Metric", "Value")
	writeRow(sheet, "Total Companies", fmt.Sprintf("%d", s.Overview.TotalCompanies))
	writeRow(sheet, "Total Vendor Contracts", fmt.Sprintf("%d", s.Overview.TotalVendorContracts))
	writeRow(sheet, "Companies With Multiple Contracts", fmt.Sprintf("%d", s.Overview.CompaniesWithMultipleContracts))
	writeRow(sheet, "Total Vendor Spend (USD)", money(s.Overview.TotalVendorSpendUSD))
	writeRow(sheet, "Total Client Spend (USD)", money(s.Overview.TotalClientSpendUSD))
	writeRow(sheet, "Total Relationship Value (USD)", money(s.Overview.TotalRelationshipValueUSD))
	writeRow(sheet, "Exact Matches", fmt.Sprintf("%d", s.MatchQuality.ExactMatches))
	writeRow(sheet, "Fuzzy Matches", fmt.Sprintf("%d", s.MatchQuality.FuzzyMatches))
	writeRow(sheet, "Match Accuracy (%)", fmt.Sprintf("%.1f", s.MatchQuality.MatchAccuracy))
	for _, insight := range s.Insights {
		writeRow(sheet, "Insight", insight)
	}
	return nil
}

func addBreakdownSheets(f *xlsx.File, b *model.Breakdowns) error {
	if len(b.RelationshipTypes) > 0 {
		sheet, err := f.AddSheet("Relationship Types")
		if err != nil {
			return eris.Wrap(err, "export: add relationship types sheet")
		}
		writeRow(sheet, "Relationship Type", "Count", "Total Vendor Spend", "Total Client Spend", "Total Value")
		for _, agg := range b.RelationshipTypes {
			writeRow(sheet, agg.RelationshipType, fmt.Sprintf("%d", agg.Count),
				money(agg.VendorSpendUSD), money(agg.ClientSpendUSD), money(agg.TotalValue))
		}
	}

	if len(b.VendorContractDetails) > 0 {
		sheet, err := f.AddSheet("Contract Details")
		if err != nil {
			return eris.Wrap(err, "export: add contract details sheet")
		}
		writeRow(sheet, "Company Name", "Contract #", "Spend (USD)", "Currency", "End Date", "Terms")
		for _, d := range b.VendorContractDetails {
			writeRow(sheet, d.CompanyName, fmt.Sprintf("%d", d.ContractNumber),
				money(d.ContractSpendUSD), d.ContractCurrency, d.ContractEndDate, d.ContractTerms)
		}
	}

	if len(b.CurrencyRisks) > 0 {
		sheet, err := f.AddSheet("Currency Risks")
		if err != nil {
			return eris.Wrap(err, "export: add currency risks sheet")
		}
		writeRow(sheet, "Company Name", "Vendor Currencies", "Vendor Spend (USD)")
		for _, c := range b.CurrencyRisks {
			writeRow(sheet, c.CompanyName, c.CurrenciesUsed, money(c.VendorTotalSpendUSD))
		}
	}

	return nil
}

func writeRow(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", math.Round(v*100)/100)
}
