package relationship

import (
	"math"
	"sort"
	"strings"

	"github.com/sells-group/vendormatch/internal/model"
)

const topBreakdownCount = 20

// Breakdown produces the named drill-down sub-tables for a consolidated
// relationship table: top relationships by value, per-contract detail for
// multi-contract companies, per-type aggregates, and currency risks.
func (m *Mapper) Breakdown(rels []model.ConsolidatedRelationship) *model.Breakdowns {
	b := &model.Breakdowns{}
	if len(rels) == 0 {
		return b
	}

	top := rels
	if len(top) > topBreakdownCount {
		top = top[:topBreakdownCount]
	}
	b.TopRelationships = append(b.TopRelationships, top...)

	for _, r := range rels {
		if r.VendorContractCount <= 1 {
			continue
		}
		for i, c := range r.VendorContracts {
			b.VendorContractDetails = append(b.VendorContractDetails, model.ContractDetailRow{
				CompanyName:      r.CompanyName,
				ContractNumber:   i + 1,
				ContractSpendUSD: c.SpendUSD,
				ContractCurrency: c.Currency,
				ContractEndDate:  c.EndDate,
				ContractTerms:    c.Terms,
			})
		}
	}

	b.RelationshipTypes = m.typeAggregates(rels)

	for _, r := range rels {
		if m.hasCurrencyRisk(r.VendorCurrenciesUsed) {
			b.CurrencyRisks = append(b.CurrencyRisks, model.CurrencyRisk{
				CompanyName:         r.CompanyName,
				CurrenciesUsed:      r.VendorCurrenciesUsed,
				VendorTotalSpendUSD: r.VendorTotalSpendUSD,
			})
		}
	}

	return b
}

func (m *Mapper) typeAggregates(rels []model.ConsolidatedRelationship) []model.RelationshipTypeAgg {
	byType := make(map[string]*model.RelationshipTypeAgg)
	for _, r := range rels {
		agg, ok := byType[r.RelationshipType]
		if !ok {
			agg = &model.RelationshipTypeAgg{RelationshipType: r.RelationshipType}
			byType[r.RelationshipType] = agg
		}
		agg.Count++
		agg.VendorSpendUSD += r.VendorTotalSpendUSD
		agg.ClientSpendUSD += r.ClientTotalSpendUSD
		agg.TotalValue += r.TotalRelationshipValue
	}

	out := make([]model.RelationshipTypeAgg, 0, len(byType))
	for _, agg := range byType {
		agg.VendorSpendUSD = round2(agg.VendorSpendUSD)
		agg.ClientSpendUSD = round2(agg.ClientSpendUSD)
		agg.TotalValue = round2(agg.TotalValue)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RelationshipType < out[j].RelationshipType
	})
	return out
}

// hasCurrencyRisk reports whether a vendor currency provenance string spans
// multiple currencies or includes a watched non-USD code.
func (m *Mapper) hasCurrencyRisk(currenciesUsed string) bool {
	if currenciesUsed == "" {
		return false
	}
	if strings.Contains(currenciesUsed, ",") {
		return true
	}
	for _, code := range m.cfg.WatchedCurrencies {
		if strings.Contains(currenciesUsed, code) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
