package relationship

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/vendormatch/internal/model"
)

const topRelationshipCount = 5

var usd = message.NewPrinter(language.AmericanEnglish)

// Summarize builds the executive summary for a consolidated relationship
// table. An empty table yields a zeroed summary, never an error.
func (m *Mapper) Summarize(rels []model.ConsolidatedRelationship) *model.Summary {
	s := &model.Summary{}
	if len(rels) == 0 {
		return s
	}

	for _, r := range rels {
		s.Overview.TotalCompanies++
		s.Overview.TotalVendorContracts += r.VendorContractCount
		if r.VendorContractCount > 1 {
			s.Overview.CompaniesWithMultipleContracts++
		}
		s.Overview.TotalVendorSpendUSD += r.VendorTotalSpendUSD
		s.Overview.TotalClientSpendUSD += r.ClientTotalSpendUSD
		s.Overview.TotalRelationshipValueUSD += r.TotalRelationshipValue

		if r.MatchQuality == QualityExact {
			s.MatchQuality.ExactMatches++
		} else {
			s.MatchQuality.FuzzyMatches++
		}
	}
	s.MatchQuality.MatchAccuracy = roundPct(s.MatchQuality.ExactMatches, s.Overview.TotalCompanies)

	s.RelationshipTypes = make(map[string]int)
	for _, r := range rels {
		s.RelationshipTypes[r.RelationshipType]++
	}

	top := rels
	if len(top) > topRelationshipCount {
		top = top[:topRelationshipCount]
	}
	for _, r := range top {
		s.TopRelationships = append(s.TopRelationships, model.TopRelationship{
			CompanyName:            r.CompanyName,
			TotalRelationshipValue: r.TotalRelationshipValue,
		})
	}

	s.Insights = m.insights(rels)
	return s
}

// insights derives the natural-language observations shown in reports.
func (m *Mapper) insights(rels []model.ConsolidatedRelationship) []string {
	var out []string

	multiContract := 0
	totalContractsAmongMulti := 0
	balanced := 0
	currencyRisks := 0
	highValue := 0

	for _, r := range rels {
		if r.VendorContractCount > 1 {
			multiContract++
			totalContractsAmongMulti += r.VendorContractCount
		}
		ratio := float64(r.VendorClientRatio)
		if ratio >= 0.5 && ratio <= 2.0 {
			balanced++
		}
		if m.hasCurrencyRisk(r.VendorCurrenciesUsed) {
			currencyRisks++
		}
		if r.TotalRelationshipValue >= m.cfg.HighValueThreshold {
			highValue++
		}
	}

	if multiContract > 0 {
		avg := float64(totalContractsAmongMulti) / float64(multiContract)
		out = append(out, usd.Sprintf(
			"%d companies have multiple vendor contracts (avg %.1f contracts per company)",
			multiContract, avg,
		))
	}
	if balanced > 0 {
		out = append(out, usd.Sprintf(
			"%d companies show balanced vendor-client relationships", balanced,
		))
	}
	if currencyRisks > 0 {
		out = append(out, usd.Sprintf(
			"%d companies have currency conversion issues requiring attention", currencyRisks,
		))
	}
	if highValue > 0 {
		out = append(out, usd.Sprintf(
			"%d relationships exceed $%.0f in total value",
			highValue, m.cfg.HighValueThreshold,
		))
	}

	return out
}

func roundPct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
