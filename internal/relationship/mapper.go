// Package relationship groups flat vendor-client matches into one
// consolidated relationship per company and derives executive summaries and
// drill-down breakdowns from the result.
package relationship

import (
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/vendormatch/internal/model"
)

// Relationship classifications derived from the vendor-to-client spend ratio.
const (
	TypeClientOnly      = "Client Only"
	TypeVendorOnly      = "Vendor Only"
	TypeMajorVendor     = "Major Vendor"
	TypeBalancedPartner = "Balanced Partner"
	TypeMajorClient     = "Major Client"
	TypeUnknown         = "Unknown"
)

// Match quality labels for a consolidated relationship.
const (
	QualityExact = "Exact"
	QualityFuzzy = "Fuzzy"
)

// Config tunes summary and breakdown generation.
type Config struct {
	// HighValueThreshold is the USD total above which a relationship counts
	// as high-value in the insight strings.
	HighValueThreshold float64
	// WatchedCurrencies are non-USD codes that flag a currency risk when
	// they appear among a relationship's vendor currencies.
	WatchedCurrencies []string
}

// DefaultConfig returns the production mapper configuration.
func DefaultConfig() Config {
	return Config{
		HighValueThreshold: 1_000_000,
		WatchedCurrencies:  []string{"NOK", "EUR", "GBP"},
	}
}

// Mapper consolidates flat match tables. Stateless; safe for concurrent use.
type Mapper struct {
	cfg Config
}

// NewMapper builds a Mapper, falling back to defaults for unset fields.
func NewMapper(cfg Config) *Mapper {
	def := DefaultConfig()
	if cfg.HighValueThreshold <= 0 {
		cfg.HighValueThreshold = def.HighValueThreshold
	}
	if len(cfg.WatchedCurrencies) == 0 {
		cfg.WatchedCurrencies = def.WatchedCurrencies
	}
	return &Mapper{cfg: cfg}
}

// Consolidate groups the flat match table by company and aggregates each
// group into one relationship row. The grouping tolerates multiple matches
// per company even though the current matchers emit at most one per vendor;
// group sizes above one appear once multi-contract support lands. Output is
// sorted descending by total relationship value.
func (m *Mapper) Consolidate(matches []model.Match) []model.ConsolidatedRelationship {
	if len(matches) == 0 {
		return nil
	}

	var order []string
	groups := make(map[string][]model.Match)
	for _, match := range matches {
		if _, ok := groups[match.VendorName]; !ok {
			order = append(order, match.VendorName)
		}
		groups[match.VendorName] = append(groups[match.VendorName], match)
	}

	out := make([]model.ConsolidatedRelationship, 0, len(order))
	for _, company := range order {
		out = append(out, m.consolidateGroup(company, groups[company]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRelationshipValue > out[j].TotalRelationshipValue
	})

	zap.L().Info("consolidated relationships",
		zap.Int("matches", len(matches)),
		zap.Int("companies", len(out)),
	)
	return out
}

func (m *Mapper) consolidateGroup(company string, group []model.Match) model.ConsolidatedRelationship {
	var (
		totalVendorSpend float64
		contracts        []model.ContractDetail
		earliestEnd      time.Time
		quality          = QualityFuzzy
	)
	currencies := make(map[string]struct{})
	terms := make(map[string]struct{})

	for _, match := range group {
		vendor := match.Vendor
		totalVendorSpend += vendor.TotalValue

		if vendor.Currency != "" {
			currencies[vendor.Currency] = struct{}{}
		}
		if vendor.TermsMonths != "" {
			terms[vendor.TermsMonths] = struct{}{}
		}

		if vendor.TotalValue > 0 {
			contracts = append(contracts, model.ContractDetail{
				SpendUSD: vendor.TotalValue,
				Currency: defaultString(vendor.Currency, "USD"),
				EndDate:  formatDate(vendor.EndDate),
				Terms:    defaultString(vendor.TermsMonths, model.NotSpecified),
			})
		}

		if !vendor.EndDate.IsZero() && (earliestEnd.IsZero() || vendor.EndDate.Before(earliestEnd)) {
			earliestEnd = vendor.EndDate
		}

		if match.Type == model.MatchExact {
			quality = QualityExact
		}
	}

	// Client data is identical across a group: it originates from one
	// consolidated client row.
	client := group[0].Client
	clientSpend := client.ClientSpend

	ratio := math.Inf(1)
	if clientSpend > 0 {
		ratio = totalVendorSpend / clientSpend
	}

	return model.ConsolidatedRelationship{
		CompanyName: company,

		VendorContractCount:   len(contracts),
		VendorTotalSpendUSD:   totalVendorSpend,
		VendorCurrenciesUsed:  joinSorted(currencies, "USD"),
		VendorEarliestEndDate: formatDate(earliestEnd),
		VendorContractTerms:   joinSorted(terms, model.NotSpecified),
		VendorContracts:       contracts,

		ClientTotalSpendUSD: clientSpend,
		ClientCurrency:      defaultString(client.Currency, "USD"),
		ClientSources:       client.Sources,
		OpportunityStages:   client.Stages,

		TotalRelationshipValue: totalVendorSpend + clientSpend,
		VendorClientRatio:      model.JSONFloat(ratio),
		MatchQuality:           quality,
		RelationshipType:       Classify(totalVendorSpend, clientSpend),
	}
}

// Classify derives the relationship type from vendor and client spend.
// The ratio boundaries are inclusive on the balanced side: exactly 2.0 and
// exactly 0.5 both classify as Balanced Partner.
func Classify(vendorSpend, clientSpend float64) string {
	switch {
	case vendorSpend == 0 && clientSpend > 0:
		return TypeClientOnly
	case vendorSpend > 0 && clientSpend == 0:
		return TypeVendorOnly
	case vendorSpend > 0 && clientSpend > 0:
		ratio := vendorSpend / clientSpend
		switch {
		case ratio > 2:
			return TypeMajorVendor
		case ratio >= 0.5:
			return TypeBalancedPartner
		default:
			return TypeMajorClient
		}
	default:
		return TypeUnknown
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return model.NotSpecified
	}
	return t.Format("2006-01-02")
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinSorted(set map[string]struct{}, fallback string) string {
	if len(set) == 0 {
		return fallback
	}
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}
