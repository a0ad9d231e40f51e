package model

// Overview aggregates spend and contract counts across all consolidated
// relationships.
type Overview struct {
	TotalCompanies                int     `json:"total_companies"`
	TotalVendorContracts          int     `json:"total_vendor_contracts"`
	CompaniesWithMultipleContracts int    `json:"companies_with_multiple_contracts"`
	TotalVendorSpendUSD           float64 `json:"total_vendor_spend_usd"`
	TotalClientSpendUSD           float64 `json:"total_client_spend_usd"`
	TotalRelationshipValueUSD     float64 `json:"total_relationship_value_usd"`
}

// MatchQualitySummary breaks relationships down by match quality.
type MatchQualitySummary struct {
	ExactMatches  int     `json:"exact_matches"`
	FuzzyMatches  int     `json:"fuzzy_matches"`
	MatchAccuracy float64 `json:"match_accuracy"` // percent of exact matches
}

// TopRelationship is one entry in the top-N-by-value list.
type TopRelationship struct {
	CompanyName            string  `json:"company_name"`
	TotalRelationshipValue float64 `json:"total_relationship_value"`
}

// Summary is the executive summary over a consolidated relationship table.
type Summary struct {
	Overview          Overview            `json:"overview"`
	MatchQuality      MatchQualitySummary `json:"match_quality"`
	RelationshipTypes map[string]int      `json:"relationship_types,omitempty"`
	TopRelationships  []TopRelationship   `json:"top_relationships,omitempty"`
	Insights          []string            `json:"insights,omitempty"`
}

// ContractDetailRow is one contract in the multi-contract drill-down table.
type ContractDetailRow struct {
	CompanyName      string  `json:"company_name"`
	ContractNumber   int     `json:"contract_number"`
	ContractSpendUSD float64 `json:"contract_spend_usd"`
	ContractCurrency string  `json:"contract_currency"`
	ContractEndDate  string  `json:"contract_end_date"`
	ContractTerms    string  `json:"contract_terms"`
}

// RelationshipTypeAgg aggregates relationships of one classification.
type RelationshipTypeAgg struct {
	RelationshipType string  `json:"relationship_type"`
	Count            int     `json:"count"`
	VendorSpendUSD   float64 `json:"total_vendor_spend_usd"`
	ClientSpendUSD   float64 `json:"total_client_spend_usd"`
	TotalValue       float64 `json:"total_value"`
}

// CurrencyRisk flags a company whose vendor contracts span multiple or
// watched non-USD currencies.
type CurrencyRisk struct {
	CompanyName         string  `json:"company_name"`
	CurrenciesUsed      string  `json:"vendor_currencies_used"`
	VendorTotalSpendUSD float64 `json:"vendor_total_spend_usd"`
}

// Breakdowns holds the named drill-down sub-tables derived from a
// consolidated relationship table.
type Breakdowns struct {
	TopRelationships      []ConsolidatedRelationship `json:"top_relationships,omitempty"`
	VendorContractDetails []ContractDetailRow        `json:"vendor_contract_details,omitempty"`
	RelationshipTypes     []RelationshipTypeAgg      `json:"relationship_types,omitempty"`
	CurrencyRisks         []CurrencyRisk             `json:"currency_risks,omitempty"`
}

// MatchStats reports matching coverage over one engine run.
type MatchStats struct {
	TotalVendors              int     `json:"total_vendors"`
	MatchedVendors            int     `json:"matched_vendors"`
	UnmatchedVendors          int     `json:"unmatched_vendors"`
	MatchRate                 float64 `json:"match_rate"` // percent
	ExactMatches              int     `json:"exact_matches"`
	FuzzyMatches              int     `json:"fuzzy_matches"`
	TotalVendorSpendUSD       float64 `json:"total_vendor_spend_usd"`
	TotalClientSpendUSD       float64 `json:"total_client_spend_usd"`
	TotalRelationshipValueUSD float64 `json:"total_relationship_value_usd"`
}

// Result is the full output of one pipeline run.
type Result struct {
	Matches       []Match                    `json:"matches"`
	Relationships []ConsolidatedRelationship `json:"relationships"`
	Summary       *Summary                   `json:"summary,omitempty"`
	Breakdowns    *Breakdowns                `json:"breakdowns,omitempty"`
	Stats         *MatchStats                `json:"stats,omitempty"`
}
