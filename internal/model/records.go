// Package model defines the canonical record types flowing through the
// vendor-client matching pipeline.
package model

import "time"

// MatchType distinguishes how a vendor-client pairing was found.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
)

// Record types for client-side rows.
const (
	RecordTypeActive      = "active"
	RecordTypeOpportunity = "opportunity"
)

// VendorRecord is one canonicalized vendor contract row. Monetary values are
// pre-converted to USD by the ingestion layer; Currency records the original
// code for provenance only.
type VendorRecord struct {
	CompanyName string    `json:"company_name"`
	TotalValue  float64   `json:"total_value"`
	Currency    string    `json:"currency"`
	EndDate     time.Time `json:"end_date,omitzero"` // zero = not specified
	TermsMonths string    `json:"terms_months,omitempty"`
	Source      string    `json:"source,omitempty"`
}

// ClientRecord is one canonicalized client or opportunity row from a single
// source, prior to consolidation. One row per (company, source) pair.
type ClientRecord struct {
	CompanyName  string  `json:"company_name"`
	ClientSpend  float64 `json:"client_spend"`
	Currency     string  `json:"currency"`
	Source       string  `json:"source"`
	RecordType   string  `json:"record_type"`
	Stage        string  `json:"stage,omitempty"`
	ContractType string  `json:"contract_type,omitempty"`
}

// ConsolidatedClient is one row per distinct company after summing spend
// across all client sources. Provenance fields are comma-joined distinct
// values in first-seen order.
type ConsolidatedClient struct {
	CompanyName   string  `json:"company_name"`
	ClientSpend   float64 `json:"client_spend"`
	Currency      string  `json:"currency"`
	Sources       string  `json:"sources"`
	RecordTypes   string  `json:"record_types"`
	Stages        string  `json:"stages,omitempty"`
	ContractTypes string  `json:"contract_types,omitempty"`
	SourceCount   int     `json:"source_count"`
}

// Match is one vendor-client pairing found by the matching engine. Each
// vendor appears in at most one Match.
type Match struct {
	VendorName     string             `json:"vendor_name"`
	ClientName     string             `json:"client_name"`
	Vendor         VendorRecord       `json:"vendor_data"`
	Client         ConsolidatedClient `json:"client_data"`
	Type           MatchType          `json:"match_type"`
	Score          float64            `json:"match_score"`
	MatchedVariant string             `json:"matched_variant"`

	// TotalRelationshipValue is vendor spend plus client spend, both USD.
	TotalRelationshipValue float64 `json:"total_relationship_value"`
}

// ContractDetail is one vendor contract inside a consolidated relationship.
type ContractDetail struct {
	SpendUSD float64 `json:"spend_usd"`
	Currency string  `json:"currency"`
	EndDate  string  `json:"end_date"`
	Terms    string  `json:"terms"`
}

// ConsolidatedRelationship is one row per company after grouping all of its
// matches and aggregating vendor contracts against consolidated client spend.
type ConsolidatedRelationship struct {
	CompanyName string `json:"company_name"`

	// Vendor side (aggregated across contracts).
	VendorContractCount   int              `json:"vendor_contract_count"`
	VendorTotalSpendUSD   float64          `json:"vendor_total_spend_usd"`
	VendorCurrenciesUsed  string           `json:"vendor_currencies_used"`
	VendorEarliestEndDate string           `json:"vendor_earliest_end_date"`
	VendorContractTerms   string           `json:"vendor_contract_terms"`
	VendorContracts       []ContractDetail `json:"vendor_contracts_detail,omitempty"`

	// Client side (consolidated).
	ClientTotalSpendUSD float64 `json:"client_total_spend_usd"`
	ClientCurrency      string  `json:"client_currency"`
	ClientSources       string  `json:"client_sources"`
	OpportunityStages   string  `json:"opportunity_stages,omitempty"`

	// Relationship metrics. VendorClientRatio is +Inf when client spend is
	// zero; it marshals as the string "Infinity" in JSON output.
	TotalRelationshipValue float64    `json:"total_relationship_value"`
	VendorClientRatio      JSONFloat  `json:"vendor_client_ratio"`
	MatchQuality           string     `json:"match_quality"`
	RelationshipType       string     `json:"relationship_type"`
}

// NotSpecified is the sentinel rendered for absent dates and terms.
const NotSpecified = "Not specified"
