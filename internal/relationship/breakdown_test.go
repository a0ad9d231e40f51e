package relationship

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vendormatch/internal/model"
)

func TestBreakdown_Empty(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := m.Breakdown(nil)
	require.NotNil(t, b)
	assert.Empty(t, b.TopRelationships)
	assert.Empty(t, b.VendorContractDetails)
}

func TestBreakdown_TopRelationshipsCapped(t *testing.T) {
	m := NewMapper(DefaultConfig())

	var rels []model.ConsolidatedRelationship
	for i := 0; i < topBreakdownCount+5; i++ {
		rels = append(rels, rel(fmt.Sprintf("Company %02d", i), float64(1000-i), 0, QualityExact))
	}

	b := m.Breakdown(rels)
	require.Len(t, b.TopRelationships, topBreakdownCount)
	assert.Equal(t, "Company 00", b.TopRelationships[0].CompanyName)
}

func TestBreakdown_ContractDetailsOnlyForMultiContract(t *testing.T) {
	m := NewMapper(DefaultConfig())

	single := rel("Single", 100, 0, QualityExact)
	single.VendorContracts = []model.ContractDetail{{SpendUSD: 100, Currency: "USD"}}

	multi := rel("Multi", 300, 0, QualityExact)
	multi.VendorContractCount = 2
	multi.VendorContracts = []model.ContractDetail{
		{SpendUSD: 100, Currency: "USD", EndDate: "2026-12-31", Terms: "12"},
		{SpendUSD: 200, Currency: "EUR", EndDate: "2027-06-30", Terms: "24"},
	}

	b := m.Breakdown([]model.ConsolidatedRelationship{single, multi})
	require.Len(t, b.VendorContractDetails, 2)
	assert.Equal(t, "Multi", b.VendorContractDetails[0].CompanyName)
	assert.Equal(t, 1, b.VendorContractDetails[0].ContractNumber)
	assert.Equal(t, 2, b.VendorContractDetails[1].ContractNumber)
	assert.Equal(t, 200.0, b.VendorContractDetails[1].ContractSpendUSD)
}

func TestBreakdown_TypeAggregates(t *testing.T) {
	m := NewMapper(DefaultConfig())
	b := m.Breakdown([]model.ConsolidatedRelationship{
		rel("A", 1000, 100, QualityExact), // Major Vendor
		rel("B", 2000, 100, QualityExact), // Major Vendor
		rel("C", 100, 100, QualityExact),  // Balanced Partner
	})

	require.Len(t, b.RelationshipTypes, 2)
	// Sorted by type name.
	assert.Equal(t, TypeBalancedPartner, b.RelationshipTypes[0].RelationshipType)
	assert.Equal(t, TypeMajorVendor, b.RelationshipTypes[1].RelationshipType)
	assert.Equal(t, 2, b.RelationshipTypes[1].Count)
	assert.Equal(t, 3000.0, b.RelationshipTypes[1].VendorSpendUSD)
	assert.Equal(t, 3200.0, b.RelationshipTypes[1].TotalValue)
}

func TestBreakdown_CurrencyRisks(t *testing.T) {
	m := NewMapper(DefaultConfig())

	safe := rel("Safe", 100, 0, QualityExact)

	multi := rel("Multi Currency", 200, 0, QualityExact)
	multi.VendorCurrenciesUsed = "EUR, USD"

	watched := rel("Watched", 300, 0, QualityExact)
	watched.VendorCurrenciesUsed = "NOK"

	b := m.Breakdown([]model.ConsolidatedRelationship{safe, multi, watched})
	require.Len(t, b.CurrencyRisks, 2)
	assert.Equal(t, "Multi Currency", b.CurrencyRisks[0].CompanyName)
	assert.Equal(t, "Watched", b.CurrencyRisks[1].CompanyName)
	assert.Equal(t, "NOK", b.CurrencyRisks[1].CurrenciesUsed)
}

func TestHasCurrencyRisk(t *testing.T) {
	m := NewMapper(DefaultConfig())
	assert.False(t, m.hasCurrencyRisk(""))
	assert.False(t, m.hasCurrencyRisk("USD"))
	assert.True(t, m.hasCurrencyRisk("USD, EUR"))
	assert.True(t, m.hasCurrencyRisk("GBP"))
}
