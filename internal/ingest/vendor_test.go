package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/vendormatch/internal/model"
)

func TestVendors_Basic(t *testing.T) {
	rows := [][]string{
		{"Company Name", "Total Value", "Currency", "End Date", "Terms Months"},
		{"Acme Systems", "$1,500", "usd", "2026-12-31", "12"},
	}

	records, err := Vendors(rows, "vendor_contracts")
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Acme Systems", r.CompanyName)
	assert.Equal(t, 1500.0, r.TotalValue)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), r.EndDate)
	assert.Equal(t, "12", r.TermsMonths)
	assert.Equal(t, "vendor_contracts", r.Source)
}

func TestVendors_MissingNameColumn(t *testing.T) {
	rows := [][]string{
		{"Amount", "End Date"},
		{"100", "2026-01-01"},
	}

	_, err := Vendors(rows, "vendors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no company name column")
}

func TestVendors_AlternateHeaderNames(t *testing.T) {
	rows := [][]string{
		{"Supplier Name", "Contract Value"},
		{"Beta Industries", "250"},
	}

	records, err := Vendors(rows, "vendors")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Beta Industries", records[0].CompanyName)
	assert.Equal(t, 250.0, records[0].TotalValue)
}

func TestVendors_SoftFailuresDefault(t *testing.T) {
	rows := [][]string{
		{"Company Name", "Total Value", "Currency", "End Date"},
		{"Acme", "not a number", "", "someday"},
	}

	records, err := Vendors(rows, "vendors")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].TotalValue)
	assert.Equal(t, "USD", records[0].Currency)
	assert.True(t, records[0].EndDate.IsZero())
}

func TestVendors_ShortRows(t *testing.T) {
	rows := [][]string{
		{"Company Name", "Total Value"},
		{"Acme"},
	}

	records, err := Vendors(rows, "vendors")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].TotalValue)
}

func TestVendors_Empty(t *testing.T) {
	records, err := Vendors(nil, "vendors")
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestClients_ActiveTable(t *testing.T) {
	rows := [][]string{
		{"Account Name", "Client Spend", "Currency"},
		{"Acme", "1000", "USD"},
		{"Beta", "500", "USD"},
	}

	records, err := Clients(rows, "clients")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.RecordTypeActive, records[0].RecordType)
	assert.Equal(t, "active", records[0].ContractType)
	assert.Equal(t, "", records[0].Stage)
}

func TestClients_OpportunityTable(t *testing.T) {
	rows := [][]string{
		{"Account Name", "Value", "Stage"},
		{"Acme", "1000", "Proposal"},
	}

	records, err := Clients(rows, "opps")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.RecordTypeOpportunity, records[0].RecordType)
	assert.Equal(t, "Proposal", records[0].Stage)
	assert.Equal(t, "", records[0].ContractType)
}

func TestClients_ParentAccountPreferred(t *testing.T) {
	rows := [][]string{
		{"Account Name", "Ultimate Parent Account", "Spend"},
		{"Acme Norway", "Acme Group", "100"},
		{"Acme Sweden", "Acme Group", "200"},
	}

	records, err := Clients(rows, "clients")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme Group", records[0].CompanyName)
	assert.Equal(t, 300.0, records[0].ClientSpend)
}

func TestClients_SumsSpendPerCompany(t *testing.T) {
	rows := [][]string{
		{"Account Name", "Spend"},
		{"Acme", "100"},
		{"Acme", "250"},
		{"Beta", "50"},
	}

	records, err := Clients(rows, "clients")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 350.0, records[0].ClientSpend)
	assert.Equal(t, 50.0, records[1].ClientSpend)
}

func TestClients_DropsNullNames(t *testing.T) {
	rows := [][]string{
		{"Account Name", "Spend"},
		{"nan", "100"},
		{"", "200"},
		{"Acme", "300"},
	}

	records, err := Clients(rows, "clients")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Acme", records[0].CompanyName)
}

func TestClients_MissingNameColumn(t *testing.T) {
	rows := [][]string{
		{"Spend", "Stage"},
		{"100", "Proposal"},
	}

	_, err := Clients(rows, "clients")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no company name column")
}
