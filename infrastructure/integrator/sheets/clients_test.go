package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/domain"
)

func TestFactoryClients(t *testing.T) {
	values := [][]string{
		{"Field", "Acme", "Beta", "Gamma", "", "Delta"},
		{"Account Type", "Ecommerce", "Lead Gen", "Brand", "Lead Gen", "Lead Gen"},
		{"Dashboard", "https://dash/acme", "", "", "", ""},
		{"Budget", "£3,000", "£1,000", "", "", ""},
		{"Dimension", "Platform", "", "", "", ""},
		{"Plan", "https://docs.google.com/spreadsheets/d/abc/edit", "", "", "", ""},
		{"Report Day", "Monday", "Tuesday", "Monday", "Monday", "Monday"},
		{"Client Context", "Retailer", "", "", "", ""},
		{"Data Config", "TRUE", "", "TRUE", "TRUE", "FALSE"},
	}

	clients, skipped, err := FactoryClients(values)
	require.NoError(t, err)

	require.Len(t, clients, 2)
	assert.Equal(t, domain.Client{
		Name:          "Acme",
		AccountType:   domain.AccountTypeEcommerce,
		Dashboard:     "https://dash/acme",
		Budget:        "£3,000",
		Dimension:     "Platform",
		PlanURL:       "https://docs.google.com/spreadsheets/d/abc/edit",
		ReportDueDay:  "Monday",
		ClientContext: "Retailer",
		DataConfig:    true,
	}, clients[0])
	assert.Equal(t, "Beta", clients[1].Name)
	assert.Equal(t, domain.AccountTypeLeadGen, clients[1].AccountType)
	assert.False(t, clients[1].HasPlan())

	require.Len(t, skipped, 3)
	assert.Equal(t, "Gamma", skipped[0].Name)
	assert.Contains(t, skipped[0].Reason, "AccountType")
	assert.Equal(t, "", skipped[1].Name)
	assert.Equal(t, "Delta", skipped[2].Name)
	assert.Contains(t, skipped[2].Reason, "DataConfig")
}

func TestFactoryClients_ShortSheet(t *testing.T) {
	values := [][]string{
		{"Field", "Acme"},
		{"Account Type", "Lead Gen"},
	}

	clients, skipped, err := FactoryClients(values)

	require.NoError(t, err)
	assert.Empty(t, clients)
	require.Len(t, skipped, 1)
	assert.Contains(t, skipped[0].Reason, "ReportDueDay")
}

func TestFactoryClients_InvalidSheet(t *testing.T) {
	_, _, err := FactoryClients([][]string{{"Field"}})
	assert.ErrorIs(t, err, ErrClientsSheetInvalid)
}
