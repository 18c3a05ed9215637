package reporting

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/domain"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name          string
		current       *float64
		previous      *float64
		expectedDelta *float64
		expectedPct   *float64
	}{
		{
			name:          "Ambos presentes",
			current:       domain.Float(120),
			previous:      domain.Float(100),
			expectedDelta: domain.Float(20),
			expectedPct:   domain.Float(0.2),
		},
		{
			name:          "Anterior nulo - delta e pct nulos",
			current:       domain.Float(120),
			previous:      nil,
			expectedDelta: nil,
			expectedPct:   nil,
		},
		{
			name:          "Atual nulo - delta e pct nulos",
			current:       nil,
			previous:      domain.Float(100),
			expectedDelta: nil,
			expectedPct:   nil,
		},
		{
			name:          "Anterior zero - pct nulo, não zero",
			current:       domain.Float(50),
			previous:      domain.Float(0),
			expectedDelta: domain.Float(50),
			expectedPct:   nil,
		},
		{
			name:          "Queda",
			current:       domain.Float(80),
			previous:      domain.Float(100),
			expectedDelta: domain.Float(-20),
			expectedPct:   domain.Float(-0.2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare(tt.current, tt.previous)

			assert.Equal(t, tt.current, result.Current)
			assert.Equal(t, tt.previous, result.Previous)
			if tt.expectedDelta == nil {
				assert.Nil(t, result.Delta)
			} else {
				require.NotNil(t, result.Delta)
				assert.InDelta(t, *tt.expectedDelta, *result.Delta, 1e-9)
			}
			if tt.expectedPct == nil {
				assert.Nil(t, result.PctChange)
			} else {
				require.NotNil(t, result.PctChange)
				assert.InDelta(t, *tt.expectedPct, *result.PctChange, 1e-9)
			}
		})
	}
}

func TestCompare_DeltaIsDifferenceForAnyValues(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := gofakeit.Float64Range(-1e5, 1e5)
		p := gofakeit.Float64Range(-1e5, 1e5)

		result := Compare(&c, &p)

		require.NotNil(t, result.Delta)
		assert.Equal(t, c-p, *result.Delta)
	}
}

func TestCompare_PctDoesNotUseSafeDivisionDefault(t *testing.T) {
	current, previous := domain.Float(10), domain.Float(0)

	result := Compare(current, previous)

	// A divisão segura devolveria 0 para o mesmo par; a variação deve ser nula
	assert.Equal(t, 0.0, Divide(result.Delta, previous))
	assert.Nil(t, result.PctChange)
}

func TestReshape(t *testing.T) {
	rows := []domain.AggregatedRow{
		{Period: domain.PeriodCurrent, Dimension: "Meta", Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(30)}},
		{Period: domain.PeriodCurrent, Dimension: "Google", Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(10)}},
		{Period: domain.PeriodPrevious, Dimension: "Google", Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(5)}},
		{Period: domain.PeriodCurrent, Dimension: domain.TotalKey, Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(40)}},
		{Period: domain.PeriodPrevious, Dimension: domain.TotalKey, Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(5)}},
		{Period: domain.PeriodPrevious, Dimension: "Bing", Values: map[domain.Metric]*float64{domain.MetricClicks: domain.Float(7)}},
	}

	table, err := Reshape(rows, domain.AccountTypeLeadGen)
	require.NoError(t, err)

	keys := make([]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"Bing", "Google", "Meta", domain.TotalKey}, keys)
	assert.Contains(t, table.Columns, "Clicks__current")
	assert.Contains(t, table.Columns, "CPA__pct")
	assert.Len(t, table.Columns, 8*4)

	google, ok := table.Row("Google")
	require.True(t, ok)
	assert.Equal(t, 10.0, *google.Values["Clicks__current"])
	assert.Equal(t, 5.0, *google.Values["Clicks__previous"])
	assert.Equal(t, 5.0, *google.Values["Clicks__delta"])
	assert.Equal(t, 1.0, *google.Values["Clicks__pct"])

	meta, ok := table.Row("Meta")
	require.True(t, ok)
	assert.Nil(t, meta.Values["Clicks__previous"])
	assert.Nil(t, meta.Values["Clicks__delta"])
	assert.Nil(t, meta.Values["Clicks__pct"])

	bing, ok := table.Row("Bing")
	require.True(t, ok)
	assert.Nil(t, bing.Values["Clicks__current"])
	assert.Equal(t, 7.0, *bing.Values["Clicks__previous"])
}

func TestReshape_UnknownAccountType(t *testing.T) {
	_, err := Reshape(nil, domain.AccountType("x"))
	assert.ErrorIs(t, err, ErrUnknownAccountType)
}
