package reporting

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/performance-report/internal/domain"
)

func TestDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   *float64
		denominator *float64
		opts        []DivideOption
		expected    float64
	}{
		{
			name:        "Divisão simples",
			numerator:   domain.Float(10),
			denominator: domain.Float(4),
			expected:    2.5,
		},
		{
			name:        "Divisão com multiplicador",
			numerator:   domain.Float(10),
			denominator: domain.Float(150),
			opts:        []DivideOption{WithMultiplier(100)},
			expected:    1000.0 / 150.0,
		},
		{
			name:        "Denominador zero devolve o padrão",
			numerator:   domain.Float(10),
			denominator: domain.Float(0),
			expected:    0,
		},
		{
			name:        "Denominador ausente devolve o padrão",
			numerator:   domain.Float(10),
			denominator: nil,
			expected:    0,
		},
		{
			name:        "Denominador NaN devolve o padrão",
			numerator:   domain.Float(10),
			denominator: domain.Float(math.NaN()),
			expected:    0,
		},
		{
			name:        "Numerador ausente devolve o padrão",
			numerator:   nil,
			denominator: domain.Float(5),
			expected:    0,
		},
		{
			name:        "Padrão customizado",
			numerator:   nil,
			denominator: domain.Float(0),
			opts:        []DivideOption{WithDefault(-1)},
			expected:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Divide(tt.numerator, tt.denominator, tt.opts...), 1e-9)
		})
	}
}

func TestDivide_ZeroOrMissingDenominatorForAnyNumerator(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := gofakeit.Float64Range(-1e6, 1e6)
		assert.Equal(t, 0.0, Divide(&n, domain.Float(0)))
		assert.Equal(t, 0.0, Divide(&n, nil))
		assert.Equal(t, 7.0, Divide(&n, nil, WithDefault(7)))
	}
	assert.Equal(t, 0.0, Divide(nil, domain.Float(0)))
	assert.Equal(t, 0.0, Divide(nil, nil))
}

func TestDivideEach(t *testing.T) {
	numerators := []*float64{domain.Float(10), domain.Float(0), nil, domain.Float(3)}
	denominators := []*float64{domain.Float(100), domain.Float(50), domain.Float(10), domain.Float(0)}

	result := DivideEach(numerators, denominators, WithMultiplier(100))

	assert.Len(t, result, 4)
	assert.InDelta(t, 10.0, result[0], 1e-9)
	assert.Equal(t, 0.0, result[1])
	assert.Equal(t, 0.0, result[2])
	assert.Equal(t, 0.0, result[3])

	// Mesma semântica do escalar
	for i := range numerators {
		assert.Equal(t, Divide(numerators[i], denominators[i], WithMultiplier(100)), result[i])
	}
}

func TestDivideEach_MismatchedLengths(t *testing.T) {
	result := DivideEach([]*float64{domain.Float(1), domain.Float(2)}, []*float64{domain.Float(4)}, WithDefault(-1))

	assert.Equal(t, []float64{0.25, -1}, result)
}
