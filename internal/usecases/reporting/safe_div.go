package reporting

import "math"

type divideOptions struct {
	multiplier   float64
	defaultValue float64
}

// DivideOption configura Divide e DivideEach
type DivideOption func(*divideOptions)

// WithMultiplier multiplica o quociente (100 para percentuais)
func WithMultiplier(m float64) DivideOption {
	return func(o *divideOptions) {
		o.multiplier = m
	}
}

// WithDefault define o valor devolvido quando a divisão é indefinida
func WithDefault(d float64) DivideOption {
	return func(o *divideOptions) {
		o.defaultValue = d
	}
}

func newDivideOptions(opts []DivideOption) divideOptions {
	o := divideOptions{multiplier: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Divide calcula (numerator / denominator) * multiplier.
// Denominador zero, ausente ou NaN, e numerador ausente ou NaN, devolvem o valor padrão.
func Divide(numerator, denominator *float64, opts ...DivideOption) float64 {
	return divide(numerator, denominator, newDivideOptions(opts))
}

// DivideEach aplica Divide elemento a elemento; posições sem par são tratadas como ausentes
func DivideEach(numerators, denominators []*float64, opts ...DivideOption) []float64 {
	o := newDivideOptions(opts)

	size := len(numerators)
	if len(denominators) > size {
		size = len(denominators)
	}

	out := make([]float64, size)
	for i := range out {
		var n, d *float64
		if i < len(numerators) {
			n = numerators[i]
		}
		if i < len(denominators) {
			d = denominators[i]
		}
		out[i] = divide(n, d, o)
	}
	return out
}

func divide(numerator, denominator *float64, o divideOptions) float64 {
	if numerator == nil || denominator == nil {
		return o.defaultValue
	}
	n, d := *numerator, *denominator
	if math.IsNaN(n) || math.IsNaN(d) || d == 0 {
		return o.defaultValue
	}

	result := (n / d) * o.multiplier
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return o.defaultValue
	}
	return result
}
