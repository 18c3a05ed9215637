package reporting

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var numericReplacer = strings.NewReplacer(
	",", "",
	"£", "",
	"$", "",
	"€", "",
	"%", "",
	" ", "",
	" ", "",
)

// ParseNumber converte uma célula textual em número. Valores vazios ou inválidos são ausentes (nil).
func ParseNumber(raw string) *float64 {
	cleaned := numericReplacer.Replace(strings.TrimSpace(raw))
	if cleaned == "" || cleaned == "-" {
		return nil
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "("), ")")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	if negative {
		d = d.Neg()
	}

	v := d.InexactFloat64()
	return &v
}

// sumValues soma os valores presentes com aritmética decimal; nil quando nenhum valor está presente
func sumValues(values []*float64) *float64 {
	total := decimal.Zero
	present := false
	for _, v := range values {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(*v))
		present = true
	}
	if !present {
		return nil
	}

	f := total.InexactFloat64()
	return &f
}
