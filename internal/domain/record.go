package domain

import (
	"time"
)

// Column é o nome canônico de uma coluna da fonte tabular
type Column string

const (
	ColumnDate         Column = "date"
	ColumnImpressions  Column = "impressions"
	ColumnClicks       Column = "clicks"
	ColumnCost         Column = "cost"
	ColumnConversions  Column = "conversions"
	ColumnRevenue      Column = "revenue"
	ColumnSessions     Column = "sessions"
	ColumnTransactions Column = "transactions"
)

// RawRecord é uma linha com data da exportação de funil. Contadores nulos são ausentes, não zero.
type RawRecord struct {
	Date        time.Time         `json:"date"`
	Dimensions  map[string]string `json:"dimensions,omitempty"`
	Impressions *float64          `json:"impressions"`
	Clicks      *float64          `json:"clicks"`
	Cost        *float64          `json:"cost"`
	Conversions *float64          `json:"conversions"`
	Revenue     *float64          `json:"revenue,omitempty"`
	Sessions    *float64          `json:"sessions,omitempty"`
}

// DimensionValue retorna o valor da dimensão pelo nome da coluna
func (r RawRecord) DimensionValue(name string) string {
	if r.Dimensions == nil {
		return ""
	}
	return r.Dimensions[name]
}

// CounterValue retorna o valor bruto de um contador
func (r RawRecord) CounterValue(c Counter) *float64 {
	switch c {
	case CounterImpressions:
		return r.Impressions
	case CounterClicks:
		return r.Clicks
	case CounterCost:
		return r.Cost
	case CounterConversions:
		return r.Conversions
	case CounterRevenue:
		return r.Revenue
	}
	return nil
}

// RecordSet agrupa as linhas lidas de uma tabela com as colunas presentes no cabeçalho
type RecordSet struct {
	Columns    []Column
	Dimensions []string
	Records    []RawRecord
}

// HasColumn indica se a coluna canônica estava presente na fonte
func (s RecordSet) HasColumn(column Column) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// HasDimension indica se a coluna de dimensão estava presente na fonte
func (s RecordSet) HasDimension(name string) bool {
	for _, d := range s.Dimensions {
		if d == name {
			return true
		}
	}
	return false
}

// EarliestDate retorna a menor data do conjunto; false quando vazio
func (s RecordSet) EarliestDate() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, r := range s.Records {
		if !found || r.Date.Before(earliest) {
			earliest = r.Date
			found = true
		}
	}
	return earliest, found
}

// Float cria um ponteiro para o valor informado
func Float(v float64) *float64 {
	return &v
}
