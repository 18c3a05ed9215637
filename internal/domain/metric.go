package domain

import (
	"fmt"
	"strings"
)

// AccountType define quais contadores existem e quais métricas derivadas são calculadas
type AccountType string

const (
	AccountTypeLeadGen   AccountType = "Lead Gen"
	AccountTypeEcommerce AccountType = "Ecommerce"
)

// ParseAccountType aceita os rótulos usados na planilha de configuração
func ParseAccountType(raw string) (AccountType, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), ""))
	switch normalized {
	case "leadgen", "lead-gen":
		return AccountTypeLeadGen, nil
	case "ecommerce", "e-commerce":
		return AccountTypeEcommerce, nil
	}

	return "", fmt.Errorf("tipo de conta desconhecido: %q", raw)
}

// Metric é o nome de exibição de uma métrica do relatório
type Metric string

const (
	MetricImpressions        Metric = "Impressions"
	MetricClicks             Metric = "Clicks"
	MetricCost               Metric = "Cost"
	MetricConversions        Metric = "Conversions"
	MetricTransactions       Metric = "Transactions"
	MetricTransactionRevenue Metric = "Transaction Revenue"
	MetricCTR                Metric = "CTR"
	MetricCPC                Metric = "CPC"
	MetricConversionRate     Metric = "Conversion Rate"
	MetricCPA                Metric = "CPA"
	MetricROAS               Metric = "ROAS"
)

// MetricKind determina a formatação de uma métrica
type MetricKind int

const (
	MetricKindInteger MetricKind = iota
	MetricKindCurrency
	MetricKindPercentage
)

var metricKinds = map[Metric]MetricKind{
	MetricImpressions:        MetricKindInteger,
	MetricClicks:             MetricKindInteger,
	MetricConversions:        MetricKindInteger,
	MetricTransactions:       MetricKindInteger,
	MetricCost:               MetricKindCurrency,
	MetricTransactionRevenue: MetricKindCurrency,
	MetricCPC:                MetricKindCurrency,
	MetricCPA:                MetricKindCurrency,
	MetricCTR:                MetricKindPercentage,
	MetricConversionRate:     MetricKindPercentage,
	MetricROAS:               MetricKindPercentage,
}

// Kind retorna o tipo de formatação da métrica
func (m Metric) Kind() MetricKind {
	return metricKinds[m]
}

// Counter identifica um contador bruto de um RawRecord
type Counter int

const (
	CounterImpressions Counter = iota
	CounterClicks
	CounterCost
	CounterConversions
	CounterRevenue
)

// Column retorna a coluna canônica que alimenta o contador
func (c Counter) Column() Column {
	switch c {
	case CounterImpressions:
		return ColumnImpressions
	case CounterClicks:
		return ColumnClicks
	case CounterCost:
		return ColumnCost
	case CounterConversions:
		return ColumnConversions
	case CounterRevenue:
		return ColumnRevenue
	}
	return ""
}

// CounterMetric liga um contador bruto ao nome da métrica para o tipo de conta
type CounterMetric struct {
	Counter Counter
	Metric  Metric
}

// MetricSet é a definição estática das métricas de um tipo de conta
type MetricSet struct {
	Counters []CounterMetric
	// Conversion é a métrica usada como "conversão" nas razões (Conversions ou Transactions)
	Conversion Metric
	// Revenue fica vazio quando o tipo de conta não possui receita
	Revenue Metric
	Derived []Metric
	Order   []Metric
}

var metricSets = map[AccountType]MetricSet{
	AccountTypeLeadGen: {
		Counters: []CounterMetric{
			{Counter: CounterImpressions, Metric: MetricImpressions},
			{Counter: CounterClicks, Metric: MetricClicks},
			{Counter: CounterCost, Metric: MetricCost},
			{Counter: CounterConversions, Metric: MetricConversions},
		},
		Conversion: MetricConversions,
		Derived:    []Metric{MetricCTR, MetricCPC, MetricConversionRate, MetricCPA},
		Order: []Metric{
			MetricImpressions, MetricClicks, MetricCost, MetricConversions,
			MetricCTR, MetricCPC, MetricConversionRate, MetricCPA,
		},
	},
	AccountTypeEcommerce: {
		Counters: []CounterMetric{
			{Counter: CounterImpressions, Metric: MetricImpressions},
			{Counter: CounterClicks, Metric: MetricClicks},
			{Counter: CounterCost, Metric: MetricCost},
			{Counter: CounterConversions, Metric: MetricTransactions},
			{Counter: CounterRevenue, Metric: MetricTransactionRevenue},
		},
		Conversion: MetricTransactions,
		Revenue:    MetricTransactionRevenue,
		Derived:    []Metric{MetricCTR, MetricCPC, MetricConversionRate, MetricCPA, MetricROAS},
		Order: []Metric{
			MetricImpressions, MetricClicks, MetricCost, MetricTransactions, MetricTransactionRevenue,
			MetricCTR, MetricCPC, MetricConversionRate, MetricCPA, MetricROAS,
		},
	},
}

// MetricSet retorna a definição de métricas do tipo de conta
func (t AccountType) MetricSet() (MetricSet, bool) {
	set, ok := metricSets[t]
	return set, ok
}

// Valid indica se o tipo de conta possui definição de métricas
func (t AccountType) Valid() bool {
	_, ok := metricSets[t]
	return ok
}
