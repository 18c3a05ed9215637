package reporting

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/performance-report/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrencySymbol = "£"
	// UndefinedPct é exibido quando a variação percentual não está definida
	UndefinedPct = "-"
)

// Formatter converte valores numéricos em strings de exibição
type Formatter struct {
	currencySymbol string
	printer        *message.Printer
}

// NewFormatter cria um Formatter com o símbolo de moeda informado
func NewFormatter(currencySymbol string) *Formatter {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}
	return &Formatter{
		currencySymbol: currencySymbol,
		printer:        message.NewPrinter(language.BritishEnglish),
	}
}

// Integer formata com separador de milhar, arredondando para o par mais próximo. Nulo vira "0".
func (f *Formatter) Integer(v *float64) string {
	if !defined(v) {
		return "0"
	}
	n := decimal.NewFromFloat(*v).RoundBank(0).IntPart()
	return f.printer.Sprintf("%d", n)
}

// Currency formata como moeda com duas casas e o sinal após o símbolo ("£-150.00").
// Nulo vira "£0.00".
func (f *Formatter) Currency(v *float64) string {
	if !defined(v) {
		return f.currencySymbol + "0.00"
	}

	formatted := f.printer.Sprintf("%.2f", *v)
	if formatted == "-0.00" {
		formatted = "0.00"
	}
	return f.currencySymbol + formatted
}

// Percentage formata com duas casas e sufixo %. Nulo vira "0.00%".
func (f *Formatter) Percentage(v *float64) string {
	if !defined(v) {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// PctChange formata a variação (fração) como percentual com sinal explícito para positivos.
// Variação indefinida vira "-".
func (f *Formatter) PctChange(v *float64) string {
	if !defined(v) {
		return UndefinedPct
	}
	pct := *v * 100
	if pct > 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// Value formata de acordo com o tipo da métrica
func (f *Formatter) Value(kind domain.MetricKind, v *float64) string {
	switch kind {
	case domain.MetricKindCurrency:
		return f.Currency(v)
	case domain.MetricKindPercentage:
		return f.Percentage(v)
	default:
		return f.Integer(v)
	}
}

// Format monta o Report a partir da tabela larga, mantendo os valores numéricos
func (f *Formatter) Format(table domain.WideTable, accountType domain.AccountType, dimension string) (domain.Report, error) {
	metricSet, ok := accountType.MetricSet()
	if !ok {
		return domain.Report{}, NewConfigurationError(ErrUnknownAccountType, "", string(accountType))
	}

	report := domain.Report{
		AccountType: accountType,
		Dimension:   dimension,
		Rows:        make([]domain.ReportRow, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		reportRow := domain.ReportRow{
			Key:     row.Key,
			Metrics: make([]domain.ReportMetric, 0, len(metricSet.Order)),
		}

		for _, m := range metricSet.Order {
			values := row.Comparison(m)
			kind := m.Kind()
			reportRow.Metrics = append(reportRow.Metrics, domain.ReportMetric{
				Metric: m,
				Values: values,
				Display: domain.MetricDisplay{
					Current:  f.Value(kind, values.Current),
					Previous: f.Value(kind, values.Previous),
					Delta:    f.Value(kind, values.Delta),
					Pct:      f.PctChange(values.PctChange),
				},
			})
		}

		report.Rows = append(report.Rows, reportRow)
	}

	return report, nil
}

func defined(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
