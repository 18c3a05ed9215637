package sheets

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/internal/domain"
)

// Linhas da aba de configuração, abaixo do cabeçalho com os nomes dos clientes
const (
	configRowAccountType = iota + 1
	configRowDashboard
	configRowBudget
	configRowDimension
	configRowPlan
	configRowReportDueDay
	configRowClientContext
	configRowDataConfig
)

// SkippedClient registra um cliente ignorado e o motivo
type SkippedClient struct {
	Name   string
	Reason string
}

// FactoryClients lê a aba de configuração (uma coluna por cliente).
// Clientes inválidos são ignorados e devolvidos em skipped, sem falhar a lista.
func FactoryClients(values [][]string) ([]domain.Client, []SkippedClient, error) {
	if len(values) == 0 || len(values[0]) < 2 {
		return nil, nil, ErrClientsSheetInvalid
	}

	header := values[0]
	clients := make([]domain.Client, 0, len(header)-1)
	skipped := make([]SkippedClient, 0)

	for col := 1; col < len(header); col++ {
		at := func(row int) string {
			if row >= len(values) {
				return ""
			}
			return strings.TrimSpace(cell(values[row], col))
		}

		accountType, err := domain.ParseAccountType(at(configRowAccountType))
		if err != nil {
			accountType = domain.AccountType(at(configRowAccountType))
		}

		client := domain.Client{
			Name:          strings.TrimSpace(header[col]),
			AccountType:   accountType,
			Dashboard:     at(configRowDashboard),
			Budget:        at(configRowBudget),
			Dimension:     at(configRowDimension),
			PlanURL:       at(configRowPlan),
			ReportDueDay:  at(configRowReportDueDay),
			ClientContext: at(configRowClientContext),
			DataConfig:    !strings.EqualFold(at(configRowDataConfig), "false"),
		}

		if err := client.Validate(); err != nil {
			skipped = append(skipped, SkippedClient{Name: client.Name, Reason: err.Error()})
			logrus.WithFields(logrus.Fields{
				"client": client.Name,
				"column": col,
				"reason": err.Error(),
			}).Warn("sheets: cliente ignorado na configuração")
			continue
		}

		clients = append(clients, client)
	}

	return clients, skipped, nil
}
