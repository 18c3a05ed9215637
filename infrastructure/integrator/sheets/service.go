package sheets

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-report/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
)

type SheetsIntegrator struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FunnelSheetName é o nome da aba de importação de funil do cliente
func (s *SheetsIntegrator) FunnelSheetName(client domain.Client) string {
	return fmt.Sprintf("%s %s", client.Name, s.cfg.Sheets.FunnelSheetSuffix)
}

// GetRecords lê a aba de funil do cliente
func (s *SheetsIntegrator) GetRecords(ctx context.Context, client domain.Client) (domain.RecordSet, error) {
	sheet := s.FunnelSheetName(client)

	values, err := s.Client.GetValues(ctx, s.cfg.Sheets.SpreadsheetID, sheetsclient.QuoteSheet(sheet))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client": client.Name,
			"sheet":  sheet,
			"error":  err.Error(),
		}).Error("sheets: falha ao ler a aba de funil")
		return domain.RecordSet{}, err
	}

	set, err := FactoryRecordSet(values, s.cfg.Report.Columns, s.cfg.Sheets.DateLayouts, client.AccountType)
	if err != nil {
		return domain.RecordSet{}, fmt.Errorf("aba %q: %w", sheet, err)
	}

	logrus.WithFields(logrus.Fields{
		"client":     client.Name,
		"records":    len(set.Records),
		"dimensions": set.Dimensions,
	}).Debug("sheets: registros de funil carregados")

	return set, nil
}

// GetClients lê a aba de configuração de clientes
func (s *SheetsIntegrator) GetClients(ctx context.Context) ([]domain.Client, error) {
	values, err := s.Client.GetValues(ctx, s.cfg.Sheets.SpreadsheetID, sheetsclient.QuoteSheet(s.cfg.Sheets.ConfigSheet))
	if err != nil {
		logrus.WithError(err).Error("sheets: falha ao ler a aba de configuração")
		return nil, err
	}

	clients, skipped, err := FactoryClients(values)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"clients": len(clients),
		"skipped": len(skipped),
	}).Info("sheets: clientes carregados")

	return clients, nil
}

// GetPlan lê o plano atual (primeira aba) da planilha de plano do cliente
func (s *SheetsIntegrator) GetPlan(ctx context.Context, client domain.Client) (*domain.Plan, error) {
	spreadsheetID, err := sheetsclient.SpreadsheetIDFromURL(client.PlanURL)
	if err != nil {
		return nil, err
	}

	titles, err := s.Client.ListSheets(ctx, spreadsheetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"client": client.Name,
			"error":  err.Error(),
		}).Error("sheets: falha ao listar as abas do plano")
		return nil, err
	}
	if len(titles) == 0 {
		return nil, ErrPlanWithoutSheets
	}

	values, err := s.Client.GetValues(ctx, spreadsheetID, sheetsclient.QuoteSheet(titles[0]))
	if err != nil {
		return nil, err
	}

	plan, err := FactoryPlan(titles[0], values, s.cfg.Sheets.PlanTaskHeaderCell, true)
	if err != nil {
		return nil, fmt.Errorf("plano %q: %w", titles[0], err)
	}

	logrus.WithFields(logrus.Fields{
		"client": client.Name,
		"plan":   plan.Title,
		"tasks":  len(plan.Tasks),
	}).Debug("sheets: plano carregado")

	return plan, nil
}
