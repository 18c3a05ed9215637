package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/performance-report/infrastructure/database/postgres"
	"github.com/vfg2006/performance-report/internal/domain"
)

const (
	reportRunsTable   = "report_runs"
	reportRunsColumns = "id, batch_id, client_name, period_start, period_end, comparison_mode, status, stage, error, run_rate, report, created_at"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReportRunRepository interface {
	Save(ctx context.Context, run domain.ReportRun) error
	ListRecent(ctx context.Context, limit int) ([]domain.ReportRun, error)
	GetLatestByClient(ctx context.Context, clientName string) (*domain.ReportRun, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type reportRunRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewReportRunRepository(conn postgres.Queryer) ReportRunRepository {
	return &reportRunRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *reportRunRepository) Save(ctx context.Context, run domain.ReportRun) error {
	var report []byte
	if run.Report != nil {
		data, err := json.Marshal(run.Report)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório: %w", err)
		}
		report = data
	}

	query, args, err := squirrel.
		Insert(reportRunsTable).
		Columns("id", "batch_id", "client_name", "period_start", "period_end", "comparison_mode",
			"status", "stage", "error", "run_rate", "report", "created_at").
		Values(run.ID, run.BatchID, run.ClientName, nullTime(run.PeriodStart), nullTime(run.PeriodEnd),
			string(run.ComparisonMode), string(run.Status), run.Stage, run.Error, run.RunRate, report, run.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução do relatório: %w", err)
	}

	return nil
}

func (r *reportRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.ReportRun, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := squirrel.
		Select(reportRunsColumns).
		From(reportRunsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.ReportRun, 0)
	for rows.Next() {
		run, err := scanReportRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, *run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *reportRunRepository) GetLatestByClient(ctx context.Context, clientName string) (*domain.ReportRun, error) {
	query, args, err := squirrel.
		Select(reportRunsColumns).
		From(reportRunsTable).
		Where(squirrel.Eq{"client_name": clientName}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanReportRun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear execução: %w", err)
	}

	return run, nil
}

func (r *reportRunRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(reportRunsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReportRun(row scanner) (*domain.ReportRun, error) {
	var (
		run            domain.ReportRun
		periodStart    sql.NullTime
		periodEnd      sql.NullTime
		comparisonMode string
		status         string
		stage          sql.NullString
		errorMessage   sql.NullString
		runRate        sql.NullString
		report         []byte
	)

	err := row.Scan(
		&run.ID,
		&run.BatchID,
		&run.ClientName,
		&periodStart,
		&periodEnd,
		&comparisonMode,
		&status,
		&stage,
		&errorMessage,
		&runRate,
		&report,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.PeriodStart = periodStart.Time
	run.PeriodEnd = periodEnd.Time
	run.ComparisonMode = domain.ComparisonMode(comparisonMode)
	run.Status = domain.ReportRunStatus(status)
	run.Stage = stage.String
	run.Error = errorMessage.String
	run.RunRate = runRate.String

	if len(report) > 0 {
		run.Report = &domain.Report{}
		if err := json.Unmarshal(report, run.Report); err != nil {
			return nil, fmt.Errorf("erro ao deserializar relatório: %w", err)
		}
	}

	return &run, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
