package dispatching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-report/internal/config"
	"github.com/vfg2006/performance-report/internal/domain"
	"github.com/vfg2006/performance-report/internal/usecases/dispatching/mocks"
	"go.uber.org/mock/gomock"
)

type stubEngine struct {
	err   error
	calls int
}

func (e *stubEngine) Build(client domain.Client, set domain.RecordSet, today time.Time) (*domain.FunnelReport, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return &domain.FunnelReport{
		Window: domain.ReportWindow{
			Today:          today,
			ReportingStart: date(2025, time.April, 1),
			ReportingEnd:   date(2025, time.April, 19),
			ComparisonMode: domain.MonthOverMonth,
		},
		Report:  domain.Report{AccountType: client.AccountType, Rows: []domain.ReportRow{{Key: domain.TotalKey}}},
		RunRate: domain.RunRate{Available: true, Display: "£1,500.00"},
	}, nil
}

type fixture struct {
	clients   *mocks.MockClientSource
	data      *mocks.MockDataSource
	plans     *mocks.MockPlanSource
	commenter *mocks.MockCommentator
	notifier  *mocks.MockNotifier
	runs      *mocks.MockRunRepository
	recorder  *mocks.MockRecorder
	engine    *stubEngine
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		clients:   mocks.NewMockClientSource(ctrl),
		data:      mocks.NewMockDataSource(ctrl),
		plans:     mocks.NewMockPlanSource(ctrl),
		commenter: mocks.NewMockCommentator(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		runs:      mocks.NewMockRunRepository(ctrl),
		recorder:  mocks.NewMockRecorder(ctrl),
		engine:    &stubEngine{},
	}

	cfg := &config.Config{App: config.App{Timezone: "UTC"}}
	f.service = NewService(cfg, f.clients, f.data, f.plans, f.engine, f.notifier).
		WithCommentator(f.commenter).
		WithHistory(f.runs).
		WithMetrics(f.recorder)
	f.service.now = func() time.Time { return time.Date(2025, time.April, 21, 7, 0, 0, 0, time.UTC) }

	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testClients() []domain.Client {
	return []domain.Client{
		{Name: "Acme", AccountType: domain.AccountTypeEcommerce, ReportDueDay: "Monday", PlanURL: "https://docs.google.com/spreadsheets/d/abc/edit", DataConfig: true},
		{Name: "Globex", AccountType: domain.AccountTypeLeadGen, ReportDueDay: "monday", DataConfig: true},
		{Name: "Initech", AccountType: domain.AccountTypeLeadGen, ReportDueDay: "Tuesday", DataConfig: true},
	}
}

func testPlan() *domain.Plan {
	ended := date(2025, time.March, 15)
	active := date(2025, time.May, 30)
	return &domain.Plan{Title: "Q2", Current: true, Tasks: []domain.PlanTask{
		{Name: "Old audit", EndDate: &ended},
		{Name: "PMax restructure", EndDate: &active, Category: domain.PlanCategoryActiveWorkstream},
	}}
}

func validCommentary() *domain.Commentary {
	return &domain.Commentary{
		PerformanceOverview: domain.PerformanceOverview{Summary: "Good month."},
		PerformancePoints:   []domain.PerformancePoint{{Title: "a", Summary: "a"}, {Title: "b", Summary: "b"}, {Title: "c", Summary: "c"}},
	}
}

func TestService_RunBatch(t *testing.T) {
	ctx := context.Background()
	today := date(2025, time.April, 21)

	tests := []struct {
		name     string
		opts     RunOptions
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, result *domain.BatchResult, err error)
	}{
		{
			name: "Falha de um cliente não interrompe o lote",
			opts: RunOptions{Today: today},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(testClients()[:2], nil)

				f.plans.EXPECT().GetPlan(ctx, gomock.Any()).Return(testPlan(), nil)
				f.data.EXPECT().GetRecords(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, c domain.Client) (domain.RecordSet, error) {
						if c.Name == "Globex" {
							return domain.RecordSet{}, errors.New("aba não encontrada")
						}
						return domain.RecordSet{}, nil
					}).Times(2)

				f.commenter.EXPECT().Generate(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.CommentaryRequest) (*domain.Commentary, error) {
						assert.Equal(t, "01/04/2025", req.Inputs.ReportStartDate)
						assert.Equal(t, domain.MonthOverMonth, req.Inputs.ComparisonPeriod)
						require.Len(t, req.Inputs.Plan, 1)
						assert.Equal(t, "PMax restructure", req.Inputs.Plan[0].Name)
						return validCommentary(), nil
					})
				f.notifier.EXPECT().Notify(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, report domain.ClientReport) error {
						assert.Equal(t, "Acme", report.Client.Name)
						assert.NotNil(t, report.Commentary)
						return nil
					})

				f.recorder.EXPECT().ObserveBuildDuration(gomock.Any())
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSent, "")
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSkipped, domain.StageFunnel)
				f.runs.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, result.Sent)
				assert.Equal(t, 1, result.Skipped)
				require.Len(t, result.Runs, 2)
				assert.NotEmpty(t, result.BatchID)

				sent := result.Runs[0]
				assert.Equal(t, domain.ReportRunStatusSent, sent.Status)
				assert.Equal(t, "£1,500.00", sent.RunRate)
				assert.Equal(t, date(2025, time.April, 1), sent.PeriodStart)
				assert.NotNil(t, sent.Report)
				assert.NotEmpty(t, sent.ID)

				skipped := result.Runs[1]
				assert.Equal(t, "Globex", skipped.ClientName)
				assert.Equal(t, domain.StageFunnel, skipped.Stage)
				assert.Contains(t, skipped.Error, "aba não encontrada")
				assert.Nil(t, skipped.Report)
			},
		},
		{
			name: "Falha no envio registra o estágio notify",
			opts: RunOptions{Today: today, Client: "globex"},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
				f.data.EXPECT().GetRecords(ctx, gomock.Any()).Return(domain.RecordSet{}, nil)
				f.commenter.EXPECT().Generate(ctx, gomock.Any()).Return(validCommentary(), nil)
				f.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(errors.New("smtp indisponível"))
				f.recorder.EXPECT().ObserveBuildDuration(gomock.Any())
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSkipped, domain.StageNotify)
				f.runs.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, run domain.ReportRun) error {
						assert.Equal(t, domain.StageNotify, run.Stage)
						assert.Equal(t, "£1,500.00", run.RunRate)
						return nil
					})
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, result.Sent)
				assert.Equal(t, 1, result.Skipped)
			},
		},
		{
			name: "Falha no comentário não envia o e-mail",
			opts: RunOptions{Today: today, Client: "Globex"},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
				f.data.EXPECT().GetRecords(ctx, gomock.Any()).Return(domain.RecordSet{}, nil)
				f.commenter.EXPECT().Generate(ctx, gomock.Any()).Return(nil, errors.New("throttled"))
				f.recorder.EXPECT().ObserveBuildDuration(gomock.Any())
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSkipped, domain.StageCommentary)
				f.runs.EXPECT().Save(ctx, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StageCommentary, result.Runs[0].Stage)
			},
		},
		{
			name: "Falha no plano interrompe antes do funil",
			opts: RunOptions{Today: today, Client: "Acme"},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
				f.plans.EXPECT().GetPlan(ctx, gomock.Any()).Return(nil, errors.New("cabeçalho não encontrado"))
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSkipped, domain.StagePlan)
				f.runs.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db fora"))
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.StagePlan, result.Runs[0].Stage)
				assert.True(t, result.Runs[0].PeriodStart.IsZero())
				assert.Equal(t, 0, f.engine.calls)
			},
		},
		{
			name: "Processa todos os clientes independente do dia de envio configurado",
			opts: RunOptions{Today: date(2025, time.April, 23)},
			setup: func(f *fixture) {
				clients := testClients()[1:]
				f.clients.EXPECT().GetClients(ctx).Return(clients, nil)
				f.data.EXPECT().GetRecords(ctx, gomock.Any()).Return(domain.RecordSet{}, nil).Times(2)
				f.commenter.EXPECT().Generate(ctx, gomock.Any()).Return(validCommentary(), nil).Times(2)
				f.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil).Times(2)
				f.recorder.EXPECT().ObserveBuildDuration(gomock.Any()).Times(2)
				f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSent, "").Times(2)
				f.runs.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, result.Sent)
			},
		},
		{
			name: "Lista de clientes vazia",
			opts: RunOptions{Today: today},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return([]domain.Client{}, nil)
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Runs)
			},
		},
		{
			name: "Cliente inexistente",
			opts: RunOptions{Today: today, Client: "Umbrella"},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				assert.ErrorIs(t, err, ErrClientNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Erro ao obter clientes",
			opts: RunOptions{Today: today},
			setup: func(f *fixture) {
				f.clients.EXPECT().GetClients(ctx).Return(nil, errors.New("quota excedida"))
			},
			validate: func(t *testing.T, f *fixture, result *domain.BatchResult, err error) {
				assert.ErrorContains(t, err, "quota excedida")
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.RunBatch(ctx, tt.opts)
			tt.validate(t, f, result, err)
		})
	}
}

func TestService_RunBatch_CanceledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)

	result, err := f.service.RunBatch(ctx, RunOptions{Today: date(2025, time.April, 21)})

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Empty(t, result.Runs)
}

func TestService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("Monta o relatório sem comentário e sem envio", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
		f.plans.EXPECT().GetPlan(ctx, gomock.Any()).Return(testPlan(), nil)
		f.data.EXPECT().GetRecords(ctx, gomock.Any()).Return(domain.RecordSet{}, nil)
		f.recorder.EXPECT().ObserveBuildDuration(gomock.Any())
		f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusPreview, "")

		report, err := f.service.Preview(ctx, "ACME", time.Time{})

		require.NoError(t, err)
		assert.Equal(t, "01/04/2025", report.StartDate)
		assert.Equal(t, "19/04/2025", report.EndDate)
		assert.Nil(t, report.Commentary)
		assert.Nil(t, report.SiteContext)
		require.Len(t, report.Plan, 1)
		assert.Equal(t, "PMax restructure", report.Plan[0].Name)
	})

	t.Run("Erro do motor", func(t *testing.T) {
		f := newFixture(t)
		f.engine.err = errors.New("required column missing: Cost")
		f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)
		f.data.EXPECT().GetRecords(ctx, gomock.Any()).Return(domain.RecordSet{}, nil)
		f.recorder.EXPECT().ObserveRun(domain.ReportRunStatusSkipped, domain.StageFunnel)

		_, err := f.service.Preview(ctx, "Globex", date(2025, time.April, 21))

		var stageErr *StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, "Globex", stageErr.Client)
		assert.Equal(t, domain.StageFunnel, stageErr.Stage)
	})

	t.Run("Cliente inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.clients.EXPECT().GetClients(ctx).Return(testClients(), nil)

		_, err := f.service.Preview(ctx, "Umbrella", time.Time{})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

func TestService_FindClient(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		clientName  string
		sourceErr   error
		expected    string
		expectedErr error
	}{
		{name: "Nome ignora caixa e espaços", clientName: " globex ", expected: "Globex"},
		{name: "Cliente inexistente", clientName: "Umbrella", expectedErr: ErrClientNotFound},
		{name: "Falha na fonte de clientes", clientName: "Acme", sourceErr: errors.New("quota")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.clients.EXPECT().GetClients(ctx).Return(testClients(), tt.sourceErr)

			client, err := f.service.FindClient(ctx, tt.clientName)

			switch {
			case tt.sourceErr != nil:
				assert.ErrorIs(t, err, tt.sourceErr)
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, client.Name)
			}
		})
	}
}

func TestStageError(t *testing.T) {
	base := errors.New("boom")
	err := newStageError("Acme", domain.StagePlan, base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "Acme: estágio plan: boom", err.Error())
	assert.Equal(t, domain.StagePlan, StageOf(err))
	assert.Equal(t, "", StageOf(base))
}
