package summarizing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/annual-summary-api/infrastructure/repository/mocks"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/mocks"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	guard       *mocks.MockAccessGuard
	aggregator  *mocks.MockAggregator
	companyRepo *repomocks.MockCompanyRepository
	auditor     *mocks.MockRecorder
}

func newService(t *testing.T) (summarizing.Summarizer, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		guard:       mocks.NewMockAccessGuard(ctrl),
		aggregator:  mocks.NewMockAggregator(ctrl),
		companyRepo: repomocks.NewMockCompanyRepository(ctrl),
		auditor:     mocks.NewMockRecorder(ctrl),
	}

	cfg := &config.Config{Summary: config.Summary{DefaultCurrency: "USD"}}
	return summarizing.NewService(m.guard, m.aggregator, m.companyRepo, m.auditor, cfg), m
}

var manager = &domain.Caller{
	UserID:         "maria@acme.com",
	Roles:          []string{domain.RoleManagement},
	DefaultCompany: "ACME Brasil",
}

func TestService_GetAnnualSummary(t *testing.T) {
	t.Run("Monta o relatório com filtros dos dois anos", func(t *testing.T) {
		service, m := newService(t)

		request := &domain.AnnualSummaryRequest{
			Year:       2024,
			PeriodType: "quarterly",
			Dimensions: map[domain.Dimension][]string{
				domain.DimensionCostCenter: {`["Main - ACME", "Main - ACME"]`},
			},
		}

		m.guard.EXPECT().Authorize(gomock.Any(), manager, "").Return("ACME Brasil", nil)
		m.companyRepo.EXPECT().GetDefaultCurrency(gomock.Any(), "ACME Brasil").Return("BRL", nil)
		m.aggregator.EXPECT().
			Aggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, scope summarizing.Scope) *domain.AnnualSummary {
				assert.Equal(t, "ACME Brasil", scope.Current.Company)
				assert.Equal(t, 2024, scope.Current.Period.Year)
				assert.Equal(t, 2023, scope.Previous.Period.Year)
				assert.Equal(t, domain.PeriodQuarterly, scope.PeriodType)
				assert.Equal(t, []string{"Main - ACME"}, scope.Current.Values(domain.DimensionCostCenter))
				assert.Equal(t, []string{"Main - ACME"}, scope.Previous.Values(domain.DimensionCostCenter))
				return &domain.AnnualSummary{HR: domain.HRCounters{Headcount: 12}}
			})
		m.auditor.EXPECT().
			Record(gomock.Any(), manager, gomock.Any(), domain.PeriodQuarterly).
			Do(func(_ context.Context, _ *domain.Caller, filters domain.FilterSet, _ domain.PeriodType) {
				assert.Equal(t, 2024, filters.Period.Year)
				assert.Equal(t, "ACME Brasil", filters.Company)
			})

		summary, err := service.GetAnnualSummary(context.Background(), manager, request)

		require.NoError(t, err)
		assert.Equal(t, "ACME Brasil", summary.Company)
		assert.Equal(t, "BRL", summary.CompanyCurrency)
		assert.Equal(t, "BRL", summary.PresentationCurrency)
		assert.Equal(t, domain.PeriodResponse{Year: 2024, Label: "2024", StartDate: "2024-01-01", EndDate: "2024-12-31"}, summary.CurrentPeriod)
		assert.Equal(t, domain.PeriodResponse{Year: 2023, Label: "2023", StartDate: "2023-01-01", EndDate: "2023-12-31"}, summary.PreviousPeriod)
		assert.Equal(t, 12, summary.HR.Headcount)
	})

	t.Run("Moeda da requisição e fallback da moeda da empresa", func(t *testing.T) {
		service, m := newService(t)

		m.guard.EXPECT().Authorize(gomock.Any(), manager, "ACME Brasil").Return("ACME Brasil", nil)
		m.companyRepo.EXPECT().GetDefaultCurrency(gomock.Any(), "ACME Brasil").Return("", errors.New("timeout"))
		m.aggregator.EXPECT().Aggregate(gomock.Any(), gomock.Any()).Return(&domain.AnnualSummary{})
		m.auditor.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), domain.PeriodMonthly)

		summary, err := service.GetAnnualSummary(context.Background(), manager, &domain.AnnualSummaryRequest{
			Year:     2024,
			Company:  "ACME Brasil",
			Currency: "EUR",
		})

		require.NoError(t, err)
		assert.Equal(t, "USD", summary.CompanyCurrency)
		assert.Equal(t, "EUR", summary.PresentationCurrency)
	})

	t.Run("Acesso negado não consulta nada", func(t *testing.T) {
		service, m := newService(t)

		forbidden := authorizing.NewAccessError(authorizing.ErrCompanyNotPermitted, apiErrors.ErrCompanyNotPermitted, manager.UserID, "ACME Chile")
		m.guard.EXPECT().Authorize(gomock.Any(), manager, "ACME Chile").Return("", forbidden)

		summary, err := service.GetAnnualSummary(context.Background(), manager, &domain.AnnualSummaryRequest{Company: "ACME Chile"})

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, authorizing.ErrCompanyNotPermitted)
	})

	t.Run("Sem empresa configurada é erro de configuração", func(t *testing.T) {
		service, m := newService(t)

		caller := &domain.Caller{UserID: "admin@acme.com", Roles: []string{domain.RoleSystemManager}}
		configErr := authorizing.NewAccessError(authorizing.ErrNoCompanyConfigured, apiErrors.ErrConfiguration, caller.UserID, "")
		m.guard.EXPECT().Authorize(gomock.Any(), caller, "").Return("", configErr)

		_, err := service.GetAnnualSummary(context.Background(), caller, nil)

		var accessErr *authorizing.AccessError
		require.ErrorAs(t, err, &accessErr)
		assert.Equal(t, apiErrors.ErrConfiguration, accessErr.Code)
	})

	t.Run("Lista malformada é rejeitada antes da agregação", func(t *testing.T) {
		service, m := newService(t)

		m.guard.EXPECT().Authorize(gomock.Any(), manager, "").Return("ACME Brasil", nil)

		_, err := service.GetAnnualSummary(context.Background(), manager, &domain.AnnualSummaryRequest{
			Dimensions: map[domain.Dimension][]string{domain.DimensionBranch: {`["Norte"`}},
		})

		assert.ErrorIs(t, err, summarizing.ErrMalformedList)
	})

	t.Run("Parâmetro inválido é rejeitado", func(t *testing.T) {
		service, m := newService(t)

		m.guard.EXPECT().Authorize(gomock.Any(), manager, "").Return("ACME Brasil", nil)

		_, err := service.GetAnnualSummary(context.Background(), manager, &domain.AnnualSummaryRequest{PeriodType: "daily"})

		var summaryErr *summarizing.SummaryError
		require.ErrorAs(t, err, &summaryErr)
		assert.Equal(t, apiErrors.ErrInvalidFormat, summaryErr.Code)
		assert.Equal(t, "period_type", summaryErr.Field)
	})
}
