package summarizing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/internal/usecases/auditing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

const fallbackCurrency = "USD"

type Summarizer interface {
	GetAnnualSummary(ctx context.Context, caller *domain.Caller, request *domain.AnnualSummaryRequest) (*domain.AnnualSummary, error)
}

type Service struct {
	guard       authorizing.AccessGuard
	aggregator  Aggregator
	companyRepo repository.CompanyRepository
	auditor     auditing.Recorder
	cfg         *config.Config
	now         func() time.Time
}

func NewService(
	guard authorizing.AccessGuard,
	aggregator Aggregator,
	companyRepo repository.CompanyRepository,
	auditor auditing.Recorder,
	cfg *config.Config,
) Summarizer {
	return &Service{
		guard:       guard,
		aggregator:  aggregator,
		companyRepo: companyRepo,
		auditor:     auditor,
		cfg:         cfg,
		now:         time.Now,
	}
}

// GetAnnualSummary autoriza o caller, monta os filtros dos dois anos e agrega o relatório.
// Só falhas de acesso e de validação interrompem a requisição.
func (s *Service) GetAnnualSummary(ctx context.Context, caller *domain.Caller, request *domain.AnnualSummaryRequest) (*domain.AnnualSummary, error) {
	if request == nil {
		request = &domain.AnnualSummaryRequest{}
	}

	company, err := s.guard.Authorize(ctx, caller, request.Company)
	if err != nil {
		return nil, err
	}

	if err := ValidateRequest(request); err != nil {
		return nil, err
	}

	periodType, err := domain.ParsePeriodType(request.PeriodType)
	if err != nil {
		return nil, NewSummaryError(ErrInvalidParameter, apiErrors.ErrInvalidFormat, "period_type", err.Error())
	}

	dimensions, err := NormalizeDimensions(request.Dimensions)
	if err != nil {
		return nil, err
	}

	year := request.Year
	if year == 0 {
		year = s.now().Year()
	}

	current, previous := BuildFilters(company, year, dimensions)

	logger := logrus.WithFields(logrus.Fields{
		"user":        caller.UserID,
		"company":     company,
		"year":        year,
		"period_type": periodType,
	})
	logger.Debug("Gerando resumo anual")

	companyCurrency := s.companyCurrency(ctx, company)
	presentationCurrency := request.Currency
	if presentationCurrency == "" {
		presentationCurrency = companyCurrency
	}

	summary := s.aggregator.Aggregate(ctx, Scope{
		Current:    current,
		Previous:   previous,
		PeriodType: periodType,
	})

	summary.Company = company
	summary.CompanyCurrency = companyCurrency
	summary.PresentationCurrency = presentationCurrency
	summary.CurrentPeriod = current.Period.Response()
	summary.PreviousPeriod = previous.Period.Response()

	if len(summary.Unavailable) > 0 {
		logger.WithField("unavailable", summary.Unavailable).Warn("Resumo anual gerado com dados parciais")
	}

	s.auditor.Record(ctx, caller, current, periodType)

	return summary, nil
}

// companyCurrency retorna a moeda da empresa ou a moeda padrão configurada
func (s *Service) companyCurrency(ctx context.Context, company string) string {
	currency, err := s.companyRepo.GetDefaultCurrency(ctx, company)
	if err != nil {
		logrus.WithError(err).WithField("company", company).Warn("Erro ao buscar moeda da empresa")
	}

	if currency != "" {
		return currency
	}

	if s.cfg != nil && s.cfg.Summary.DefaultCurrency != "" {
		return s.cfg.Summary.DefaultCurrency
	}

	return fallbackCurrency
}
