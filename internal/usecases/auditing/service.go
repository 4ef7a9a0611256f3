package auditing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

type Recorder interface {
	Record(ctx context.Context, caller *domain.Caller, filters domain.FilterSet, periodType domain.PeriodType)
	Prune(ctx context.Context, retentionDays int) (int64, error)
	Wait()
}

type Service struct {
	auditRepo repository.AuditLogRepository
	cfg       *config.Config
	now       func() time.Time
	pending   sync.WaitGroup
}

func NewService(auditRepo repository.AuditLogRepository, cfg *config.Config) *Service {
	return &Service{
		auditRepo: auditRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Record grava a visualização do dashboard em segundo plano.
// A gravação não é repetida e nunca afeta a resposta.
func (s *Service) Record(ctx context.Context, caller *domain.Caller, filters domain.FilterSet, periodType domain.PeriodType) {
	if s.cfg != nil && !s.cfg.AuditLog.Enabled {
		return
	}

	payload := filters.AuditPayload()
	payload["period_type"] = string(periodType)

	entry := &domain.DashboardViewLog{
		ViewedAt: s.now(),
		Year:     filters.Period.Year,
		Company:  filters.Company,
		Filters:  payload,
	}
	if caller != nil {
		entry.User = caller.UserID
	}

	detached := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		err := s.auditRepo.Insert(detached, entry)
		switch {
		case err == nil:
			logrus.WithFields(logrus.Fields{"user": entry.User, "company": entry.Company}).Debug("Visualização do dashboard registrada")
		case errors.Is(err, repository.ErrTableNotFound):
			logrus.Debug("Tabela de log de visualização ausente, registro ignorado")
		default:
			logrus.WithError(err).Warn("Erro ao registrar visualização do dashboard")
		}
	}()
}

// Prune remove registros mais antigos que a retenção informada
func (s *Service) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := s.now().AddDate(0, 0, -retentionDays)

	deleted, err := s.auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return deleted, nil
}

// Wait aguarda as gravações em andamento
func (s *Service) Wait() {
	s.pending.Wait()
}
