// Package scheduler contém os serviços de agendamento de manutenção
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/usecases/auditing"
)

type AuditRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// AuditRetentionService remove periodicamente os registros antigos de visualização do dashboard
type AuditRetentionService struct {
	scheduler       *gocron.Scheduler
	auditor         auditing.Recorder
	config          AuditRetentionConfig
	running         bool
	mu              sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastDeleted     int64
}

func NewAuditRetentionService(auditor auditing.Recorder, cfg *config.Config) *AuditRetentionService {
	retentionConfig := AuditRetentionConfig{
		CronSchedule:  cfg.AuditLog.RetentionCron,
		RetentionDays: cfg.AuditLog.RetentionDays,
		Enabled:       cfg.AuditLog.RetentionEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
	}).Info("Configuração do agendador de retenção do log de visualização carregada")

	return &AuditRetentionService{
		scheduler: gocron.NewScheduler(time.Local),
		auditor:   auditor,
		config:    retentionConfig,
	}
}

func (s *AuditRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de retenção do log de visualização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retenção do log de visualização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.PruneAuditLog(ctx); err != nil {
			logrus.WithError(err).Error("Erro na retenção do log de visualização")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção do log de visualização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retenção do log de visualização")
		s.scheduler.Stop()
	}()

	return nil
}

// PruneAuditLog executa a limpeza; uma execução em andamento bloqueia as demais
func (s *AuditRetentionService) PruneAuditLog(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Warn("Retenção do log de visualização já está em execução")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	var deleted int64
	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.lastDeleted = deleted
		s.mu.Unlock()
	}()

	logrus.Info("Iniciando retenção do log de visualização")

	deleted, err := s.auditor.Prune(ctx, s.config.RetentionDays)
	if err != nil {
		return err
	}

	logrus.WithField("deleted", deleted).Info("Retenção do log de visualização concluída")

	return nil
}

// TriggerManualSync inicia manualmente a retenção do log de visualização
func (s *AuditRetentionService) TriggerManualSync() {
	if s.isRunning() {
		logrus.Info("Retenção do log de visualização já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando retenção manual do log de visualização")
	go func() {
		if err := s.PruneAuditLog(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na retenção manual do log de visualização")
		}
	}()
}

func (s *AuditRetentionService) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetStatus mantém as chaves sync_* lidas pelo painel de cron
func (s *AuditRetentionService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.running,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_sync_deleted":      s.lastDeleted,
	}
}
