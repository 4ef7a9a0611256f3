package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/usecases/mocks"
	"go.uber.org/mock/gomock"
)

func retentionConfig(enabled bool) *config.Config {
	return &config.Config{
		AuditLog: config.AuditLog{
			RetentionCron:    "0 2 * * 0",
			RetentionDays:    90,
			RetentionEnabled: enabled,
		},
	}
}

func TestAuditRetentionService_PruneAuditLog(t *testing.T) {
	t.Run("Remove os registros e atualiza o status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auditor := mocks.NewMockRecorder(ctrl)
		auditor.EXPECT().Prune(gomock.Any(), 90).Return(int64(17), nil)

		service := NewAuditRetentionService(auditor, retentionConfig(true))

		err := service.PruneAuditLog(context.Background())

		require.NoError(t, err)
		status := service.GetStatus()
		assert.Equal(t, int64(17), status["last_sync_deleted"])
		assert.Equal(t, false, status["sync_running"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro na limpeza é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auditor := mocks.NewMockRecorder(ctrl)
		auditor.EXPECT().Prune(gomock.Any(), 90).Return(int64(0), errors.New("timeout"))

		service := NewAuditRetentionService(auditor, retentionConfig(true))

		err := service.PruneAuditLog(context.Background())

		assert.Error(t, err)
		assert.Equal(t, false, service.GetStatus()["sync_running"])
	})

	t.Run("Execução em andamento ignora nova chamada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auditor := mocks.NewMockRecorder(ctrl)

		service := NewAuditRetentionService(auditor, retentionConfig(true))
		service.running = true

		err := service.PruneAuditLog(context.Background())

		assert.NoError(t, err)
	})
}

func TestAuditRetentionService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewAuditRetentionService(mocks.NewMockRecorder(ctrl), retentionConfig(false))

		err := service.Start(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := retentionConfig(true)
		cfg.AuditLog.RetentionCron = "todo domingo"
		service := NewAuditRetentionService(mocks.NewMockRecorder(ctrl), cfg)

		err := service.Start(context.Background())

		assert.Error(t, err)
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewAuditRetentionService(mocks.NewMockRecorder(ctrl), retentionConfig(true))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)

		require.NoError(t, err)
		assert.Len(t, service.scheduler.Jobs(), 1)
	})
}
