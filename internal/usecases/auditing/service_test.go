package auditing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository/mocks"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func newAuditService(t *testing.T, enabled bool) (*Service, *mocks.MockAuditLogRepository) {
	ctrl := gomock.NewController(t)
	auditRepo := mocks.NewMockAuditLogRepository(ctrl)

	service := NewService(auditRepo, &config.Config{AuditLog: config.AuditLog{Enabled: enabled}})
	service.now = func() time.Time { return fixedNow }
	return service, auditRepo
}

func TestService_Record(t *testing.T) {
	filters := domain.FilterSet{
		Company:    "ACME",
		Period:     domain.CalendarYear(2024),
		Dimensions: map[domain.Dimension][]string{domain.DimensionCostCenter: {"Main - ACME"}},
	}
	caller := &domain.Caller{UserID: "maria@acme.com"}

	t.Run("Grava a visualização com os filtros e o tipo de período", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, entry *domain.DashboardViewLog) error {
				assert.NoError(t, ctx.Err())
				assert.Equal(t, "maria@acme.com", entry.User)
				assert.Equal(t, "ACME", entry.Company)
				assert.Equal(t, 2024, entry.Year)
				assert.Equal(t, fixedNow, entry.ViewedAt)
				assert.Equal(t, []string{"Main - ACME"}, entry.Filters["cost_centers"])
				assert.Equal(t, "weekly", entry.Filters["period_type"])
				return nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		service.Record(ctx, caller, filters, domain.PeriodWeekly)
		// A requisição termina antes da gravação
		cancel()

		service.Wait()
	})

	t.Run("Falha na gravação não é propagada", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

		assert.NotPanics(t, func() {
			service.Record(context.Background(), caller, filters, domain.PeriodMonthly)
			service.Wait()
		})
	})

	t.Run("Tabela ausente é ignorada", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repository.ErrTableNotFound)

		service.Record(context.Background(), caller, filters, domain.PeriodMonthly)
		service.Wait()
	})

	t.Run("Auditoria desabilitada não grava", func(t *testing.T) {
		service, _ := newAuditService(t, false)

		service.Record(context.Background(), caller, filters, domain.PeriodMonthly)
		service.Wait()
	})
}

func TestService_Prune(t *testing.T) {
	t.Run("Remove registros anteriores à retenção", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().DeleteOlderThan(gomock.Any(), fixedNow.AddDate(0, 0, -30)).Return(int64(5), nil)

		deleted, err := service.Prune(context.Background(), 30)

		require.NoError(t, err)
		assert.Equal(t, int64(5), deleted)
	})

	t.Run("Retenção zerada não remove nada", func(t *testing.T) {
		service, _ := newAuditService(t, true)

		deleted, err := service.Prune(context.Background(), 0)

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("Tabela ausente não é erro", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrTableNotFound)

		_, err := service.Prune(context.Background(), 30)

		assert.NoError(t, err)
	})

	t.Run("Erro de banco é propagado", func(t *testing.T) {
		service, auditRepo := newAuditService(t, true)

		auditRepo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))

		_, err := service.Prune(context.Background(), 30)

		assert.Error(t, err)
	})
}
