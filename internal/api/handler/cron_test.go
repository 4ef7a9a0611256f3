package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/internal/api/handler/router"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "sync_running": false}
}

var systemManager = &domain.Caller{UserID: "admin@acme.com", Roles: []string{domain.RoleSystemManager}}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		caller        *domain.Caller
		wantStatus    int
		wantTriggered int
	}{
		{
			name:          "Dispara a limpeza do log de visualização",
			method:        http.MethodPost,
			path:          "/v1/cron/audit-log-retention/run",
			caller:        systemManager,
			wantStatus:    http.StatusOK,
			wantTriggered: 1,
		},
		{
			name:          "Dispara todas as rotinas",
			method:        http.MethodPost,
			path:          "/v1/cron/all/run",
			caller:        systemManager,
			wantStatus:    http.StatusOK,
			wantTriggered: 1,
		},
		{
			name:       "Tipo desconhecido",
			method:     http.MethodPost,
			path:       "/v1/cron/meta/run",
			caller:     systemManager,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Management não executa rotinas",
			method:     http.MethodPost,
			path:       "/v1/cron/all/run",
			caller:     manager,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Status das rotinas",
			method:     http.MethodGet,
			path:       "/v1/cron/status",
			caller:     systemManager,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{AuditRetentionService: job})...))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, withCaller(req, tt.caller))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
		})
	}
}

func TestCronStatus_Corpo(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{AuditRetentionService: &fakeCronJob{}})...))

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withCaller(req, systemManager))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"audit-log-retention":{"sync_enabled":true,"sync_running":false}}`, rec.Body.String())
}

func TestRouter_RotaDesconhecida(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...))

	t.Run("Rota inexistente responde JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthcheck", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("Healthcheck responde", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})
}
