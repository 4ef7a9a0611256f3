package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name         string
		db           Pinger
		wantStatus   int
		wantHealth   string
		wantDatabase string
	}{
		{
			name:         "Banco respondendo",
			db:           pingerFunc(func(ctx context.Context) error { return nil }),
			wantStatus:   http.StatusOK,
			wantHealth:   "ok",
			wantDatabase: "ok",
		},
		{
			name:         "Banco fora do ar",
			db:           pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			wantStatus:   http.StatusServiceUnavailable,
			wantHealth:   "degraded",
			wantDatabase: "unavailable",
		},
		{
			name:         "Sem conexão configurada",
			wantStatus:   http.StatusOK,
			wantHealth:   "ok",
			wantDatabase: "not_configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body healthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantHealth, body.Status)
			assert.Equal(t, tt.wantDatabase, body.Database)
			assert.False(t, body.Time.IsZero())
		})
	}
}

func TestHealthcheckHandler_PingComPrazo(t *testing.T) {
	var hasDeadline bool
	db := pingerFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	HealthcheckHandler(db).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.True(t, hasDeadline)
}
