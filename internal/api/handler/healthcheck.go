package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/annual-summary-api/pkg/log"
)

// Pinger é satisfeito pela conexão com o banco do ERP
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthStatus struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

const healthcheckTimeout = 2 * time.Second

// HealthcheckHandler responde 503 quando o banco do ERP não responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := healthStatus{Status: "ok", Database: "ok", Time: time.Now().UTC()}

		if db != nil {
			pingCtx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
			defer cancel()

			if err := db.Ping(pingCtx); err != nil {
				log.ForContext(ctx).WithError(err).Warn("Banco do ERP indisponível no healthcheck")
				status.Status, status.Database = "degraded", "unavailable"
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				if err := json.NewEncoder(w).Encode(status); err != nil {
					log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
				}
				return
			}
		} else {
			status.Database = "not_configured"
		}

		writeJSON(ctx, w, status)
	})
}
