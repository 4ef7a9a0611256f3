package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"github.com/vfg2006/annual-summary-api/pkg/log"
)

// Valores aceitos em /v1/cron/:type/run
const (
	CronJobTypeAuditLogRetention = "audit-log-retention"
	CronJobTypeAll               = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices reúne as rotinas que podem ser disparadas pela API
type CronJobServices struct {
	AuditRetentionService CronJob
}

// RunCronJob dispara a rotina em background e responde sem esperar o fim
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("type", cronType).Info("Disparo manual de cron job")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAuditLogRetention:
			if services.AuditRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza do log de visualização não disponível", nil)
				return
			}
			services.AuditRetentionService.TriggerManualSync()

		case CronJobTypeAll:
			if services.AuditRetentionService != nil {
				services.AuditRetentionService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: audit-log-retention, all", nil)
			return
		}

		writeJSON(r.Context(), w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus devolve o estado de cada rotina indexado pelo tipo
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AuditRetentionService != nil {
			status[CronJobTypeAuditLogRetention] = services.AuditRetentionService.GetStatus()
		}

		writeJSON(r.Context(), w, status)
	}
}
