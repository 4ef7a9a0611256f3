package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authenticating"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"github.com/vfg2006/annual-summary-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeUseCaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var accessErr *authorizing.AccessError
	if errors.As(err, &accessErr) {
		if apiErrors.StatusFor(accessErr.Code) >= http.StatusInternalServerError {
			log.ForContext(ctx).WithError(err).Error("Erro ao resolver a empresa do relatório")
		}
		apiErrors.WriteError(w, accessErr.Code, accessErr.Error(), nil)
		return
	}

	var summaryErr *summarizing.SummaryError
	if errors.As(err, &summaryErr) {
		var details any
		if summaryErr.Field != "" {
			details = map[string]string{"field": summaryErr.Field}
		}
		apiErrors.WriteError(w, summaryErr.Code, summaryErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(ctx).WithError(err).Error("Erro inesperado ao montar o relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
