package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"github.com/vfg2006/annual-summary-api/pkg/log"
	"github.com/vfg2006/annual-summary-api/pkg/middleware"
)

// rpcResponse é o envelope usado pelos clientes do ERP em /api/method
type rpcResponse struct {
	Message any `json:"message"`
}

// GetAnnualSummary retorna o relatório anual do dashboard
func GetAnnualSummary(service summarizing.Summarizer) http.HandlerFunc {
	return annualSummary(service, false)
}

// GetAnnualSummaryRPC responde no formato {"message": ...} do ERP
func GetAnnualSummaryRPC(service summarizing.Summarizer) http.HandlerFunc {
	return annualSummary(service, true)
}

func annualSummary(service summarizing.Summarizer, wrapped bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, ok := middleware.CallerFromContext(ctx)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		values, err := requestValues(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		request, err := summarizing.RequestFromQuery(values)
		if err != nil {
			writeUseCaseError(ctx, w, err)
			return
		}

		summary, err := service.GetAnnualSummary(ctx, caller, request)
		if err != nil {
			writeUseCaseError(ctx, w, err)
			return
		}

		middleware.AnnotateCompany(ctx, summary.Company)
		log.ForContext(ctx).WithField("unavailable", summary.Unavailable).Debug("Relatório anual montado")

		if wrapped {
			writeJSON(ctx, w, rpcResponse{Message: summary})
			return
		}
		writeJSON(ctx, w, summary)
	}
}

// requestValues junta a query string com o corpo de um POST no estilo /api/method:
// formulário ou objeto JSON. Listas JSON seguem como texto para o parser de filtros.
func requestValues(r *http.Request) (url.Values, error) {
	if r.Method != http.MethodPost {
		return r.URL.Query(), nil
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.Form, nil
	}

	values := r.URL.Query()

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		return nil, err
	}

	for key, raw := range body {
		switch value := raw.(type) {
		case nil:
		case string:
			values.Set(key, value)
		case []any, map[string]any:
			encoded, err := json.MarshalToString(value)
			if err != nil {
				return nil, err
			}
			values.Set(key, encoded)
		default:
			values.Set(key, fmt.Sprint(value))
		}
	}

	return values, nil
}

// GetDashboardContext retorna a empresa e o ano iniciais da tela
func GetDashboardContext(guard authorizing.AccessGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, ok := middleware.CallerFromContext(ctx)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboardContext, err := guard.Context(ctx, caller)
		if err != nil {
			writeUseCaseError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, dashboardContext)
	}
}
