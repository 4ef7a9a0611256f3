package middleware

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"github.com/vfg2006/annual-summary-api/pkg/log"
)

// CorrelationIDHeader é devolvido em toda resposta; quando o cliente envia, é reaproveitado
const CorrelationIDHeader = "X-Correlation-ID"

// Acima disso a requisição também é registrada como lenta
const slowRequestThreshold = 3 * time.Second

// LoggingMiddleware registra o fim de cada requisição com o usuário e a empresa consultada.
// Deve ser o primeiro da cadeia para que o LogPanicMiddleware enxergue os mesmos campos.
func LoggingMiddleware(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			ctx = log.WithRequestFields(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": sw.status,
				"duration_ms": elapsed.Milliseconds(),
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			})

			msg := "Requisição finalizada"
			if development {
				msg = fmt.Sprintf("%s %s %d em %s", r.Method, r.URL.Path, sw.status, elapsed.Round(time.Millisecond))
			}

			switch {
			case sw.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case sw.status >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// LogPanicMiddleware converte um panic em 500 no formato de erro da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"panic":  fmt.Sprint(recovered),
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				}).Error("Panic ao processar a requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// AnnotateCompany marca a empresa resolvida para os logs da requisição
func AnnotateCompany(ctx context.Context, company string) {
	log.AddRequestField(ctx, log.CompanyField, company)
}

func annotateUser(ctx context.Context, userID string) {
	log.AddRequestField(ctx, log.UserIDField, userID)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
