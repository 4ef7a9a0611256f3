package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/internal/api/handler"
	"github.com/vfg2006/annual-summary-api/internal/api/handler/router"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/scheduler"
	"github.com/vfg2006/annual-summary-api/internal/usecases/auditing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authenticating"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	auditor    auditing.Recorder
}

func New(
	config *config.Config,
	db handler.Pinger,
	authenticator authenticating.Authenticator,
	summarizer summarizing.Summarizer,
	guard authorizing.AccessGuard,
	auditor auditing.Recorder,
	auditRetentionService *scheduler.AuditRetentionService,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if auditRetentionService != nil {
		cronServices.AuditRetentionService = auditRetentionService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.AnnualSummary(summarizer, guard)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(config.App.IsDevelopment()),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		auditor: auditor,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

const shutdownTimeout = 15 * time.Second

// Run atende até SIGINT/SIGTERM ou até ctx ser cancelado
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor do relatório anual iniciando")
		serveErr <- s.httpServer.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Servidor HTTP parou inesperadamente")
			runErr = err
		}
	case <-ctx.Done():
		logrus.Info("Encerramento solicitado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}
	return runErr
}

// Shutdown para de aceitar requisições e grava as visualizações ainda pendentes,
// mesmo quando o desligamento do HTTP falha.
func (s Server) Shutdown(ctx context.Context) error {
	logrus.WithField("timeout", shutdownTimeout).Info("Desligando o servidor")

	err := s.httpServer.Shutdown(ctx)

	if s.auditor != nil {
		s.auditor.Wait()
		logrus.Info("Registros de visualização pendentes gravados")
	}

	return err
}
