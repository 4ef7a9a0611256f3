package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/api"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/scheduler"
	"github.com/vfg2006/annual-summary-api/internal/usecases/auditing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authenticating"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authorizing"
	"github.com/vfg2006/annual-summary-api/internal/usecases/summarizing"
	"github.com/vfg2006/annual-summary-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(log.Options{Level: cfg.App.LogLevel, Development: cfg.App.IsDevelopment()}); err != nil {
		logrus.Warnf("LOG_LEVEL inválido (%s), usando info", cfg.App.LogLevel)
	}
	logrus.WithFields(logrus.Fields{
		"app_env":   cfg.App.Env,
		"log_level": logrus.GetLevel().String(),
	}).Info("Logger configurado")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	documentRepo := repository.NewDocumentRepository(pgConn)
	ledgerRepo := repository.NewLedgerRepository(pgConn)
	hrRepo := repository.NewHRRepository(pgConn)
	auditLogRepo := repository.NewAuditLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	guard := authorizing.NewGuard(companyRepo)
	engine := summarizing.NewEngine(documentRepo, ledgerRepo, hrRepo, cfg.Summary.MaxConcurrentQueries)

	// Registro de visualização roda em background
	auditor := auditing.NewService(auditLogRepo, cfg)

	summarizer := summarizing.NewService(guard, engine, companyRepo, auditor, cfg)

	auditRetentionService := scheduler.NewAuditRetentionService(auditor, cfg)
	if err := auditRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do log de visualização")
	} else {
		logrus.Info("Agendador de limpeza do log de visualização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		authenticator,
		summarizer,
		guard,
		auditor,
		auditRetentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	// Run só retorna depois do Shutdown, que drena as gravações de auditoria
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do código ser encontrado com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
