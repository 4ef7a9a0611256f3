package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/internal/config"
)

// Cria as tabelas do log de visualização em bancos onde o app do dashboard
// não foi instalado pelo ERP (ambiente local e homologação).

const dashboardViewLogTable = "tabDashboard View Log"

var statements = []string{
	`CREATE TABLE IF NOT EXISTS ` + pq.QuoteIdentifier(dashboardViewLogTable) + ` (
		name varchar(140) PRIMARY KEY,
		creation timestamp(6),
		modified timestamp(6),
		modified_by varchar(140),
		owner varchar(140),
		docstatus smallint NOT NULL DEFAULT 0,
		"user" varchar(140),
		viewed_at timestamp(6),
		year integer,
		company varchar(140),
		filters text
	)`,
	`CREATE INDEX IF NOT EXISTS dashboard_view_log_viewed_at_idx ON ` + pq.QuoteIdentifier(dashboardViewLogTable) + ` (viewed_at)`,
	`CREATE INDEX IF NOT EXISTS dashboard_view_log_user_idx ON ` + pq.QuoteIdentifier(dashboardViewLogTable) + ` ("user")`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return err
			}
			logrus.Debugf("Instrução %d/%d aplicada", i+1, len(statements))
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração")
	}

	logrus.WithFields(logrus.Fields{
		"table":    dashboardViewLogTable,
		"duration": time.Since(startTime).String(),
	}).Info("Migração concluída com sucesso")
}
