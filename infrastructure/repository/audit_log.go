package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dashboardViewLogTable = "tabDashboard View Log"

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *domain.DashboardViewLog) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type auditLogRepository struct {
	conn postgres.Conn
}

func NewAuditLogRepository(conn postgres.Conn) AuditLogRepository {
	return &auditLogRepository{
		conn: conn,
	}
}

// Insert grava a visualização do dashboard; sem a tabela instalada retorna ErrTableNotFound
func (r *auditLogRepository) Insert(ctx context.Context, entry *domain.DashboardViewLog) error {
	if err := requireTable(ctx, r.conn, dashboardViewLogTable); err != nil {
		return err
	}

	if entry.Name == "" {
		name, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar identificador do registro de auditoria")
		}
		entry.Name = name
	}

	filters, err := json.Marshal(entry.Filters)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar filtros")
	}

	query, args, err := squirrel.
		Insert(pq.QuoteIdentifier(dashboardViewLogTable)).
		Columns(`name`, `"user"`, `viewed_at`, `year`, `company`, `filters`, `owner`, `creation`, `modified`, `modified_by`, `docstatus`).
		Values(
			entry.Name,
			entry.User,
			entry.ViewedAt,
			entry.Year,
			entry.Company,
			string(filters),
			entry.User,
			entry.ViewedAt,
			entry.ViewedAt,
			entry.User,
			0,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir registro de auditoria")
	}

	return nil
}

// DeleteOlderThan remove registros de auditoria anteriores ao corte
func (r *auditLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := requireTable(ctx, r.conn, dashboardViewLogTable); err != nil {
		return 0, err
	}

	query, args, err := squirrel.
		Delete(pq.QuoteIdentifier(dashboardViewLogTable)).
		Where(squirrel.Lt{"viewed_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir query de remoção")
	}

	var deleted int64
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		deleted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao remover registros de auditoria antigos")
	}

	return deleted, nil
}
