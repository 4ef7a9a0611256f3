package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// TableExists verifica se a tabela existe no schema de busca atual.
// Módulos opcionais do ERP (folha, recrutamento, auditoria) podem não estar instalados.
func TableExists(ctx context.Context, q Queryer, table string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", pq.QuoteIdentifier(table)).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao verificar existência da tabela %s", table)
	}
	return exists, nil
}
