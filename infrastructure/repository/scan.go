package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
)

// toFloat converte valores monetários lidos do banco; NULL vira zero
func toFloat(value decimal.NullDecimal) float64 {
	if !value.Valid {
		return 0
	}
	return value.Decimal.InexactFloat64()
}

// queryDecimal executa uma consulta que retorna um único valor numérico
func queryDecimal(ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder) (float64, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var total decimal.NullDecimal
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(err, "erro ao executar a query")
	}

	return toFloat(total), nil
}

// queryCount executa uma consulta que retorna uma contagem
func queryCount(ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder) (int, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "erro ao executar a query")
	}

	return count, nil
}

// requireTable retorna ErrTableNotFound quando a tabela não está instalada
func requireTable(ctx context.Context, q postgres.Queryer, table string) error {
	exists, err := postgres.TableExists(ctx, q, table)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(ErrTableNotFound, table)
	}
	return nil
}
