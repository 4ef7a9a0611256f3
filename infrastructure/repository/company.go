package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
)

const companyTable = "tabCompany"

type CompanyRepository interface {
	GetDefaultCurrency(ctx context.Context, company string) (string, error)
	GetGlobalDefaultCompany(ctx context.Context) (string, error)
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

// GetDefaultCurrency retorna a moeda padrão da empresa ("" quando não cadastrada)
func (r *companyRepository) GetDefaultCurrency(ctx context.Context, company string) (string, error) {
	query, args, err := squirrel.
		Select("c.default_currency").
		From(pq.QuoteIdentifier(companyTable) + " c").
		Where(squirrel.Eq{"c.name": company}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	var currency sql.NullString
	err = r.conn.QueryRow(ctx, query, args...).Scan(&currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "erro ao buscar moeda da empresa")
	}

	return currency.String, nil
}

// GetGlobalDefaultCompany retorna a empresa padrão global do ERP ou, na falta dela,
// a primeira empresa em ordem alfabética. Retorna "" quando não há empresa cadastrada.
func (r *companyRepository) GetGlobalDefaultCompany(ctx context.Context) (string, error) {
	company, err := getDefaultValue(ctx, r.conn, globalDefaultsParent, companyDefaultKey)
	if err != nil {
		return "", err
	}
	if company != "" {
		return company, nil
	}

	query, args, err := squirrel.
		Select("c.name").
		From(pq.QuoteIdentifier(companyTable) + " c").
		OrderBy("c.name ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(ctx, query, args...).Scan(&company)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "erro ao buscar primeira empresa")
	}

	return company, nil
}
