package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
)

const (
	userTable           = "tabUser"
	hasRoleTable        = "tabHas Role"
	userPermissionTable = "tabUser Permission"
	defaultValueTable   = "tabDefaultValue"

	// globalDefaultsParent é o dono das preferências globais no ERP
	globalDefaultsParent = "__default"
	companyDefaultKey    = "company"
	companyDoctype       = "Company"
)

// UserRepository lê do ERP os dados que compõem a capacidade do caller
type UserRepository interface {
	IsEnabled(ctx context.Context, userID string) (bool, error)
	GetRoles(ctx context.Context, userID string) ([]string, error)
	GetDefaultCompany(ctx context.Context, userID string) (string, error)
	GetCompanyGrants(ctx context.Context, userID string) ([]string, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// IsEnabled retorna falso para usuário inexistente ou desativado
func (r *userRepository) IsEnabled(ctx context.Context, userID string) (bool, error) {
	query, args, err := squirrel.
		Select("u.enabled").
		From(pq.QuoteIdentifier(userTable) + " u").
		Where(squirrel.Eq{"u.name": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var enabled int
	err = r.conn.QueryRow(ctx, query, args...).Scan(&enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "erro ao buscar usuário")
	}

	return enabled == 1, nil
}

func (r *userRepository) GetRoles(ctx context.Context, userID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT hr.role").
		From(pq.QuoteIdentifier(hasRoleTable) + " hr").
		Where(squirrel.Eq{"hr.parent": userID, "hr.parenttype": "User"}).
		OrderBy("hr.role ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	roles, err := r.queryStrings(ctx, query, args)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar papéis do usuário")
	}

	return roles, nil
}

// GetDefaultCompany retorna a empresa padrão do usuário ("" quando não definida)
func (r *userRepository) GetDefaultCompany(ctx context.Context, userID string) (string, error) {
	return getDefaultValue(ctx, r.conn, userID, companyDefaultKey)
}

// GetCompanyGrants retorna as empresas liberadas por User Permission, na ordem de criação
func (r *userRepository) GetCompanyGrants(ctx context.Context, userID string) ([]string, error) {
	query, args, err := squirrel.
		Select("up.for_value").
		From(pq.QuoteIdentifier(userPermissionTable) + " up").
		Where(squirrel.Eq{`up."user"`: userID, "up.allow": companyDoctype}).
		GroupBy("up.for_value").
		OrderBy("MIN(up.creation) ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	grants, err := r.queryStrings(ctx, query, args)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar permissões de empresa do usuário")
	}

	return grants, nil
}

func (r *userRepository) queryStrings(ctx context.Context, query string, args []interface{}) ([]string, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		if value.Valid && value.String != "" {
			values = append(values, value.String)
		}
	}

	return values, rows.Err()
}

// getDefaultValue lê uma preferência da tabela de defaults do ERP
func getDefaultValue(ctx context.Context, q postgres.Queryer, parent, key string) (string, error) {
	query, args, err := squirrel.
		Select("dv.defvalue").
		From(pq.QuoteIdentifier(defaultValueTable) + " dv").
		Where(squirrel.Eq{"dv.parent": parent}).
		Where(squirrel.Expr("lower(dv.defkey) = ?", key)).
		OrderBy("dv.creation ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir a query")
	}

	var value sql.NullString
	err = q.QueryRow(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrapf(err, "erro ao buscar preferência %s", key)
	}

	return value.String, nil
}
