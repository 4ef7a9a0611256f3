package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_IsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "Usuário ativo",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT u.enabled FROM "tabUser" u WHERE u.name = $1`)).
					WithArgs("maria@acme.com").
					WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "Usuário desativado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT u.enabled FROM "tabUser" u`)).
					WillReturnRows(sqlmock.NewRows([]string{"enabled"}).AddRow(0))
			},
			want: false,
		},
		{
			name: "Usuário inexistente",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT u.enabled FROM "tabUser" u`)).
					WillReturnError(sql.ErrNoRows)
			},
			want: false,
		},
		{
			name: "Erro de banco é propagado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT u.enabled FROM "tabUser" u`)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			repo := NewUserRepository(conn)
			tt.setup(mock)

			enabled, err := repo.IsEnabled(context.Background(), "maria@acme.com")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, enabled)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetRoles(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT hr.role FROM "tabHas Role" hr WHERE hr.parent = $1 AND hr.parenttype = $2 ORDER BY hr.role ASC`)).
		WithArgs("maria@acme.com", "User").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("Accounts User").AddRow("Management"))

	roles, err := repo.GetRoles(context.Background(), "maria@acme.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"Accounts User", "Management"}, roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetDefaultCompany(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT dv.defvalue FROM "tabDefaultValue" dv WHERE dv.parent = $1 AND lower(dv.defkey) = $2`)).
		WithArgs("maria@acme.com", "company").
		WillReturnError(sql.ErrNoRows)

	company, err := repo.GetDefaultCompany(context.Background(), "maria@acme.com")

	require.NoError(t, err)
	assert.Empty(t, company)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetCompanyGrants(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT up.for_value FROM "tabUser Permission" up WHERE up."user" = $1 AND up.allow = $2`)).
		WithArgs("maria@acme.com", "Company").
		WillReturnRows(sqlmock.NewRows([]string{"for_value"}).AddRow("ACME Brasil").AddRow(nil).AddRow("ACME Chile"))

	grants, err := repo.GetCompanyGrants(context.Background(), "maria@acme.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"ACME Brasil", "ACME Chile"}, grants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
