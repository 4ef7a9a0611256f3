package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

func TestLedgerRepository_ProfitAndLoss(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewLedgerRepository(conn)

	filters := companyFilters()

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COALESCE(SUM(CASE WHEN a.root_type = $1 THEN d.credit - d.debit ELSE 0 END), 0) AS income, `+
			`COALESCE(SUM(CASE WHEN a.root_type = $2 THEN d.debit - d.credit ELSE 0 END), 0) AS expense `+
			`FROM "tabGL Entry" d JOIN "tabAccount" a ON a.name = d.account `+
			`WHERE d.is_cancelled = $3 AND d.company = $4 AND d.posting_date BETWEEN $5 AND $6 AND a.root_type IN ($7,$8)`,
	)).
		WithArgs("Income", "Expense", 0, "ACME", "2024-01-01", "2024-12-31", "Income", "Expense").
		WillReturnRows(sqlmock.NewRows([]string{"income", "expense"}).AddRow("10000", "7500.25"))

	pnl, err := repo.ProfitAndLoss(context.Background(), filters.PeriodConditions(domain.GLEntry))

	require.NoError(t, err)
	assert.Equal(t, 10000.0, pnl.Income)
	assert.Equal(t, 7500.25, pnl.Expense)
	assert.Equal(t, pnl.Income-pnl.Expense, pnl.NetProfit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_CashBankAccounts(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewLedgerRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT a.name, a.account_name, a.account_type FROM "tabAccount" a WHERE`) +
		".*" + regexp.QuoteMeta(`ORDER BY a.account_name ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "account_name", "account_type"}).
			AddRow("Banco - ACME", "Banco", "Bank").
			AddRow("Caixa - ACME", "Caixa", "Cash"))

	accounts, err := repo.CashBankAccounts(context.Background(), "ACME")

	require.NoError(t, err)
	assert.Equal(t, []domain.LedgerAccount{
		{Name: "Banco - ACME", AccountName: "Banco", AccountType: "Bank"},
		{Name: "Caixa - ACME", AccountName: "Caixa", AccountType: "Cash"},
	}, accounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_AccountBalances(t *testing.T) {
	t.Run("Sem contas não consulta o banco", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewLedgerRepository(conn)

		balances, err := repo.AccountBalances(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, balances)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Agrupa saldo por conta", func(t *testing.T) {
		conn, mock := newMockConn(t)
		repo := NewLedgerRepository(conn)

		conditions := []domain.Condition{
			domain.GLEntry.Status,
			domain.Equals{Column: "company", Value: "ACME"},
			domain.AtMost{Column: "posting_date", Value: "2024-12-31"},
		}

		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT d.account, COALESCE(SUM(d.debit - d.credit), 0) AS balance FROM "tabGL Entry" d `+
				`WHERE d.is_cancelled = $1 AND d.company = $2 AND d.posting_date <= $3 AND d.account IN ($4,$5) GROUP BY d.account`,
		)).
			WithArgs(0, "ACME", "2024-12-31", "Banco - ACME", "Caixa - ACME").
			WillReturnRows(sqlmock.NewRows([]string{"account", "balance"}).AddRow("Banco - ACME", "1234.56"))

		balances, err := repo.AccountBalances(context.Background(), []string{"Banco - ACME", "Caixa - ACME"}, conditions)

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"Banco - ACME": 1234.56}, balances)
		assert.Len(t, conditions, 3)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
