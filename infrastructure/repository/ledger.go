package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

const (
	accountTable = "tabAccount"

	rootTypeIncome  = "Income"
	rootTypeExpense = "Expense"
)

// Tipos de conta considerados no saldo de caixa e bancos
var cashBankAccountTypes = []string{"Cash", "Bank"}

type LedgerRepository interface {
	ProfitAndLoss(ctx context.Context, conditions []domain.Condition) (domain.ProfitAndLoss, error)
	CashBankAccounts(ctx context.Context, company string) ([]domain.LedgerAccount, error)
	AccountBalances(ctx context.Context, accounts []string, conditions []domain.Condition) (map[string]float64, error)
}

type ledgerRepository struct {
	conn postgres.Queryer
}

func NewLedgerRepository(conn postgres.Queryer) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

// ProfitAndLoss apura receitas e despesas a partir dos lançamentos contábeis.
// Receita = crédito - débito em contas Income; despesa = débito - crédito em contas Expense.
func (r *ledgerRepository) ProfitAndLoss(ctx context.Context, conditions []domain.Condition) (domain.ProfitAndLoss, error) {
	gl := documentAlias

	builder := squirrel.
		Select().
		Column(squirrel.Expr(
			fmt.Sprintf("COALESCE(SUM(CASE WHEN a.root_type = ? THEN %s - %s ELSE 0 END), 0) AS income",
				qualify(gl, "credit"), qualify(gl, "debit")),
			rootTypeIncome,
		)).
		Column(squirrel.Expr(
			fmt.Sprintf("COALESCE(SUM(CASE WHEN a.root_type = ? THEN %s - %s ELSE 0 END), 0) AS expense",
				qualify(gl, "debit"), qualify(gl, "credit")),
			rootTypeExpense,
		)).
		From(tableRef(domain.GLEntry, gl)).
		Join(fmt.Sprintf("%s a ON a.name = %s", pq.QuoteIdentifier(accountTable), qualify(gl, "account")))

	builder, err := applyConditions(builder, gl, conditions)
	if err != nil {
		return domain.ProfitAndLoss{}, err
	}
	builder = builder.Where(squirrel.Eq{"a.root_type": []string{rootTypeIncome, rootTypeExpense}})

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return domain.ProfitAndLoss{}, errors.Wrap(err, "erro ao construir a query")
	}

	var income, expense decimal.NullDecimal
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&income, &expense); err != nil {
		return domain.ProfitAndLoss{}, errors.Wrap(err, "erro ao apurar resultado nos lançamentos contábeis")
	}

	return domain.NewProfitAndLoss(toFloat(income), toFloat(expense)), nil
}

// CashBankAccounts lista as contas de caixa e bancos ativas da empresa
func (r *ledgerRepository) CashBankAccounts(ctx context.Context, company string) ([]domain.LedgerAccount, error) {
	query, args, err := squirrel.
		Select("a.name", "a.account_name", "a.account_type").
		From(pq.QuoteIdentifier(accountTable) + " a").
		Where(squirrel.Eq{
			"a.company":      company,
			"a.is_group":     0,
			"a.disabled":     0,
			"a.account_type": cashBankAccountTypes,
		}).
		OrderBy("a.account_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contas de caixa e bancos")
	}
	defer rows.Close()

	accounts := make([]domain.LedgerAccount, 0)
	for rows.Next() {
		var account domain.LedgerAccount
		if err := rows.Scan(&account.Name, &account.AccountName, &account.AccountType); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear conta")
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return accounts, nil
}

// AccountBalances soma débito - crédito por conta; contas sem lançamentos não aparecem no mapa
func (r *ledgerRepository) AccountBalances(ctx context.Context, accounts []string, conditions []domain.Condition) (map[string]float64, error) {
	balances := make(map[string]float64, len(accounts))
	if len(accounts) == 0 {
		return balances, nil
	}

	gl := documentAlias
	builder := squirrel.
		Select(
			qualify(gl, "account"),
			fmt.Sprintf("COALESCE(SUM(%s - %s), 0) AS balance", qualify(gl, "debit"), qualify(gl, "credit")),
		).
		From(tableRef(domain.GLEntry, gl)).
		GroupBy(qualify(gl, "account"))

	builder, err := applyConditions(builder, gl, append(slices.Clone(conditions), domain.In{Column: "account", Values: accounts}))
	if err != nil {
		return nil, err
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar saldos das contas")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			account string
			balance decimal.NullDecimal
		)
		if err := rows.Scan(&account, &balance); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear saldo")
		}
		balances[account] = toFloat(balance)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return balances, nil
}
