package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

const (
	employeeTable   = "tabEmployee"
	jobOpeningTable = "tabJob Opening"

	employeeStatusActive = "Active"
	jobOpeningStatusOpen = "Open"
)

// HRRepository lê os módulos de pessoas. Folha e recrutamento são opcionais no ERP:
// quando a tabela não existe o erro retornado envolve ErrTableNotFound.
type HRRepository interface {
	Headcount(ctx context.Context, company string) (int, error)
	PayrollCost(ctx context.Context, conditions []domain.Condition) (float64, error)
	OpenPositions(ctx context.Context, company string) (int, error)
}

type hrRepository struct {
	conn      postgres.Queryer
	documents DocumentRepository
}

func NewHRRepository(conn postgres.Queryer) HRRepository {
	return &hrRepository{
		conn:      conn,
		documents: NewDocumentRepository(conn),
	}
}

func (r *hrRepository) Headcount(ctx context.Context, company string) (int, error) {
	return r.countByStatus(ctx, employeeTable, employeeStatusActive, company)
}

func (r *hrRepository) OpenPositions(ctx context.Context, company string) (int, error) {
	return r.countByStatus(ctx, jobOpeningTable, jobOpeningStatusOpen, company)
}

// PayrollCost soma o salário bruto das folhas submetidas
func (r *hrRepository) PayrollCost(ctx context.Context, conditions []domain.Condition) (float64, error) {
	if err := requireTable(ctx, r.conn, domain.SalarySlip.Table()); err != nil {
		return 0, err
	}

	return r.documents.SumField(ctx, domain.SalarySlip, "base_gross_pay", conditions)
}

func (r *hrRepository) countByStatus(ctx context.Context, table, status, company string) (int, error) {
	if err := requireTable(ctx, r.conn, table); err != nil {
		return 0, err
	}

	builder := squirrel.
		Select("COUNT(*)").
		From(pq.QuoteIdentifier(table)).
		Where(squirrel.Eq{"status": status, "company": company})

	count, err := queryCount(ctx, r.conn, builder)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao contar registros de %s", table)
	}

	return count, nil
}
