package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/annual-summary-api/infrastructure/database/postgres"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

// Formatos de rótulo das séries de tendência (to_char do PostgreSQL)
var periodLabelLayouts = map[domain.PeriodType]string{
	domain.PeriodMonthly:   "YYYY-MM-01",
	domain.PeriodQuarterly: `YYYY-"Q"Q`,
	domain.PeriodWeekly:    `IYYY-"W"IW`,
}

type DocumentRepository interface {
	SumField(ctx context.Context, doc domain.DocType, field string, conditions []domain.Condition) (float64, error)
	PeriodSums(ctx context.Context, doc domain.DocType, field string, periodType domain.PeriodType, conditions []domain.Condition) ([]domain.TrendPoint, error)
	TopParties(ctx context.Context, doc domain.DocType, partyField, valueField string, conditions []domain.Condition, limit uint64) ([]domain.PartyTotal, error)
	AgingRows(ctx context.Context, doc domain.DocType, asOf time.Time, conditions []domain.Condition) ([]domain.AgingRow, error)
	CountNewParties(ctx context.Context, doc domain.DocType, partyField, company string, period domain.Period) (int, error)
}

type documentRepository struct {
	conn postgres.Queryer
}

func NewDocumentRepository(conn postgres.Queryer) DocumentRepository {
	return &documentRepository{
		conn: conn,
	}
}

// SumField soma uma coluna do documento aplicando as condições
func (r *documentRepository) SumField(ctx context.Context, doc domain.DocType, field string, conditions []domain.Condition) (float64, error) {
	builder := squirrel.
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", qualify(documentAlias, field))).
		From(tableRef(doc, documentAlias))

	builder, err := applyConditions(builder, documentAlias, conditions)
	if err != nil {
		return 0, err
	}

	total, err := queryDecimal(ctx, r.conn, builder)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao somar %s de %s", field, doc.Name)
	}

	return total, nil
}

// PeriodSums agrupa a soma de uma coluna por mês, trimestre ou semana ISO.
// Períodos sem documentos não aparecem na série.
func (r *documentRepository) PeriodSums(
	ctx context.Context,
	doc domain.DocType,
	field string,
	periodType domain.PeriodType,
	conditions []domain.Condition,
) ([]domain.TrendPoint, error) {
	layout, ok := periodLabelLayouts[periodType]
	if !ok {
		return nil, errors.Errorf("tipo de período não suportado: %s", periodType)
	}

	builder := squirrel.
		Select(
			fmt.Sprintf("to_char(%s, '%s') AS period", qualify(documentAlias, doc.DateField), layout),
			fmt.Sprintf("COALESCE(SUM(%s), 0) AS total", qualify(documentAlias, field)),
		).
		From(tableRef(doc, documentAlias)).
		GroupBy("period").
		OrderBy("period ASC")

	builder, err := applyConditions(builder, documentAlias, conditions)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao agrupar %s por período", doc.Name)
	}
	defer rows.Close()

	points := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var (
			point domain.TrendPoint
			total decimal.NullDecimal
		)
		if err := rows.Scan(&point.Period, &total); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear período")
		}
		point.Total = toFloat(total)
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return points, nil
}

// TopParties retorna as maiores somas por cliente ou fornecedor, em ordem decrescente
func (r *documentRepository) TopParties(
	ctx context.Context,
	doc domain.DocType,
	partyField, valueField string,
	conditions []domain.Condition,
	limit uint64,
) ([]domain.PartyTotal, error) {
	builder := squirrel.
		Select(
			qualify(documentAlias, partyField)+" AS party",
			fmt.Sprintf("COALESCE(SUM(%s), 0) AS total", qualify(documentAlias, valueField)),
		).
		From(tableRef(doc, documentAlias)).
		GroupBy(qualify(documentAlias, partyField)).
		OrderBy("total DESC").
		Limit(limit)

	builder, err := applyConditions(builder, documentAlias, conditions)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar ranking de %s", doc.Name)
	}
	defer rows.Close()

	parties := make([]domain.PartyTotal, 0, limit)
	for rows.Next() {
		var (
			party sql.NullString
			total decimal.NullDecimal
		)
		if err := rows.Scan(&party, &total); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ranking")
		}
		parties = append(parties, domain.PartyTotal{
			Party: party.String,
			Total: toFloat(total),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return parties, nil
}

// AgingRows retorna os saldos em aberto agrupados por dias desde o lançamento e por vencimento.
// A classificação em faixas acontece em domain.NewAging.
func (r *documentRepository) AgingRows(
	ctx context.Context,
	doc domain.DocType,
	asOf time.Time,
	conditions []domain.Condition,
) ([]domain.AgingRow, error) {
	asOfDate := asOf.Format(time.DateOnly)

	builder := squirrel.
		Select().
		Column(squirrel.Expr(fmt.Sprintf("(CAST(? AS date) - %s) AS days", qualify(documentAlias, doc.DateField)), asOfDate)).
		Column(squirrel.Expr(fmt.Sprintf("(%s < CAST(? AS date)) AS overdue", qualify(documentAlias, "due_date")), asOfDate)).
		Column(fmt.Sprintf("COALESCE(SUM(%s), 0) AS amount", qualify(documentAlias, "outstanding_amount"))).
		From(tableRef(doc, documentAlias)).
		GroupBy("days", "overdue")

	builder, err := applyConditions(builder, documentAlias, conditions)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar aging de %s", doc.Name)
	}
	defer rows.Close()

	agingRows := make([]domain.AgingRow, 0)
	for rows.Next() {
		var (
			days    int
			overdue sql.NullBool
			amount  decimal.NullDecimal
		)
		if err := rows.Scan(&days, &overdue, &amount); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear aging")
		}
		agingRows = append(agingRows, domain.AgingRow{
			Days:    days,
			Overdue: overdue.Bool,
			Amount:  toFloat(amount),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return agingRows, nil
}

// CountNewParties conta quem teve o primeiro documento submetido dentro do período
func (r *documentRepository) CountNewParties(
	ctx context.Context,
	doc domain.DocType,
	partyField, company string,
	period domain.Period,
) (int, error) {
	startDate := period.StartDate.Format(time.DateOnly)

	earlierBuilder, err := applyConditions(
		squirrel.Select("1").From(tableRef(doc, "p")),
		"p",
		[]domain.Condition{doc.Status, domain.LessThan{Column: doc.DateField, Value: startDate}},
	)
	if err != nil {
		return 0, err
	}

	earlier, earlierArgs, err := earlierBuilder.
		Where("p.company = " + qualify(documentAlias, "company")).
		Where(fmt.Sprintf("p.%s = %s", partyField, qualify(documentAlias, partyField))).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir subconsulta")
	}

	builder := squirrel.
		Select(fmt.Sprintf("COUNT(DISTINCT %s)", qualify(documentAlias, partyField))).
		From(tableRef(doc, documentAlias))

	builder, err = applyConditions(builder, documentAlias, []domain.Condition{
		doc.Status,
		domain.Equals{Column: "company", Value: company},
		domain.Between{
			Column: doc.DateField,
			From:   startDate,
			To:     period.EndDate.Format(time.DateOnly),
		},
	})
	if err != nil {
		return 0, err
	}
	builder = builder.Where(squirrel.Expr("NOT EXISTS ("+earlier+")", earlierArgs...))

	count, err := queryCount(ctx, r.conn, builder)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao contar novos clientes de %s", doc.Name)
	}

	return count, nil
}
