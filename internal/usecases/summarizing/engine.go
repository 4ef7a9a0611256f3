package summarizing

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxConcurrentQueries = 6
	maxConcurrentQueriesCeiling = 16

	rankingLimit       = 10
	customerHealthSize = 5
)

// Scope agrupa os filtros do ano corrente, do ano anterior e o agrupamento das tendências
type Scope struct {
	Current    domain.FilterSet
	Previous   domain.FilterSet
	PeriodType domain.PeriodType
}

type Aggregator interface {
	Aggregate(ctx context.Context, scope Scope) *domain.AnnualSummary
}

// Engine executa a bateria de consultas do relatório em um pool limitado.
// Cada sub-agregação escreve o próprio campo; falhas viram valor neutro.
type Engine struct {
	documents     repository.DocumentRepository
	ledger        repository.LedgerRepository
	hr            repository.HRRepository
	maxConcurrent int
}

func NewEngine(
	documents repository.DocumentRepository,
	ledger repository.LedgerRepository,
	hr repository.HRRepository,
	maxConcurrent int,
) *Engine {
	return &Engine{
		documents:     documents,
		ledger:        ledger,
		hr:            hr,
		maxConcurrent: clampConcurrency(maxConcurrent),
	}
}

func clampConcurrency(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxConcurrentQueries
	case n > maxConcurrentQueriesCeiling:
		return maxConcurrentQueriesCeiling
	default:
		return n
	}
}

// batch coleta sub-agregações e registra quais caíram no valor neutro
type batch struct {
	ctx   context.Context
	group *errgroup.Group

	mu          sync.Mutex
	unavailable []string
}

func (b *batch) markUnavailable(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unavailable = append(b.unavailable, name)
}

// submit agenda uma sub-agregação. Erros nunca são propagados ao grupo,
// então uma falha não cancela as demais.
func submit[T any](b *batch, name string, neutral T, fetch func(context.Context) (T, error), assign func(domain.Result[T])) {
	b.group.Go(func() error {
		value, err := fetch(b.ctx)
		if err != nil {
			logrus.WithError(err).WithField("aggregation", name).Warn("Sub-agregação indisponível, usando valor neutro")
			b.markUnavailable(name)
			assign(domain.Unavailable(neutral))
			return nil
		}

		assign(domain.Available(value))
		return nil
	})
}

func (e *Engine) Aggregate(ctx context.Context, scope Scope) *domain.AnnualSummary {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.maxConcurrent)

	b := &batch{ctx: groupCtx, group: group}
	summary := &domain.AnnualSummary{}

	e.submitRevenue(b, scope, &summary.KPIs)
	e.submitProfitAndLoss(b, scope, &summary.KPIs)
	e.submitOutstanding(b, scope, summary)
	e.submitTrends(b, scope, &summary.Trends)
	e.submitRankings(b, scope, summary)
	e.submitHR(b, scope, &summary.HR)
	e.submitCashBank(b, scope, summary)

	_ = group.Wait()

	summary.CustomerHealth.TopOverdue = firstN(summary.Breakdowns.TopOverdueCustomers, customerHealthSize)
	normalizeLists(summary)

	slices.Sort(b.unavailable)
	summary.Unavailable = b.unavailable

	return summary
}

func (e *Engine) sum(doc domain.DocType, field string, conditions []domain.Condition) func(context.Context) (float64, error) {
	return func(ctx context.Context) (float64, error) {
		return e.documents.SumField(ctx, doc, field, conditions)
	}
}

// comparison agenda o mesmo somatório para o ano corrente e o anterior
func (e *Engine) comparison(
	b *batch,
	name string,
	doc domain.DocType,
	field string,
	scope Scope,
	extra []domain.Condition,
	target *domain.Comparison,
) {
	current := append(scope.Current.PeriodConditions(doc), extra...)
	previous := append(scope.Previous.PeriodConditions(doc), extra...)

	submit(b, name+".current", 0, e.sum(doc, field, current), func(r domain.Result[float64]) { target.Current = r.Value })
	submit(b, name+".previous", 0, e.sum(doc, field, previous), func(r domain.Result[float64]) { target.Previous = r.Value })
}

func (e *Engine) submitRevenue(b *batch, scope Scope, kpis *domain.KPIs) {
	paid := []domain.Condition{domain.Equals{Column: "outstanding_amount", Value: 0}}
	pending := []domain.Condition{domain.GreaterThan{Column: "outstanding_amount", Value: 0}}

	e.comparison(b, "sales_invoice_gross", domain.SalesInvoice, "grand_total", scope, nil, &kpis.SalesInvoiceGross)
	e.comparison(b, "sales_invoice_net", domain.SalesInvoice, "base_grand_total", scope, nil, &kpis.SalesInvoiceNet)
	e.comparison(b, "sales_order", domain.SalesOrder, "base_grand_total", scope, nil, &kpis.SalesOrder)
	e.comparison(b, "delivery_note", domain.DeliveryNote, "base_grand_total", scope, nil, &kpis.DeliveryNote)
	e.comparison(b, "paid_sales_invoice", domain.SalesInvoice, "base_grand_total", scope, paid, &kpis.PaidSalesInvoice)
	e.comparison(b, "pending_sales_invoice", domain.SalesInvoice, "base_grand_total", scope, pending, &kpis.PendingSalesInvoice)
	e.comparison(b, "purchases", domain.PurchaseInvoice, "base_grand_total", scope, nil, &kpis.Purchases)
}

func (e *Engine) submitProfitAndLoss(b *batch, scope Scope, kpis *domain.KPIs) {
	pnl := func(filters domain.FilterSet) func(context.Context) (domain.ProfitAndLoss, error) {
		return func(ctx context.Context) (domain.ProfitAndLoss, error) {
			return e.ledger.ProfitAndLoss(ctx, filters.PeriodConditions(domain.GLEntry))
		}
	}

	submit(b, "profit_and_loss.current", domain.ProfitAndLoss{}, pnl(scope.Current), func(r domain.Result[domain.ProfitAndLoss]) {
		kpis.Income.Current = r.Value.Income
		kpis.Expense.Current = r.Value.Expense
		kpis.NetProfit.Current = r.Value.NetProfit
	})
	submit(b, "profit_and_loss.previous", domain.ProfitAndLoss{}, pnl(scope.Previous), func(r domain.Result[domain.ProfitAndLoss]) {
		kpis.Income.Previous = r.Value.Income
		kpis.Expense.Previous = r.Value.Expense
		kpis.NetProfit.Previous = r.Value.NetProfit
	})
}

func (e *Engine) submitOutstanding(b *batch, scope Scope, summary *domain.AnnualSummary) {
	asOf := scope.Current.Period.EndDate

	submit(b, "ar_outstanding", 0,
		e.sum(domain.SalesInvoice, "outstanding_amount", scope.Current.OutstandingConditions(domain.SalesInvoice)),
		func(r domain.Result[float64]) { summary.KPIs.AROutstanding = r.Value })
	submit(b, "ap_outstanding", 0,
		e.sum(domain.PurchaseInvoice, "outstanding_amount", scope.Current.OutstandingConditions(domain.PurchaseInvoice)),
		func(r domain.Result[float64]) { summary.KPIs.APOutstanding = r.Value })

	aging := func(doc domain.DocType) func(context.Context) (domain.Aging, error) {
		conditions := append(
			scope.Current.OutstandingConditions(doc),
			domain.AtMost{Column: doc.DateField, Value: asOf.Format(time.DateOnly)},
		)
		return func(ctx context.Context) (domain.Aging, error) {
			rows, err := e.documents.AgingRows(ctx, doc, asOf, conditions)
			if err != nil {
				return domain.Aging{}, err
			}
			return domain.NewAging(rows), nil
		}
	}

	submit(b, "aging.ar", domain.Aging{}, aging(domain.SalesInvoice), func(r domain.Result[domain.Aging]) { summary.Aging.AR = r.Value })
	submit(b, "aging.ap", domain.Aging{}, aging(domain.PurchaseInvoice), func(r domain.Result[domain.Aging]) { summary.Aging.AP = r.Value })
}

func (e *Engine) submitTrends(b *batch, scope Scope, trends *domain.Trends) {
	series := func(doc domain.DocType) func(context.Context) ([]domain.TrendPoint, error) {
		return func(ctx context.Context) ([]domain.TrendPoint, error) {
			return e.documents.PeriodSums(ctx, doc, "base_grand_total", scope.PeriodType, scope.Current.PeriodConditions(doc))
		}
	}

	submit(b, "trends.sales", []domain.TrendPoint{}, series(domain.SalesInvoice), func(r domain.Result[[]domain.TrendPoint]) { trends.Sales = r.Value })
	submit(b, "trends.purchases", []domain.TrendPoint{}, series(domain.PurchaseInvoice), func(r domain.Result[[]domain.TrendPoint]) { trends.Purchases = r.Value })
}

func (e *Engine) submitRankings(b *batch, scope Scope, summary *domain.AnnualSummary) {
	current := scope.Current
	asOf := current.Period.EndDate.Format(time.DateOnly)

	top := func(doc domain.DocType, partyField, valueField string, conditions []domain.Condition) func(context.Context) ([]domain.PartyTotal, error) {
		return func(ctx context.Context) ([]domain.PartyTotal, error) {
			return e.documents.TopParties(ctx, doc, partyField, valueField, conditions, rankingLimit)
		}
	}

	overdue := append(
		current.ScopeConditions(domain.SalesInvoice),
		domain.GreaterThan{Column: "outstanding_amount", Value: 0},
		domain.LessThan{Column: "due_date", Value: asOf},
	)

	submit(b, "top_customers", []domain.CustomerTotal{},
		convert(top(domain.SalesInvoice, "customer", "base_grand_total", current.PeriodConditions(domain.SalesInvoice)), domain.CustomerTotals),
		func(r domain.Result[[]domain.CustomerTotal]) { summary.Breakdowns.TopCustomers = r.Value })
	submit(b, "top_suppliers", []domain.SupplierTotal{},
		convert(top(domain.PurchaseInvoice, "supplier", "base_grand_total", current.PeriodConditions(domain.PurchaseInvoice)), domain.SupplierTotals),
		func(r domain.Result[[]domain.SupplierTotal]) { summary.Breakdowns.TopSuppliers = r.Value })
	submit(b, "top_overdue_customers", []domain.OverdueCustomer{},
		convert(top(domain.SalesInvoice, "customer", "outstanding_amount", overdue), domain.OverdueCustomers),
		func(r domain.Result[[]domain.OverdueCustomer]) { summary.Breakdowns.TopOverdueCustomers = r.Value })

	submit(b, "new_customers", 0, func(ctx context.Context) (int, error) {
		return e.documents.CountNewParties(ctx, domain.SalesInvoice, "customer", current.Company, current.Period)
	}, func(r domain.Result[int]) { summary.CustomerHealth.NewCustomers = r.Value })
}

func (e *Engine) submitHR(b *batch, scope Scope, hr *domain.HRCounters) {
	company := scope.Current.Company

	submit(b, "hr.headcount", 0, func(ctx context.Context) (int, error) {
		return e.hr.Headcount(ctx, company)
	}, func(r domain.Result[int]) { hr.Headcount = r.Value })
	submit(b, "hr.payroll_cost", 0, func(ctx context.Context) (float64, error) {
		return e.hr.PayrollCost(ctx, scope.Current.PeriodConditions(domain.SalarySlip))
	}, func(r domain.Result[float64]) { hr.PayrollCost = r.Value })
	submit(b, "hr.open_positions", 0, func(ctx context.Context) (int, error) {
		return e.hr.OpenPositions(ctx, company)
	}, func(r domain.Result[int]) { hr.OpenPositions = r.Value })
}

func (e *Engine) submitCashBank(b *batch, scope Scope, summary *domain.AnnualSummary) {
	submit(b, "cash_bank", []domain.CashBankBalance{}, func(ctx context.Context) ([]domain.CashBankBalance, error) {
		return e.cashBankBalances(ctx, scope.Current)
	}, func(r domain.Result[[]domain.CashBankBalance]) {
		summary.Breakdowns.CashBank = r.Value
		summary.KPIs.CashTotal = 0
		for _, balance := range r.Value {
			summary.KPIs.CashTotal += balance.Balance
		}
	})
}

// cashBankBalances lista todas as contas caixa/banco; contas sem lançamentos ficam com saldo zero
func (e *Engine) cashBankBalances(ctx context.Context, filters domain.FilterSet) ([]domain.CashBankBalance, error) {
	accounts, err := e.ledger.CashBankAccounts(ctx, filters.Company)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		names = append(names, account.Name)
	}

	conditions := []domain.Condition{
		domain.GLEntry.Status,
		domain.Equals{Column: "company", Value: filters.Company},
		domain.AtMost{Column: domain.GLEntry.DateField, Value: filters.Period.EndDate.Format(time.DateOnly)},
	}
	if costCenters := filters.Values(domain.DimensionCostCenter); len(costCenters) > 0 {
		conditions = append(conditions, domain.In{Column: string(domain.DimensionCostCenter), Values: costCenters})
	}

	balances, err := e.ledger.AccountBalances(ctx, names, conditions)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CashBankBalance, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, domain.CashBankBalance{
			Account:     account.Name,
			AccountName: account.AccountName,
			AccountType: account.AccountType,
			Balance:     balances[account.Name],
		})
	}

	return result, nil
}

// convert aplica a conversão de linhas sobre o resultado da consulta
func convert[From, To any](fetch func(context.Context) (From, error), fn func(From) To) func(context.Context) (To, error) {
	return func(ctx context.Context) (To, error) {
		rows, err := fetch(ctx)
		if err != nil {
			var zero To
			return zero, err
		}
		return fn(rows), nil
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return slices.Clone(items)
	}
	return slices.Clone(items[:n])
}

// normalizeLists garante listas vazias em vez de null na resposta
func normalizeLists(summary *domain.AnnualSummary) {
	summary.Trends.Sales = orEmpty(summary.Trends.Sales)
	summary.Trends.Purchases = orEmpty(summary.Trends.Purchases)
	summary.Breakdowns.CashBank = orEmpty(summary.Breakdowns.CashBank)
	summary.Breakdowns.TopCustomers = orEmpty(summary.Breakdowns.TopCustomers)
	summary.Breakdowns.TopSuppliers = orEmpty(summary.Breakdowns.TopSuppliers)
	summary.Breakdowns.TopOverdueCustomers = orEmpty(summary.Breakdowns.TopOverdueCustomers)
	summary.CustomerHealth.TopOverdue = orEmpty(summary.CustomerHealth.TopOverdue)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
