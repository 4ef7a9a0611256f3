package domain

// Result é o valor de uma sub-agregação junto com a indicação de disponibilidade.
// Available=false significa que a fonte falhou ou não existe e Value é o neutro.
type Result[T any] struct {
	Value     T
	Available bool
}

// Available embrulha um valor obtido com sucesso
func Available[T any](value T) Result[T] {
	return Result[T]{Value: value, Available: true}
}

// Unavailable retorna o valor neutro de uma fonte indisponível
func Unavailable[T any](neutral T) Result[T] {
	return Result[T]{Value: neutral}
}

// Comparison compara o período corrente com o anterior
type Comparison struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// ProfitAndLoss é o resultado apurado nos lançamentos contábeis
type ProfitAndLoss struct {
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
	NetProfit float64 `json:"net_profit"`
}

// NewProfitAndLoss calcula o lucro líquido a partir de receitas e despesas
func NewProfitAndLoss(income, expense float64) ProfitAndLoss {
	return ProfitAndLoss{
		Income:    income,
		Expense:   expense,
		NetProfit: income - expense,
	}
}

// CashBankBalance é o saldo de uma conta caixa/banco até o fim do período
type CashBankBalance struct {
	Account     string  `json:"account"`
	AccountName string  `json:"account_name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
}

// LedgerAccount é uma conta do plano de contas
type LedgerAccount struct {
	Name        string
	AccountName string
	AccountType string
}

// TrendPoint é o total de um período da série de tendência
type TrendPoint struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// PartyTotal é uma linha agregada por cliente ou fornecedor vinda do banco
type PartyTotal struct {
	Party string
	Total float64
}

// CustomerTotal é uma posição do ranking de clientes por faturamento
type CustomerTotal struct {
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
}

// SupplierTotal é uma posição do ranking de fornecedores por compras
type SupplierTotal struct {
	Supplier string  `json:"supplier"`
	Total    float64 `json:"total"`
}

// OverdueCustomer é uma posição do ranking de clientes por valor vencido
type OverdueCustomer struct {
	Customer      string  `json:"customer"`
	OverdueAmount float64 `json:"overdue_amount"`
}

// CustomerTotals converte as linhas do ranking de clientes
func CustomerTotals(rows []PartyTotal) []CustomerTotal {
	totals := make([]CustomerTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, CustomerTotal{Customer: row.Party, Total: row.Total})
	}
	return totals
}

// SupplierTotals converte as linhas do ranking de fornecedores
func SupplierTotals(rows []PartyTotal) []SupplierTotal {
	totals := make([]SupplierTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, SupplierTotal{Supplier: row.Party, Total: row.Total})
	}
	return totals
}

// OverdueCustomers converte as linhas do ranking de vencidos
func OverdueCustomers(rows []PartyTotal) []OverdueCustomer {
	customers := make([]OverdueCustomer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, OverdueCustomer{Customer: row.Party, OverdueAmount: row.Total})
	}
	return customers
}

// KPIs são os indicadores principais do dashboard
type KPIs struct {
	SalesInvoiceGross   Comparison `json:"sales_invoice_gross"`
	SalesInvoiceNet     Comparison `json:"sales_invoice_net"`
	SalesOrder          Comparison `json:"sales_order"`
	DeliveryNote        Comparison `json:"delivery_note"`
	PaidSalesInvoice    Comparison `json:"paid_sales_invoice"`
	PendingSalesInvoice Comparison `json:"pending_sales_invoice"`
	Purchases           Comparison `json:"purchases"`
	Income              Comparison `json:"income"`
	Expense             Comparison `json:"expense"`
	NetProfit           Comparison `json:"net_profit"`
	AROutstanding       float64    `json:"ar_outstanding"`
	APOutstanding       float64    `json:"ap_outstanding"`
	CashTotal           float64    `json:"cash_total"`
}

type AgingSummary struct {
	AR Aging `json:"ar"`
	AP Aging `json:"ap"`
}

type Trends struct {
	Sales     []TrendPoint `json:"sales"`
	Purchases []TrendPoint `json:"purchases"`
}

type Breakdowns struct {
	CashBank            []CashBankBalance `json:"cash_bank"`
	TopCustomers        []CustomerTotal   `json:"top_customers"`
	TopSuppliers        []SupplierTotal   `json:"top_suppliers"`
	TopOverdueCustomers []OverdueCustomer `json:"top_overdue_customers"`
}

type CustomerHealth struct {
	NewCustomers int               `json:"new_customers"`
	TopOverdue   []OverdueCustomer `json:"top_overdue"`
}

// HRCounters são os indicadores de pessoas; módulos opcionais ausentes resultam em zero
type HRCounters struct {
	Headcount     int     `json:"headcount"`
	PayrollCost   float64 `json:"payroll_cost"`
	OpenPositions int     `json:"open_positions"`
}

// AnnualSummary é a resposta completa do relatório anual
type AnnualSummary struct {
	Company              string         `json:"company"`
	CompanyCurrency      string         `json:"company_currency"`
	PresentationCurrency string         `json:"presentation_currency"`
	CurrentPeriod        PeriodResponse `json:"current_period"`
	PreviousPeriod       PeriodResponse `json:"previous_period"`
	KPIs                 KPIs           `json:"kpis"`
	Aging                AgingSummary   `json:"aging"`
	Trends               Trends         `json:"trends"`
	Breakdowns           Breakdowns     `json:"breakdowns"`
	CustomerHealth       CustomerHealth `json:"customer_health"`
	HR                   HRCounters     `json:"hr"`

	// Unavailable lista as sub-agregações que caíram no valor neutro
	Unavailable []string `json:"-"`
}

// DashboardContext são os valores iniciais da tela do dashboard
type DashboardContext struct {
	Company     string `json:"company"`
	CurrentYear int    `json:"current_year"`
}
