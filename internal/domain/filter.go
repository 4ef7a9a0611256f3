package domain

import (
	"slices"
	"time"
)

// Condition é uma expressão de filtro tipada. A camada de consulta compila
// cada variante para SQL parametrizado.
type Condition interface {
	condition()
}

// Equals restringe a coluna a um valor
type Equals struct {
	Column string
	Value  any
}

// In restringe a coluna a uma lista de valores (OU dentro da dimensão)
type In struct {
	Column string
	Values []string
}

// Between restringe a coluna a um intervalo fechado
type Between struct {
	Column string
	From   any
	To     any
}

// GreaterThan restringe a coluna a valores estritamente maiores
type GreaterThan struct {
	Column string
	Value  any
}

// AtMost restringe a coluna a valores menores ou iguais
type AtMost struct {
	Column string
	Value  any
}

// LessThan restringe a coluna a valores estritamente menores
type LessThan struct {
	Column string
	Value  any
}

// HasItemIn exige ao menos uma linha filha (itens do documento) com a coluna na lista
type HasItemIn struct {
	ItemTable string
	Column    string
	Values    []string
}

func (Equals) condition()      {}
func (In) condition()          {}
func (Between) condition()     {}
func (GreaterThan) condition() {}
func (AtMost) condition()      {}
func (LessThan) condition()    {}
func (HasItemIn) condition()   {}

// Dimension é um filtro de múltipla seleção aceito pelo relatório
type Dimension string

const (
	DimensionCostCenter    Dimension = "cost_center"
	DimensionBranch        Dimension = "branch"
	DimensionProject       Dimension = "project"
	DimensionCustomerGroup Dimension = "customer_group"
	DimensionSupplierGroup Dimension = "supplier_group"
	DimensionItemGroup     Dimension = "item_group"
)

// Param retorna o nome do parâmetro da API para a dimensão
func (d Dimension) Param() string {
	if d == DimensionBranch {
		return "branches"
	}
	return string(d) + "s"
}

// Dimensions lista as dimensões na ordem dos parâmetros da API
var Dimensions = []Dimension{
	DimensionCostCenter,
	DimensionBranch,
	DimensionProject,
	DimensionCustomerGroup,
	DimensionSupplierGroup,
	DimensionItemGroup,
}

// FilterSet é o conjunto normalizado de filtros de uma consulta.
// Dimensão ausente significa sem restrição.
type FilterSet struct {
	Company    string
	Period     Period
	Dimensions map[Dimension][]string
}

// Values retorna os valores selecionados para a dimensão (nil = sem restrição)
func (f FilterSet) Values(dimension Dimension) []string {
	return f.Dimensions[dimension]
}

// ForPeriod copia o filtro trocando apenas o intervalo de datas
func (f FilterSet) ForPeriod(period Period) FilterSet {
	dimensions := make(map[Dimension][]string, len(f.Dimensions))
	for dimension, values := range f.Dimensions {
		dimensions[dimension] = slices.Clone(values)
	}

	return FilterSet{
		Company:    f.Company,
		Period:     period,
		Dimensions: dimensions,
	}
}

// DimensionConditions retorna as restrições dimensionais suportadas pelo documento
func (f FilterSet) DimensionConditions(doc DocType) []Condition {
	conditions := make([]Condition, 0, len(doc.Dimensions))
	for _, dimension := range doc.Dimensions {
		values := f.Values(dimension)
		if len(values) == 0 {
			continue
		}

		if dimension == DimensionItemGroup {
			if doc.ItemTable == "" {
				continue
			}
			conditions = append(conditions, HasItemIn{
				ItemTable: doc.ItemTable,
				Column:    string(dimension),
				Values:    values,
			})
			continue
		}

		conditions = append(conditions, In{Column: string(dimension), Values: values})
	}

	return conditions
}

// ScopeConditions retorna status e empresa do documento, sem intervalo de datas
func (f FilterSet) ScopeConditions(doc DocType) []Condition {
	return []Condition{
		doc.Status,
		Equals{Column: "company", Value: f.Company},
	}
}

// PeriodConditions retorna status, empresa, intervalo do período e dimensões
func (f FilterSet) PeriodConditions(doc DocType) []Condition {
	conditions := f.ScopeConditions(doc)
	conditions = append(conditions, Between{
		Column: doc.DateField,
		From:   f.Period.StartDate.Format(time.DateOnly),
		To:     f.Period.EndDate.Format(time.DateOnly),
	})
	return append(conditions, f.DimensionConditions(doc)...)
}

// OutstandingConditions retorna o escopo de saldos em aberto (sem limite de período)
func (f FilterSet) OutstandingConditions(doc DocType) []Condition {
	conditions := f.ScopeConditions(doc)
	conditions = append(conditions, GreaterThan{Column: "outstanding_amount", Value: 0})
	return append(conditions, f.DimensionConditions(doc)...)
}

// AuditPayload descreve os filtros para o registro de auditoria
func (f FilterSet) AuditPayload() map[string]any {
	payload := make(map[string]any, len(Dimensions)+1)
	for _, dimension := range Dimensions {
		payload[dimension.Param()] = f.Values(dimension)
	}
	return payload
}
