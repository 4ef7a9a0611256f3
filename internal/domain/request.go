package domain

// AnnualSummaryRequest são os parâmetros escalares da consulta do relatório anual.
// As listas de dimensões chegam cruas e são normalizadas pelo montador de filtros.
type AnnualSummaryRequest struct {
	Year       int                    `validate:"omitempty,min=1900,max=9999"`
	Company    string                 `validate:"omitempty,max=140"`
	PeriodType string                 `validate:"omitempty,oneof=monthly quarterly weekly"`
	Currency   string                 `validate:"omitempty,iso4217"`
	Dimensions map[Dimension][]string `validate:"-"`
}
