package summarizing

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestFromQuery lê os parâmetros da consulta sem normalizar as listas
func RequestFromQuery(query url.Values) (*domain.AnnualSummaryRequest, error) {
	request := &domain.AnnualSummaryRequest{
		Company:    strings.TrimSpace(query.Get("company")),
		PeriodType: strings.TrimSpace(query.Get("period_type")),
		Currency:   strings.ToUpper(strings.TrimSpace(query.Get("currency"))),
		Dimensions: make(map[domain.Dimension][]string, len(domain.Dimensions)),
	}

	if raw := strings.TrimSpace(query.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewSummaryError(ErrInvalidParameter, apiErrors.ErrInvalidFormat, "year", "ano deve ser numérico")
		}
		request.Year = year
	}

	for _, dimension := range domain.Dimensions {
		if values, ok := query[dimension.Param()]; ok {
			request.Dimensions[dimension] = values
		}
	}

	return request, nil
}

// ParseList normaliza um parâmetro de múltipla seleção.
// Aceita escalar, lista JSON ou parâmetro repetido; valores são aparados,
// vazios descartados e duplicados removidos. Lista vazia vira nil (sem restrição).
func ParseList(raw []string) ([]string, error) {
	values := make([]string, 0, len(raw))

	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		if !strings.HasPrefix(item, "[") {
			values = append(values, item)
			continue
		}

		var decoded []any
		if err := json.Unmarshal([]byte(item), &decoded); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedList, item)
		}

		for _, element := range decoded {
			switch v := element.(type) {
			case nil:
				continue
			case string:
				values = append(values, v)
			case float64, bool:
				values = append(values, fmt.Sprint(v))
			default:
				return nil, fmt.Errorf("%w: elemento não escalar em %s", ErrMalformedList, item)
			}
		}
	}

	normalized := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || slices.Contains(normalized, value) {
			continue
		}
		normalized = append(normalized, value)
	}

	if len(normalized) == 0 {
		return nil, nil
	}

	return normalized, nil
}

// NormalizeDimensions aplica ParseList em cada dimensão recebida
func NormalizeDimensions(raw map[domain.Dimension][]string) (map[domain.Dimension][]string, error) {
	dimensions := make(map[domain.Dimension][]string, len(raw))

	for _, dimension := range domain.Dimensions {
		values, err := ParseList(raw[dimension])
		if err != nil {
			return nil, NewSummaryError(err, apiErrors.ErrInvalidFormat, dimension.Param(), err.Error())
		}
		if values != nil {
			dimensions[dimension] = values
		}
	}

	return dimensions, nil
}

// BuildFilters monta os filtros do ano corrente e do anterior com as mesmas dimensões
func BuildFilters(company string, year int, dimensions map[domain.Dimension][]string) (domain.FilterSet, domain.FilterSet) {
	current := domain.FilterSet{
		Company:    company,
		Period:     domain.CalendarYear(year),
		Dimensions: dimensions,
	}

	return current, current.ForPeriod(current.Period.Previous())
}
