package summarizing

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{name: "Parâmetro ausente", raw: nil, want: nil},
		{name: "Valor escalar", raw: []string{"Main - ACME"}, want: []string{"Main - ACME"}},
		{name: "Escalar com espaços", raw: []string{"  Main - ACME  "}, want: []string{"Main - ACME"}},
		{name: "Lista JSON", raw: []string{`["Main - ACME", "Vendas - ACME"]`}, want: []string{"Main - ACME", "Vendas - ACME"}},
		{name: "Parâmetro repetido", raw: []string{"Norte", "Sul"}, want: []string{"Norte", "Sul"}},
		{name: "Remove vazios e duplicados", raw: []string{`["Norte", "", " Norte ", null, "Sul"]`, "Sul"}, want: []string{"Norte", "Sul"}},
		{name: "Lista vazia não restringe", raw: []string{"[]"}, want: nil},
		{name: "Só vazios não restringe", raw: []string{"", "  "}, want: nil},
		{name: "Números viram texto", raw: []string{`[2024, "Filial 1"]`}, want: []string{"2024", "Filial 1"}},
		{name: "JSON malformado é rejeitado", raw: []string{`["Norte", "Sul"`}, wantErr: true},
		{name: "Elemento aninhado é rejeitado", raw: []string{`[["Norte"]]`}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.raw)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedList)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDimensions(t *testing.T) {
	t.Run("Mantém apenas dimensões com valores", func(t *testing.T) {
		dimensions, err := NormalizeDimensions(map[domain.Dimension][]string{
			domain.DimensionCostCenter: {`["Main - ACME"]`},
			domain.DimensionBranch:     {""},
			domain.DimensionItemGroup:  {"Produtos", "Serviços"},
		})

		require.NoError(t, err)
		assert.Equal(t, map[domain.Dimension][]string{
			domain.DimensionCostCenter: {"Main - ACME"},
			domain.DimensionItemGroup:  {"Produtos", "Serviços"},
		}, dimensions)
	})

	t.Run("Lista malformada vira erro de validação", func(t *testing.T) {
		_, err := NormalizeDimensions(map[domain.Dimension][]string{
			domain.DimensionProject: {"[PRJ-001"},
		})

		var summaryErr *SummaryError
		require.ErrorAs(t, err, &summaryErr)
		assert.Equal(t, apiErrors.ErrInvalidFormat, summaryErr.Code)
		assert.Equal(t, "projects", summaryErr.Field)
	})
}

func TestBuildFilters(t *testing.T) {
	dimensions := map[domain.Dimension][]string{domain.DimensionProject: {"PRJ-001"}}

	current, previous := BuildFilters("ACME", 2024, dimensions)

	assert.Equal(t, "ACME", current.Company)
	assert.Equal(t, "ACME", previous.Company)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), current.Period.StartDate)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), current.Period.EndDate)
	assert.Equal(t, "2023", previous.Period.Label)
	assert.Equal(t, current.Dimensions, previous.Dimensions)

	// O filtro anterior é uma cópia independente
	previous.Dimensions[domain.DimensionProject][0] = "PRJ-999"
	assert.Equal(t, "PRJ-001", current.Values(domain.DimensionProject)[0])
}

func TestRequestFromQuery(t *testing.T) {
	t.Run("Lê escalares e listas cruas", func(t *testing.T) {
		query := url.Values{
			"year":         {"2024"},
			"company":      {" ACME "},
			"currency":     {"brl"},
			"period_type":  {"quarterly"},
			"cost_centers": {`["Main - ACME"]`},
			"branches":     {"Norte", "Sul"},
		}

		request, err := RequestFromQuery(query)

		require.NoError(t, err)
		assert.Equal(t, 2024, request.Year)
		assert.Equal(t, "ACME", request.Company)
		assert.Equal(t, "BRL", request.Currency)
		assert.Equal(t, "quarterly", request.PeriodType)
		assert.Equal(t, []string{`["Main - ACME"]`}, request.Dimensions[domain.DimensionCostCenter])
		assert.Equal(t, []string{"Norte", "Sul"}, request.Dimensions[domain.DimensionBranch])
		assert.NotContains(t, request.Dimensions, domain.DimensionProject)
	})

	t.Run("Ano não numérico é rejeitado", func(t *testing.T) {
		_, err := RequestFromQuery(url.Values{"year": {"dois mil"}})

		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		request   *domain.AnnualSummaryRequest
		wantField string
	}{
		{name: "Requisição vazia é válida", request: &domain.AnnualSummaryRequest{}},
		{name: "Requisição completa", request: &domain.AnnualSummaryRequest{Year: 2024, PeriodType: "weekly", Currency: "BRL"}},
		{name: "Ano fora do intervalo", request: &domain.AnnualSummaryRequest{Year: 1800}, wantField: "year"},
		{name: "Tipo de período desconhecido", request: &domain.AnnualSummaryRequest{PeriodType: "daily"}, wantField: "period_type"},
		{name: "Moeda inexistente", request: &domain.AnnualSummaryRequest{Currency: "XYZ"}, wantField: "currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.request)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var summaryErr *SummaryError
			require.ErrorAs(t, err, &summaryErr)
			assert.Equal(t, apiErrors.ErrInvalidFormat, summaryErr.Code)
			assert.Equal(t, tt.wantField, summaryErr.Field)
		})
	}
}
