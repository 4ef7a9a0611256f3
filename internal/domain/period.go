package domain

import (
	"fmt"
	"strconv"
	"time"
)

// PeriodType define o agrupamento das séries de tendência
type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodWeekly    PeriodType = "weekly"
)

// ParsePeriodType converte o parâmetro da requisição, assumindo mensal quando vazio
func ParsePeriodType(value string) (PeriodType, error) {
	switch PeriodType(value) {
	case "":
		return PeriodMonthly, nil
	case PeriodMonthly, PeriodQuarterly, PeriodWeekly:
		return PeriodType(value), nil
	default:
		return "", fmt.Errorf("tipo de período inválido: %s", value)
	}
}

// Period é sempre um ano civil completo (01/01 a 31/12)
type Period struct {
	Year      int
	StartDate time.Time
	EndDate   time.Time
	Label     string
}

// CalendarYear monta o período de um ano civil
func CalendarYear(year int) Period {
	return Period{
		Year:      year,
		StartDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		Label:     strconv.Itoa(year),
	}
}

// Previous retorna o ano civil anterior
func (p Period) Previous() Period {
	return CalendarYear(p.Year - 1)
}

// PeriodResponse é a representação do período na resposta
type PeriodResponse struct {
	Year      int    `json:"year"`
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Response formata o período para a API
func (p Period) Response() PeriodResponse {
	return PeriodResponse{
		Year:      p.Year,
		Label:     p.Label,
		StartDate: p.StartDate.Format(time.DateOnly),
		EndDate:   p.EndDate.Format(time.DateOnly),
	}
}
