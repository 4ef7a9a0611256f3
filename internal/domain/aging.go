package domain

// AgingRow é um total em aberto agrupado por dias decorridos desde a data de lançamento
type AgingRow struct {
	Days    int
	Overdue bool
	Amount  float64
}

// Aging agrupa saldos em aberto por faixa de dias.
// As faixas e o vencido são partições independentes: um valor entra em uma faixa
// e, se vencido, também em Overdue.
type Aging struct {
	Bucket0To30  float64 `json:"0_30"`
	Bucket31To60 float64 `json:"31_60"`
	Bucket61To90 float64 `json:"61_90"`
	Bucket90Plus float64 `json:"90_plus"`
	Overdue      float64 `json:"overdue"`
	Total        float64 `json:"total"`
}

// Add classifica um valor em aberto na faixa correspondente
func (a *Aging) Add(days int, overdue bool, amount float64) {
	switch {
	case days <= 30:
		a.Bucket0To30 += amount
	case days <= 60:
		a.Bucket31To60 += amount
	case days <= 90:
		a.Bucket61To90 += amount
	default:
		a.Bucket90Plus += amount
	}

	if overdue {
		a.Overdue += amount
	}
	a.Total += amount
}

// NewAging monta as faixas a partir das linhas agregadas do banco
func NewAging(rows []AgingRow) Aging {
	var aging Aging
	for _, row := range rows {
		aging.Add(row.Days, row.Overdue, row.Amount)
	}
	return aging
}
