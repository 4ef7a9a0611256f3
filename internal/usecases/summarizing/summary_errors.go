package summarizing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("requisição inválida")
	ErrMalformedList    = errors.New("lista de filtros malformada")
	ErrInvalidParameter = errors.New("parâmetro inválido")
)

// SummaryError é um erro de requisição do relatório com o código da API
type SummaryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Parâmetro envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SummaryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError cria um novo erro de requisição
func NewSummaryError(baseErr error, code string, field string, details string) *SummaryError {
	return &SummaryError{
		Err:     baseErr,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
