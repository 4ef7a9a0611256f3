package authorizing

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("usuário não autenticado")
	ErrInsufficientRole     = errors.New("privilégios insuficientes")
	ErrCompanyNotPermitted  = errors.New("empresa não permitida para o usuário")
	ErrNoCompanyConfigured  = errors.New("nenhuma empresa configurada")
	ErrDefaultCompanyLookup = errors.New("erro ao buscar empresa padrão")
)

// AccessError é um erro de autorização com contexto do usuário
type AccessError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // Usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccessError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AccessError) Unwrap() error {
	return e.Err
}

// IsForbidden verifica se o erro nega acesso a um usuário autenticado
func IsForbidden(err error) bool {
	return errors.Is(err, ErrInsufficientRole) || errors.Is(err, ErrCompanyNotPermitted)
}

// NewAccessError cria um novo erro de autorização
func NewAccessError(baseErr error, code string, userID string, details string) *AccessError {
	return &AccessError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
