package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrUserDisabled = errors.New("usuário desativado")
)

// AuthError carrega o código da API que o AuthMiddleware devolve ao cliente
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error { return e.Err }

func NewAuthError(baseErr error, code, details string) *AuthError {
	return NewUserAuthError(baseErr, code, "", details)
}

// NewUserAuthError identifica o usuário do token que foi recusado
func NewUserAuthError(baseErr error, code, userID, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
