package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos enviados no campo "code". O prefixo indica a origem: AUTH do token e
// das permissões, VAL dos parâmetros, RTE do roteador, SRV do servidor e CFG do ERP.
const (
	ErrUserDisabled          = "AUTH_002"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrCompanyNotPermitted   = "AUTH_011"

	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	ErrNotFound         = "RTE_001"
	ErrMethodNotAllowed = "RTE_002"

	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"

	// Nenhuma empresa padrão no ERP
	ErrConfiguration = "CFG_001"
)

var statusByCode = map[string]int{
	ErrUserDisabled:          http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrCompanyNotPermitted:   http.StatusForbidden,

	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,

	ErrNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError responde com o status do código e o corpo {"code","message","details"}
func WriteError(w http.ResponseWriter, code, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{Code: code, Message: message, Details: details})
}

// StatusFor devolve 500 para códigos desconhecidos e para os de SRV e CFG
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
