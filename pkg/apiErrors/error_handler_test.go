package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrCompanyNotPermitted, http.StatusForbidden},
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrConfiguration, http.StatusInternalServerError},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrCompanyNotPermitted, "empresa não permitida", map[string]string{"company": "ACME"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrCompanyNotPermitted, body.Code)
	assert.Equal(t, "empresa não permitida", body.Message)
	assert.Equal(t, map[string]any{"company": "ACME"}, body.Details)
}
