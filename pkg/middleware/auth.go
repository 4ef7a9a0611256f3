package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/internal/usecases/authenticating"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"github.com/vfg2006/annual-summary-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser   contextKey = "user"
	ContextKeyCaller contextKey = "caller"
)

// AuthMiddleware valida o token do ERP e coloca o caller resolvido no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			caller, err := authService.ResolveCaller(r.Context(), claims)
			if err != nil {
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
					return
				}
				log.ForContext(r.Context()).WithError(err).Error("Erro ao carregar o usuário do token")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao carregar o usuário", nil)
				return
			}

			annotateUser(r.Context(), caller.UserID)

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			ctx = context.WithValue(ctx, ContextKeyCaller, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext retorna o caller colocado pelo AuthMiddleware
func CallerFromContext(ctx context.Context) (*domain.Caller, bool) {
	caller, ok := ctx.Value(ContextKeyCaller).(*domain.Caller)
	return caller, ok && caller != nil
}
