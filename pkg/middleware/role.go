package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis do ERP.
// Superusuários sempre passam.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFromContext(r.Context())
			if !ok || !caller.IsAuthenticated() {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := caller.IsSuperuser()
			for _, role := range allowedRoles {
				if caller.HasRole(role) {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário %s, papéis=%v", caller.UserID, caller.Roles)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ManagementOnly libera o acesso para Management e System Manager
func ManagementOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleManagement, domain.RoleSystemManager})
}

// SystemManagerOnly libera o acesso apenas para System Manager
func SystemManagerOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleSystemManager})
}
