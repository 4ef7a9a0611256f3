package authorizing

import (
	"context"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

// AllowedRoles são os papéis que podem consultar o relatório anual
var AllowedRoles = []string{domain.RoleManagement, domain.RoleSystemManager}

type AccessGuard interface {
	Authorize(ctx context.Context, caller *domain.Caller, requestedCompany string) (string, error)
	Context(ctx context.Context, caller *domain.Caller) (*domain.DashboardContext, error)
}

type Guard struct {
	companyRepo repository.CompanyRepository
	now         func() time.Time
}

func NewGuard(companyRepo repository.CompanyRepository) AccessGuard {
	return &Guard{
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

// Authorize valida o papel do caller e resolve a empresa consultada.
// A empresa pedida é validada antes de qualquer valor padrão ser aplicado.
func (g *Guard) Authorize(ctx context.Context, caller *domain.Caller, requestedCompany string) (string, error) {
	if err := checkRole(caller); err != nil {
		return "", err
	}

	permitted := caller.PermittedCompanies()
	superuser := caller.IsSuperuser()

	if requestedCompany != "" {
		if !superuser && !slices.Contains(permitted, requestedCompany) {
			logrus.WithFields(logrus.Fields{
				"user":    caller.UserID,
				"company": requestedCompany,
			}).Warn("Empresa solicitada fora das permissões do usuário")
			return "", NewAccessError(ErrCompanyNotPermitted, apiErrors.ErrCompanyNotPermitted, caller.UserID, requestedCompany)
		}
		return requestedCompany, nil
	}

	return g.defaultCompany(ctx, caller, permitted)
}

// Context retorna empresa e ano iniciais da tela do dashboard
func (g *Guard) Context(ctx context.Context, caller *domain.Caller) (*domain.DashboardContext, error) {
	company, err := g.Authorize(ctx, caller, "")
	if err != nil {
		return nil, err
	}

	return &domain.DashboardContext{
		Company:     company,
		CurrentYear: g.now().Year(),
	}, nil
}

func (g *Guard) defaultCompany(ctx context.Context, caller *domain.Caller, permitted []string) (string, error) {
	if len(permitted) > 0 {
		return permitted[0], nil
	}

	company, err := g.companyRepo.GetGlobalDefaultCompany(ctx)
	if err != nil {
		return "", NewAccessError(ErrDefaultCompanyLookup, apiErrors.ErrDatabaseOperation, caller.UserID, err.Error())
	}

	if company == "" {
		return "", NewAccessError(ErrNoCompanyConfigured, apiErrors.ErrConfiguration, caller.UserID, "Nenhuma empresa configurada")
	}

	return company, nil
}

func checkRole(caller *domain.Caller) error {
	if !caller.IsAuthenticated() {
		return NewAccessError(ErrUnauthorized, apiErrors.ErrInvalidToken, "", "Sessão obrigatória")
	}

	if caller.IsSuperuser() {
		return nil
	}

	for _, role := range AllowedRoles {
		if caller.HasRole(role) {
			return nil
		}
	}

	logrus.Warnf("Acesso negado ao relatório anual para usuário %s", caller.UserID)
	return NewAccessError(ErrInsufficientRole, apiErrors.ErrInsufficientPrivilege, caller.UserID, "Papel Management obrigatório")
}
