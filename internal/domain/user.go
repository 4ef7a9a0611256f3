package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis reconhecidos pelo dashboard
const (
	RoleManagement    = "Management"
	RoleSystemManager = "System Manager"

	// UserAdministrator é o superusuário embutido do ERP
	UserAdministrator = "Administrator"
	// UserGuest representa uma sessão não autenticada no ERP
	UserGuest = "Guest"
)

// Claims são as informações carregadas no token emitido pelo ERP
type Claims struct {
	UserID    string `json:"user_id"`
	UserEmail string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Caller é a capacidade explícita de quem chama o relatório.
// Nenhuma operação consulta sessão global: tudo que importa vem daqui.
type Caller struct {
	UserID         string   `json:"user_id"`
	Roles          []string `json:"roles"`
	DefaultCompany string   `json:"default_company,omitempty"`
	CompanyGrants  []string `json:"company_grants,omitempty"`
}

// IsAuthenticated indica se o caller representa um usuário logado
func (c *Caller) IsAuthenticated() bool {
	return c != nil && c.UserID != "" && c.UserID != UserGuest
}

// HasRole verifica se o caller possui o papel informado
func (c *Caller) HasRole(role string) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Roles, role)
}

// IsSuperuser retorna verdadeiro para System Manager e para o usuário Administrator
func (c *Caller) IsSuperuser() bool {
	if c == nil {
		return false
	}
	return c.UserID == UserAdministrator || c.HasRole(RoleSystemManager)
}

// PermittedCompanies retorna as empresas liberadas para o caller.
// A empresa padrão do usuário vem primeiro, seguida das permissões explícitas.
func (c *Caller) PermittedCompanies() []string {
	if c == nil {
		return nil
	}

	companies := make([]string, 0, len(c.CompanyGrants)+1)
	if c.DefaultCompany != "" {
		companies = append(companies, c.DefaultCompany)
	}
	for _, company := range c.CompanyGrants {
		if company == "" || slices.Contains(companies, company) {
			continue
		}
		companies = append(companies, company)
	}

	return companies
}
