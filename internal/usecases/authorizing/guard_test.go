package authorizing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository/mocks"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGuard_Authorize(t *testing.T) {
	manager := func(defaultCompany string, grants ...string) *domain.Caller {
		return &domain.Caller{
			UserID:         "maria@acme.com",
			Roles:          []string{domain.RoleManagement},
			DefaultCompany: defaultCompany,
			CompanyGrants:  grants,
		}
	}

	tests := []struct {
		name      string
		caller    *domain.Caller
		requested string
		setup     func(companyRepo *mocks.MockCompanyRepository)
		want      string
		wantErr   error
		wantCode  string
	}{
		{
			name:     "Sem caller é não autenticado",
			caller:   nil,
			wantErr:  ErrUnauthorized,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Guest é não autenticado",
			caller:   &domain.Caller{UserID: domain.UserGuest, Roles: []string{domain.RoleManagement}},
			wantErr:  ErrUnauthorized,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Usuário sem papel Management é proibido",
			caller:   &domain.Caller{UserID: "joao@acme.com", Roles: []string{"Accounts User"}, DefaultCompany: "ACME"},
			wantErr:  ErrInsufficientRole,
			wantCode: apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:      "Empresa fora das permissões é proibida",
			caller:    manager("ACME Brasil", "ACME Chile"),
			requested: "ACME Argentina",
			wantErr:   ErrCompanyNotPermitted,
			wantCode:  apiErrors.ErrCompanyNotPermitted,
		},
		{
			name:      "Empresa permitida por concessão explícita",
			caller:    manager("ACME Brasil", "ACME Chile"),
			requested: "ACME Chile",
			want:      "ACME Chile",
		},
		{
			name:   "Sem empresa pedida usa a empresa padrão do usuário",
			caller: manager("ACME Brasil", "ACME Chile"),
			want:   "ACME Brasil",
		},
		{
			name:   "Sem empresa padrão usa a primeira concessão",
			caller: manager("", "ACME Chile", "ACME Brasil"),
			want:   "ACME Chile",
		},
		{
			name:   "Sem permissões cai para o padrão global",
			caller: manager(""),
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().GetGlobalDefaultCompany(gomock.Any()).Return("ACME Global", nil)
			},
			want: "ACME Global",
		},
		{
			name:   "Nenhuma empresa em lugar nenhum é erro de configuração",
			caller: manager(""),
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().GetGlobalDefaultCompany(gomock.Any()).Return("", nil)
			},
			wantErr:  ErrNoCompanyConfigured,
			wantCode: apiErrors.ErrConfiguration,
		},
		{
			name:   "Falha ao buscar o padrão global",
			caller: manager(""),
			setup: func(companyRepo *mocks.MockCompanyRepository) {
				companyRepo.EXPECT().GetGlobalDefaultCompany(gomock.Any()).Return("", errors.New("conexão recusada"))
			},
			wantErr:  ErrDefaultCompanyLookup,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:      "System Manager acessa qualquer empresa",
			caller:    &domain.Caller{UserID: "admin@acme.com", Roles: []string{domain.RoleSystemManager}},
			requested: "ACME Argentina",
			want:      "ACME Argentina",
		},
		{
			name:      "Administrator é superusuário mesmo sem papéis",
			caller:    &domain.Caller{UserID: domain.UserAdministrator},
			requested: "ACME Argentina",
			want:      "ACME Argentina",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			companyRepo := mocks.NewMockCompanyRepository(ctrl)
			if tt.setup != nil {
				tt.setup(companyRepo)
			}

			guard := NewGuard(companyRepo)
			company, err := guard.Authorize(context.Background(), tt.caller, tt.requested)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var accessErr *AccessError
				require.ErrorAs(t, err, &accessErr)
				assert.Equal(t, tt.wantCode, accessErr.Code)
				assert.Empty(t, company)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, company)
		})
	}
}

func TestGuard_Context(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)

	guard := &Guard{
		companyRepo: companyRepo,
		now:         func() time.Time { return time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) },
	}

	caller := &domain.Caller{
		UserID:         "maria@acme.com",
		Roles:          []string{domain.RoleManagement},
		DefaultCompany: "ACME Brasil",
	}

	dashboard, err := guard.Context(context.Background(), caller)

	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardContext{Company: "ACME Brasil", CurrentYear: 2024}, dashboard)
}

func TestIsForbidden(t *testing.T) {
	assert.True(t, IsForbidden(NewAccessError(ErrInsufficientRole, apiErrors.ErrInsufficientPrivilege, "u", "")))
	assert.True(t, IsForbidden(NewAccessError(ErrCompanyNotPermitted, apiErrors.ErrCompanyNotPermitted, "u", "x")))
	assert.False(t, IsForbidden(NewAccessError(ErrUnauthorized, apiErrors.ErrInvalidToken, "", "")))
}
