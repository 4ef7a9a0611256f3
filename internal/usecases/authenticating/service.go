package authenticating

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/annual-summary-api/infrastructure/repository"
	"github.com/vfg2006/annual-summary-api/internal/config"
	"github.com/vfg2006/annual-summary-api/internal/domain"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolveCaller(ctx context.Context, claims *domain.Claims) (*domain.Caller, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// ValidateToken confere a assinatura HS256 do token emitido pelo ERP
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ResolveCaller carrega papéis e empresas do usuário do token.
// Usuário desativado não recebe caller.
func (s *Service) ResolveCaller(ctx context.Context, claims *domain.Claims) (*domain.Caller, error) {
	if claims == nil || claims.UserID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem usuário")
	}

	userID := claims.UserID

	enabled, err := s.userRepo.IsEnabled(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar usuário no banco de dados")
	}
	if !enabled {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, userID, "Conta desativada")
	}

	roles, err := s.userRepo.GetRoles(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar papéis do usuário")
	}

	defaultCompany, err := s.userRepo.GetDefaultCompany(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar empresa padrão do usuário")
	}

	grants, err := s.userRepo.GetCompanyGrants(ctx, userID)
	if err != nil {
		return nil, NewUserAuthError(err, apiErrors.ErrDatabaseOperation, userID, "Erro ao consultar permissões de empresa")
	}

	logrus.WithFields(logrus.Fields{
		"user":   userID,
		"roles":  len(roles),
		"grants": len(grants),
	}).Debug("Caller resolvido")

	return &domain.Caller{
		UserID:         userID,
		Roles:          roles,
		DefaultCompany: defaultCompany,
		CompanyGrants:  grants,
	}, nil
}
