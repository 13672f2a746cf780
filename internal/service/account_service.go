package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/repository"
	"github.com/clinicbook/api/pkg/auth"
	"go.uber.org/zap"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetRole(ctx context.Context, email string, role domain.Role) error
}

// AccountService owns the user directory: sign-in-by-upsert, role grants, and
// the admin listing. Identity proofing happens upstream; by the time a
// request reaches this service the email is trusted.
type AccountService struct {
	users      UserRepository
	jwtManager *auth.JWTManager
	auditSvc   *AuditService
	log        *zap.Logger
}

func NewAccountService(users UserRepository, jwtManager *auth.JWTManager, auditSvc *AuditService, log *zap.Logger) *AccountService {
	return &AccountService{users: users, jwtManager: jwtManager, auditSvc: auditSvc, log: log}
}

// SignIn upserts the user record and issues a token pair for it. New users
// start as patients; the stored role is never touched by this path.
func (s *AccountService) SignIn(ctx context.Context, email, name, ip string) (*domain.User, *domain.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, &ValidationError{Fields: []string{"email must be a valid address"}}
	}

	user, err := s.users.Upsert(ctx, &domain.User{
		Email: email,
		Name:  strings.TrimSpace(name),
		Role:  domain.RolePatient,
	})
	if err != nil {
		s.log.Error("failed to upsert user", zap.Error(err))
		return nil, nil, fmt.Errorf("upserting user: %w", err)
	}

	pair, err := s.jwtManager.GenerateTokenPair(&domain.Claims{
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		s.log.Error("failed to generate token pair", zap.Error(err))
		return nil, nil, fmt.Errorf("generating tokens: %w", err)
	}

	s.log.Info("user signed in",
		zap.String("email", user.Email),
		zap.String("ip", ip),
	)

	return user, pair, nil
}

// RefreshToken issues a new token pair given a valid refresh token.
func (s *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	// Re-read the stored role; it may have changed since issuance.
	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	return s.jwtManager.GenerateTokenPair(&domain.Claims{
		Email: user.Email,
		Role:  user.Role,
	})
}

func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// GrantAdmin promotes a user. The caller must already have been authorized;
// this method only performs the write and the audit trail.
func (s *AccountService) GrantAdmin(ctx context.Context, targetEmail, callerEmail, ip string) error {
	targetEmail = strings.ToLower(strings.TrimSpace(targetEmail))

	err := s.users.SetRole(ctx, targetEmail, domain.RoleAdmin)
	if errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	if err != nil {
		s.log.Error("failed to grant admin role", zap.Error(err))
		return fmt.Errorf("granting admin role: %w", err)
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		ActorEmail:   callerEmail,
		ActorRole:    string(domain.RoleAdmin),
		Action:       "update",
		ResourceType: "user",
		ResourceID:   targetEmail,
		IPAddress:    ip,
		Changes:      `{"role":"admin"}`,
	})

	return nil
}
