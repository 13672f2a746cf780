package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/repository"
	"go.uber.org/zap"
)

// UserDirectory is the read side of the user store the authorizer consults.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authorizer decides whether a verified identity may perform a privileged
// operation. The decision is made against the STORED role, not whatever role
// claim the token happens to carry — tokens outlive role changes.
type Authorizer struct {
	users UserDirectory
	log   *zap.Logger
}

func NewAuthorizer(users UserDirectory, log *zap.Logger) *Authorizer {
	return &Authorizer{users: users, log: log}
}

// Require returns nil iff the user identified by email holds the capability.
// An unknown user is a Forbidden outcome, never an internal error: the gate
// must not leak which emails exist.
func (a *Authorizer) Require(ctx context.Context, email string, cap domain.Capability) error {
	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("resolving caller: %w", err)
	}

	if !user.Role.Has(cap) {
		a.log.Debug("capability denied",
			zap.String("email", email),
			zap.String("capability", string(cap)),
			zap.String("role", string(user.Role)),
		)
		return ErrForbidden
	}
	return nil
}

// HasRole reports whether the stored role matches. Used by the public
// admin-check endpoint; unknown users simply read as false.
func (a *Authorizer) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolving user: %w", err)
	}
	return user.Role == role, nil
}
