package repository

import (
	"context"
	"errors"
	"time"

	"github.com/clinicbook/api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, transient(err, "loading user")
	}
	return &u, nil
}

// Upsert creates the user on first sight or refreshes the display name and
// last-seen timestamp. The role column is deliberately left out of the update
// set: an upsert must never escalate (or reset) a role.
func (r *UserRepo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now()
	u.LastSeenAt = &now
	if u.Role == "" {
		u.Role = domain.RolePatient
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "last_seen_at", "updated_at"}),
		}).
		Create(u).Error
	if err != nil {
		return nil, transient(err, "upserting user")
	}

	// Re-read so the caller sees the stored role, not the default on the
	// inserted struct.
	return r.GetByEmail(ctx, u.Email)
}

func (r *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	var out []*domain.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	if err != nil {
		return nil, transient(err, "listing users")
	}
	return out, nil
}

// SetRole updates a user's role. Returns ErrUserNotFound if no row matched.
func (r *UserRepo) SetRole(ctx context.Context, email string, role domain.Role) error {
	res := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", email).
		Update("role", role)
	if res.Error != nil {
		return transient(res.Error, "updating user role")
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
