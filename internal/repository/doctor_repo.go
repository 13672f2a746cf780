package repository

import (
	"context"
	"errors"

	"github.com/clinicbook/api/internal/domain/doctor"
	"gorm.io/gorm"
)

type DoctorRepo struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepo {
	return &DoctorRepo{db: db}
}

var _ doctor.Repository = (*DoctorRepo)(nil)

func (r *DoctorRepo) Create(ctx context.Context, d *doctor.Doctor) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return doctor.ErrDoctorAlreadyExists
	}
	if err != nil {
		return transient(err, "creating doctor")
	}
	return nil
}

func (r *DoctorRepo) List(ctx context.Context) ([]*doctor.Doctor, error) {
	var out []*doctor.Doctor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	if err != nil {
		return nil, transient(err, "listing doctors")
	}
	return out, nil
}

func (r *DoctorRepo) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&doctor.Doctor{})
	if res.Error != nil {
		return transient(res.Error, "deleting doctor")
	}
	if res.RowsAffected == 0 {
		return doctor.ErrDoctorNotFound
	}
	return nil
}
