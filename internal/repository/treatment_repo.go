package repository

import (
	"context"
	"errors"

	"github.com/clinicbook/api/internal/domain/treatment"
	"gorm.io/gorm"
)

type TreatmentRepo struct {
	db *gorm.DB
}

func NewTreatmentRepo(db *gorm.DB) *TreatmentRepo {
	return &TreatmentRepo{db: db}
}

var _ treatment.Repository = (*TreatmentRepo)(nil)

func (r *TreatmentRepo) List(ctx context.Context) ([]*treatment.Treatment, error) {
	var out []*treatment.Treatment
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	if err != nil {
		return nil, transient(err, "listing treatments")
	}
	return out, nil
}

func (r *TreatmentRepo) GetByName(ctx context.Context, name string) (*treatment.Treatment, error) {
	var t treatment.Treatment
	err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, treatment.ErrTreatmentNotFound
	}
	if err != nil {
		return nil, transient(err, "loading treatment")
	}
	return &t, nil
}

func (r *TreatmentRepo) ListNames(ctx context.Context) ([]*treatment.NameProjection, error) {
	var out []*treatment.NameProjection
	err := r.db.WithContext(ctx).
		Model(&treatment.Treatment{}).
		Select("id", "name").
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, transient(err, "listing treatment names")
	}
	return out, nil
}
