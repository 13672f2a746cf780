package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

var _ booking.Repository = (*BookingRepo)(nil)

// Create inserts the booking and lets the unique index on
// (treatment, date, patient) arbitrate concurrent submissions. The losing
// insert reads back the winning row so the caller can return it without a
// second round trip.
func (r *BookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing booking.Booking
		lookupErr := r.db.WithContext(ctx).
			Where("treatment = ? AND date = ? AND patient = ?", b.Treatment, b.Date, b.Patient).
			First(&existing).Error
		if lookupErr != nil {
			return transient(lookupErr, "loading conflicting booking")
		}
		return &booking.DuplicateBookingError{Existing: &existing}
	}

	return transient(err, "creating booking")
}

func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, transient(err, "loading booking")
	}
	return &b, nil
}

func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&out).Error
	if err != nil {
		return nil, transient(err, fmt.Sprintf("listing bookings for %q", date))
	}
	return out, nil
}

func (r *BookingRepo) ListByPatient(ctx context.Context, patient string) ([]*booking.Booking, error) {
	var out []*booking.Booking
	err := r.db.WithContext(ctx).
		Where("patient = ?", patient).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, transient(err, "listing patient bookings")
	}
	return out, nil
}
