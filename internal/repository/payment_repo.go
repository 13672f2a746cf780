package repository

import (
	"context"
	"errors"

	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/payment"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

var _ payment.Repository = (*PaymentRepo)(nil)

// Confirm runs the whole confirmation in one transaction: lock the booking
// row, refuse if it is already paid, insert the payment record, flip the
// status. The row lock serializes racing confirmations for the same booking,
// so exactly one of them writes a Payment.
func (r *PaymentRepo) Confirm(ctx context.Context, bookingID uuid.UUID, transactionID string, amount int64, currency string) (*booking.Booking, *payment.Payment, error) {
	var b booking.Booking
	var p *payment.Payment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, "id = ?", bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking.ErrBookingNotFound
		}
		if err != nil {
			return transient(err, "loading booking for confirmation")
		}

		if b.Status == booking.StatusPaid {
			return booking.ErrAlreadyPaid
		}

		p = &payment.Payment{
			BookingID:     b.ID,
			Amount:        amount,
			Currency:      currency,
			TransactionID: transactionID,
			Patient:       b.Patient,
		}
		if err := tx.Create(p).Error; err != nil {
			return transient(err, "recording payment")
		}

		res := tx.Model(&booking.Booking{}).
			Where("id = ? AND status = ?", b.ID, booking.StatusPending).
			Updates(map[string]any{
				"status":         booking.StatusPaid,
				"transaction_id": transactionID,
			})
		if res.Error != nil {
			return transient(res.Error, "marking booking paid")
		}
		// The row is locked, so zero rows here can only mean the status
		// changed underneath us — treat it as a duplicate confirmation.
		if res.RowsAffected == 0 {
			return booking.ErrAlreadyPaid
		}

		b.Status = booking.StatusPaid
		b.TransactionID = transactionID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &b, p, nil
}

func (r *PaymentRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).First(&p, "booking_id = ?", bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		return nil, transient(err, "loading payment")
	}
	return &p, nil
}
