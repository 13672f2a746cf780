package payment

import (
	"context"

	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/google/uuid"
)

type Repository interface {
	// Confirm atomically records the payment and flips the booking
	// pending → paid, storing the transaction reference. Both writes happen in
	// one store transaction keyed on the booking's current status, so a
	// concurrent duplicate confirmation observes booking.ErrAlreadyPaid and
	// no second Payment row is ever written.
	//
	// Returns booking.ErrBookingNotFound if the booking is absent and
	// booking.ErrAlreadyPaid if it was confirmed before.
	Confirm(ctx context.Context, bookingID uuid.UUID, transactionID string, amount int64, currency string) (*booking.Booking, *Payment, error)

	// GetByBookingID returns ErrPaymentNotFound if no payment exists.
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*Payment, error)
}
