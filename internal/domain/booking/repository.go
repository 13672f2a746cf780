package booking

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create inserts a new pending booking. The store's uniqueness constraint
	// on (treatment, date, patient) decides races between concurrent inserts;
	// the loser gets a *DuplicateBookingError carrying the winning row.
	Create(ctx context.Context, b *Booking) error

	// GetByID returns ErrBookingNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListByDate returns every booking whose date key matches exactly,
	// regardless of status. Must be served by the date index, not a scan.
	ListByDate(ctx context.Context, date string) ([]*Booking, error)

	// ListByPatient returns a patient's bookings, newest first.
	ListByPatient(ctx context.Context, patient string) ([]*Booking, error)
}
