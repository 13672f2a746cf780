package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/treatment"
	"go.uber.org/zap"
)

// TreatmentAvailability pairs a treatment with the slots still open on the
// requested day. Fully booked treatments are included with an empty slice;
// rendering "fully booked" is the caller's concern.
type TreatmentAvailability struct {
	Treatment *treatment.Treatment `json:"treatment"`
	OpenSlots []string             `json:"open_slots"`
}

// AvailabilityService derives free slots per treatment for a day: catalog
// slots minus slots held by that day's bookings.
//
// The computation is read-only and unlocked. A booking admitted while the two
// reads below are in flight may be missing from the result; that window is a
// known weak-consistency tradeoff, bounded by request latency. The admission
// controller's uniqueness constraint still rejects anyone acting on the stale
// slot.
type AvailabilityService struct {
	treatments treatment.Repository
	bookings   booking.Repository
	log        *zap.Logger
}

func NewAvailabilityService(treatments treatment.Repository, bookings booking.Repository, log *zap.Logger) *AvailabilityService {
	return &AvailabilityService{treatments: treatments, bookings: bookings, log: log}
}

// Availability computes the open slots for every treatment on the given day.
// The date is an opaque key matched exactly against booking records; it must
// be supplied explicitly.
func (s *AvailabilityService) Availability(ctx context.Context, date string) ([]*TreatmentAvailability, error) {
	if strings.TrimSpace(date) == "" {
		return nil, &ValidationError{Fields: []string{"date is required"}}
	}

	treatments, err := s.treatments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	dayBookings, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading bookings for %q: %w", date, err)
	}

	// Both pending and paid bookings hold their slot.
	bookedByTreatment := make(map[string][]string)
	for _, b := range dayBookings {
		if b.Status == booking.StatusPending || b.Status == booking.StatusPaid {
			bookedByTreatment[b.Treatment] = append(bookedByTreatment[b.Treatment], b.Slot)
		}
	}

	out := make([]*TreatmentAvailability, 0, len(treatments))
	for _, t := range treatments {
		out = append(out, &TreatmentAvailability{
			Treatment: t,
			OpenSlots: t.OpenSlots(bookedByTreatment[t.Name]),
		})
	}
	return out, nil
}
