package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateBooking = errors.New("patient already holds a booking for this treatment on this date")
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrUnknownSlot      = errors.New("slot is not part of the treatment's schedule")
)

// DuplicateBookingError carries the booking that won the dedup key so callers
// can react without a follow-up query. The dedup key is (treatment, date,
// patient) only — the slot of the existing booking may differ from the one
// the caller asked for.
type DuplicateBookingError struct {
	Existing *Booking
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("%v: existing booking %s at slot %q",
		ErrDuplicateBooking, e.Existing.ID, e.Existing.Slot)
}

func (e *DuplicateBookingError) Unwrap() error {
	return ErrDuplicateBooking
}
