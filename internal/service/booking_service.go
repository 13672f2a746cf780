package service

import (
	"context"
	"strings"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService is the admission controller: it validates a submission and
// hands it to the ledger, whose uniqueness constraint on
// (treatment, date, patient) decides races. There is no check-then-insert
// here on purpose — the losing writer of a race gets the same duplicate
// outcome as a plain resubmission.
type BookingService struct {
	bookings   booking.Repository
	treatments treatment.Repository
	auditSvc   *AuditService
	log        *zap.Logger
}

func NewBookingService(bookings booking.Repository, treatments treatment.Repository, auditSvc *AuditService, log *zap.Logger) *BookingService {
	return &BookingService{bookings: bookings, treatments: treatments, auditSvc: auditSvc, log: log}
}

// Submit admits a new pending booking or returns *booking.DuplicateBookingError
// carrying the record that already holds the (treatment, date, patient) key.
// The existing booking's slot may differ from the requested one; the dedup
// key ignores slots so a patient cannot hold two slots of one treatment on
// one day.
func (s *BookingService) Submit(ctx context.Context, cmd *booking.SubmitBookingCommand, ip string) (*booking.Booking, error) {
	if err := validateSubmit(cmd); err != nil {
		return nil, err
	}

	t, err := s.treatments.GetByName(ctx, cmd.Treatment)
	if err != nil {
		return nil, err
	}
	if !t.HasSlot(cmd.Slot) {
		return nil, booking.ErrUnknownSlot
	}

	b := &booking.Booking{
		Treatment: cmd.Treatment,
		Date:      cmd.Date,
		Patient:   strings.ToLower(cmd.Patient),
		Slot:      cmd.Slot,
		Status:    booking.StatusPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		ActorEmail:   b.Patient,
		ActorRole:    string(domain.RolePatient),
		Action:       "create",
		ResourceType: "booking",
		ResourceID:   b.ID.String(),
		IPAddress:    ip,
	})

	s.log.Info("booking admitted",
		zap.String("booking_id", b.ID.String()),
		zap.String("treatment", b.Treatment),
		zap.String("date", b.Date),
		zap.String("slot", b.Slot),
	)

	return b, nil
}

// GetBooking returns a booking if the caller owns it or may view all bookings.
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID, caller *domain.Claims, canViewAll bool) (*booking.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewAll && !strings.EqualFold(b.Patient, caller.Email) {
		return nil, ErrForbidden
	}
	return b, nil
}

// ListPatientBookings returns the caller's own bookings. Asking for another
// patient's ledger is Forbidden regardless of whether that patient exists.
func (s *BookingService) ListPatientBookings(ctx context.Context, patient string, caller *domain.Claims) ([]*booking.Booking, error) {
	if !strings.EqualFold(patient, caller.Email) {
		return nil, ErrForbidden
	}
	return s.bookings.ListByPatient(ctx, strings.ToLower(patient))
}

func validateSubmit(cmd *booking.SubmitBookingCommand) error {
	var missing []string
	if strings.TrimSpace(cmd.Treatment) == "" {
		missing = append(missing, "treatment is required")
	}
	if strings.TrimSpace(cmd.Date) == "" {
		missing = append(missing, "date is required")
	}
	if strings.TrimSpace(cmd.Patient) == "" || !strings.Contains(cmd.Patient, "@") {
		missing = append(missing, "patient must be a valid email")
	}
	if strings.TrimSpace(cmd.Slot) == "" {
		missing = append(missing, "slot is required")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
