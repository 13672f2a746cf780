package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/payment"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/clinicbook/api/pkg/payments"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentIntentCreator abstracts the payment gateway. The workflow only ever
// asks it for a client secret; settlement results arrive later as a
// confirmation reference.
type PaymentIntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (*payments.Intent, error)
}

// PaymentService runs the confirmation workflow: record the payment and flip
// the booking pending → paid exactly once.
type PaymentService struct {
	payments   payment.Repository
	bookings   booking.Repository
	treatments treatment.Repository
	gateway    PaymentIntentCreator
	auditSvc   *AuditService
	currency   string
	log        *zap.Logger
}

func NewPaymentService(
	paymentRepo payment.Repository,
	bookings booking.Repository,
	treatments treatment.Repository,
	gateway PaymentIntentCreator,
	auditSvc *AuditService,
	currency string,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		payments:   paymentRepo,
		bookings:   bookings,
		treatments: treatments,
		gateway:    gateway,
		auditSvc:   auditSvc,
		currency:   currency,
		log:        log,
	}
}

// CreateIntent starts a gateway payment for a pending booking, priced from
// the catalog — never from a client-supplied amount.
func (s *PaymentService) CreateIntent(ctx context.Context, bookingID uuid.UUID, caller *domain.Claims) (*payments.Intent, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(b.Patient, caller.Email) {
		return nil, ErrForbidden
	}
	if b.IsPaid() {
		return nil, booking.ErrAlreadyPaid
	}

	t, err := s.treatments.GetByName(ctx, b.Treatment)
	if err != nil {
		return nil, fmt.Errorf("pricing booking: %w", err)
	}

	return s.gateway.CreateIntent(ctx, t.Price)
}

// Confirm applies a payment confirmation to the booking. Idempotent in
// outcome: the first call records the payment and flips the status, every
// later call fails with booking.ErrAlreadyPaid and writes nothing.
func (s *PaymentService) Confirm(ctx context.Context, bookingID uuid.UUID, transactionID string, amount int64, caller *domain.Claims, canViewAll bool, ip string) (*booking.Booking, *payment.Payment, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, nil, &ValidationError{Fields: []string{"transaction_id is required"}}
	}
	if amount <= 0 {
		return nil, nil, &ValidationError{Fields: []string{"amount must be positive"}}
	}

	// Ownership is checked before the transactional write; the write itself
	// re-reads the row under lock, so this pre-read can be stale without harm.
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if !canViewAll && !strings.EqualFold(b.Patient, caller.Email) {
		return nil, nil, ErrForbidden
	}

	confirmed, p, err := s.payments.Confirm(ctx, bookingID, transactionID, amount, s.currency)
	if err != nil {
		return nil, nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		ActorEmail:   caller.Email,
		ActorRole:    string(caller.Role),
		Action:       "update",
		ResourceType: "booking",
		ResourceID:   bookingID.String(),
		IPAddress:    ip,
		Changes:      fmt.Sprintf(`{"status":"paid","transaction_id":%q}`, transactionID),
	})

	s.log.Info("payment confirmed",
		zap.String("booking_id", bookingID.String()),
		zap.String("transaction_id", transactionID),
		zap.Int64("amount", amount),
	)

	return confirmed, p, nil
}
