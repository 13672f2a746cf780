package v1

import (
	"errors"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/payment"
	"github.com/clinicbook/api/internal/service"
	"github.com/clinicbook/api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments   *service.PaymentService
	authorizer *service.Authorizer
	collector  *metrics.Collector
}

func NewPaymentHandler(payments *service.PaymentService, authorizer *service.Authorizer, collector *metrics.Collector) *PaymentHandler {
	return &PaymentHandler{payments: payments, authorizer: authorizer, collector: collector}
}

// CreateIntent starts a gateway payment for the caller's booking, priced
// server-side from the catalog.
// POST /api/v1/bookings/:id/payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), id, callerClaims(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, intent)
}

type confirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required"`
}

type confirmPaymentResponse struct {
	Booking *booking.Booking `json:"booking"`
	Payment *payment.Payment `json:"payment"`
}

// Confirm applies a payment confirmation to a booking; exactly once per
// booking, replays get 409 ALREADY_PAID.
// PATCH /api/v1/bookings/:id/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req confirmPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	claims := callerClaims(c)
	canViewAll := h.authorizer.Require(c.Request.Context(), claims.Email, domain.CapViewAllBookings) == nil

	b, p, err := h.payments.Confirm(c.Request.Context(), id, req.TransactionID, req.Amount, claims, canViewAll, c.ClientIP())
	if err != nil {
		if errors.Is(err, booking.ErrAlreadyPaid) {
			h.collector.PaymentsDuplicateTotal.Inc()
		}
		respondServiceError(c, err)
		return
	}

	h.collector.PaymentsConfirmedTotal.Inc()
	respondOK(c, confirmPaymentResponse{Booking: b, Payment: p})
}
