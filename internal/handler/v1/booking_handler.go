package v1

import (
	"errors"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/service"
	"github.com/clinicbook/api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings   *service.BookingService
	authorizer *service.Authorizer
	collector  *metrics.Collector
}

func NewBookingHandler(bookings *service.BookingService, authorizer *service.Authorizer, collector *metrics.Collector) *BookingHandler {
	return &BookingHandler{bookings: bookings, authorizer: authorizer, collector: collector}
}

type submitBookingRequest struct {
	Treatment string `json:"treatment" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
}

// Submit admits a booking for the authenticated patient. A duplicate
// (treatment, date, patient) key yields 409 with the existing record.
// POST /api/v1/bookings
func (h *BookingHandler) Submit(c *gin.Context) {
	var req submitBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	claims := callerClaims(c)
	cmd := &booking.SubmitBookingCommand{
		Treatment: req.Treatment,
		Date:      req.Date,
		Patient:   claims.Email,
		Slot:      req.Slot,
	}

	b, err := h.bookings.Submit(c.Request.Context(), cmd, c.ClientIP())
	if err != nil {
		if errors.Is(err, booking.ErrDuplicateBooking) {
			h.collector.BookingsRejectedTotal.Inc()
		}
		respondServiceError(c, err)
		return
	}

	h.collector.BookingsAdmittedTotal.Inc()
	respondCreated(c, b)
}

// Get returns one booking; owners only, unless the caller may view all.
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	claims := callerClaims(c)
	canViewAll := h.authorizer.Require(c.Request.Context(), claims.Email, domain.CapViewAllBookings) == nil

	b, err := h.bookings.GetBooking(c.Request.Context(), id, claims, canViewAll)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, b)
}

// ListMine returns the caller's bookings. The patient query must match the
// token subject, as in the original portal contract.
// GET /api/v1/bookings?patient=...
func (h *BookingHandler) ListMine(c *gin.Context) {
	claims := callerClaims(c)
	patient := c.Query("patient")
	if patient == "" {
		patient = claims.Email
	}

	out, err := h.bookings.ListPatientBookings(c.Request.Context(), patient, claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, out)
}
