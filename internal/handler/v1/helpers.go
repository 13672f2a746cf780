package v1

import (
	"errors"
	"net/http"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/doctor"
	"github.com/clinicbook/api/internal/domain/payment"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/clinicbook/api/internal/repository"
	"github.com/clinicbook/api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// ConflictResponse is returned when a submission loses the dedup key; it
// carries the booking that holds the key so the caller needs no follow-up
// query.
type ConflictResponse struct {
	Error    string           `json:"error"`
	Code     string           `json:"code"`
	Existing *booking.Booking `json:"existing"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	var dupErr *booking.DuplicateBookingError
	if errors.As(err, &dupErr) {
		c.JSON(http.StatusConflict, ConflictResponse{
			Error:    "a booking already exists for this treatment, date, and patient",
			Code:     "DUPLICATE_BOOKING",
			Existing: dupErr.Existing,
		})
		return
	}

	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, treatment.ErrTreatmentNotFound),
		errors.Is(err, doctor.ErrDoctorNotFound),
		errors.Is(err, payment.ErrPaymentNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, booking.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "ALREADY_PAID"})

	case errors.Is(err, doctor.ErrDoctorAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, booking.ErrUnknownSlot):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})

	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})

	// Transient store failures are retryable and must not read as conflicts
	// or missing resources.
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "temporarily unavailable, retry later",
			Code:  "RETRY",
		})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}
