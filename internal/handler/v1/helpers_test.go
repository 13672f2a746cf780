package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicbook/api/internal/domain"
	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/clinicbook/api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.ValidationError{Fields: []string{"date is required"}}, http.StatusBadRequest},
		{"unknown slot", booking.ErrUnknownSlot, http.StatusBadRequest},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"booking not found", booking.ErrBookingNotFound, http.StatusNotFound},
		{"treatment not found", treatment.ErrTreatmentNotFound, http.StatusNotFound},
		{"already paid", booking.ErrAlreadyPaid, http.StatusConflict},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"wrapped store unavailable", fmt.Errorf("listing bookings: %w", domain.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, respond(tc.err).Code)
		})
	}
}

func TestRespondServiceError_DuplicateBookingCarriesExisting(t *testing.T) {
	existing := &booking.Booking{
		Treatment: "Teeth Cleaning",
		Date:      "May 11, 2026",
		Patient:   "ana@example.com",
		Slot:      "10:00 AM",
	}
	w := respond(&booking.DuplicateBookingError{Existing: existing})

	require.Equal(t, http.StatusConflict, w.Code)

	var body ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "DUPLICATE_BOOKING", body.Code)
	require.NotNil(t, body.Existing)
	assert.Equal(t, "10:00 AM", body.Existing.Slot)
}

func TestRespondServiceError_TransientNeverReadsAsConflict(t *testing.T) {
	w := respond(fmt.Errorf("creating booking: %w", domain.ErrStoreUnavailable))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RETRY", body.Code)
}
