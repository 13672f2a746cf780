package service

import (
	"context"
	"testing"

	"github.com/clinicbook/api/internal/domain/booking"
	"github.com/clinicbook/api/internal/domain/treatment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAuditService(t *testing.T) (*AuditService, *fakeAuditRepo) {
	t.Helper()
	repo := &fakeAuditRepo{}
	svc := NewAuditService(repo, zap.NewNop())
	t.Cleanup(svc.Shutdown)
	return svc, repo
}

func teethCleaning() *treatment.Treatment {
	return &treatment.Treatment{
		Name:  "Teeth Cleaning",
		Price: 5000,
		Slots: []string{"9:00 AM", "10:00 AM", "11:00 AM"},
	}
}

func TestAvailability_SubtractsBookedSlots(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeTreatmentRepo{treatments: []*treatment.Treatment{teethCleaning()}}
	svc := NewAvailabilityService(catalog, store, zap.NewNop())

	err := store.Create(context.Background(), &booking.Booking{
		Treatment: "Teeth Cleaning",
		Date:      "May 11, 2026",
		Patient:   "ana@example.com",
		Slot:      "10:00 AM",
		Status:    booking.StatusPending,
	})
	require.NoError(t, err)

	out, err := svc.Availability(context.Background(), "May 11, 2026")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, out[0].OpenSlots)
}

func TestAvailability_OtherDateDoesNotInterfere(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeTreatmentRepo{treatments: []*treatment.Treatment{teethCleaning()}}
	svc := NewAvailabilityService(catalog, store, zap.NewNop())

	err := store.Create(context.Background(), &booking.Booking{
		Treatment: "Teeth Cleaning",
		Date:      "May 12, 2026",
		Patient:   "ana@example.com",
		Slot:      "10:00 AM",
		Status:    booking.StatusPending,
	})
	require.NoError(t, err)

	out, err := svc.Availability(context.Background(), "May 11, 2026")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM"}, out[0].OpenSlots)
}

func TestAvailability_FullyBookedTreatmentIncludedWithEmptySlots(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeTreatmentRepo{treatments: []*treatment.Treatment{teethCleaning()}}
	svc := NewAvailabilityService(catalog, store, zap.NewNop())

	patients := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i, slot := range []string{"9:00 AM", "10:00 AM", "11:00 AM"} {
		err := store.Create(context.Background(), &booking.Booking{
			Treatment: "Teeth Cleaning",
			Date:      "May 11, 2026",
			Patient:   patients[i],
			Slot:      slot,
			Status:    booking.StatusPending,
		})
		require.NoError(t, err)
	}

	out, err := svc.Availability(context.Background(), "May 11, 2026")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].OpenSlots)
	assert.Empty(t, out[0].OpenSlots)
}

func TestAvailability_PaidBookingsStillHoldSlots(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeTreatmentRepo{treatments: []*treatment.Treatment{teethCleaning()}}
	svc := NewAvailabilityService(catalog, store, zap.NewNop())

	b := &booking.Booking{
		Treatment: "Teeth Cleaning",
		Date:      "May 11, 2026",
		Patient:   "ana@example.com",
		Slot:      "9:00 AM",
		Status:    booking.StatusPending,
	}
	require.NoError(t, store.Create(context.Background(), b))
	_, _, err := store.Confirm(context.Background(), b.ID, "txn_1", 5000, "usd")
	require.NoError(t, err)

	out, err := svc.Availability(context.Background(), "May 11, 2026")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"10:00 AM", "11:00 AM"}, out[0].OpenSlots)
}

func TestAvailability_DateRequired(t *testing.T) {
	store := newFakeStore()
	catalog := &fakeTreatmentRepo{treatments: []*treatment.Treatment{teethCleaning()}}
	svc := NewAvailabilityService(catalog, store, zap.NewNop())

	_, err := svc.Availability(context.Background(), "  ")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
