package booking

import (
	"time"

	"github.com/google/uuid"
)

// State transitions:
//
//	pending → paid (terminal, exactly once)
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPaid    PaymentStatus = "paid"
)

// Booking is a patient's claim on one slot of one treatment on one date.
// Date is an opaque calendar-day key supplied by the caller; equality is
// exact string match, no timezone interpretation.
//
// The (treatment, date, patient) triple is unique in the store. That
// constraint — not an application-level check — is what prevents two
// concurrent submissions from both succeeding.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Treatment string `gorm:"column:treatment;type:varchar(200);not null;uniqueIndex:idx_bookings_dedup_key,priority:1"`
	Date      string `gorm:"column:date;type:varchar(50);not null;uniqueIndex:idx_bookings_dedup_key,priority:2;index"`
	Patient   string `gorm:"column:patient;type:varchar(255);not null;uniqueIndex:idx_bookings_dedup_key,priority:3;index"`

	Slot string `gorm:"column:slot;type:varchar(50);not null"`

	Status        PaymentStatus `gorm:"column:status;type:varchar(20);not null;default:'pending';index"`
	TransactionID string        `gorm:"column:transaction_id;type:varchar(100)"`
}

func (Booking) TableName() string {
	return "clinical.bookings"
}

func (b *Booking) IsPaid() bool {
	return b.Status == StatusPaid
}

type SubmitBookingCommand struct {
	Treatment string
	Date      string
	Patient   string
	Slot      string
}

type ListBookingsQuery struct {
	Patient string
	Date    string
}
