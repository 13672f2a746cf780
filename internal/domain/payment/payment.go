package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment records a confirmed charge against a booking. Immutable once
// written; at most one exists per booking.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`

	BookingID uuid.UUID `gorm:"column:booking_id;type:uuid;not null;uniqueIndex"`

	Amount   int64  `gorm:"column:amount;not null"` // minor currency units
	Currency string `gorm:"column:currency;type:varchar(10);not null;default:'usd'"`

	TransactionID string `gorm:"column:transaction_id;type:varchar(100);not null"`

	Patient string `gorm:"column:patient;type:varchar(255);index"`
}

func (Payment) TableName() string {
	return "clinical.payments"
}
