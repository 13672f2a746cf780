package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Treatment is a bookable service with a fixed daily slot template. The slot
// labels are caller-facing strings (e.g. "10:00 AM") and their catalog order
// is significant: availability results preserve it.
type Treatment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Name  string `gorm:"column:name;type:varchar(200);uniqueIndex;not null"`
	Price int64  `gorm:"column:price;not null"` // minor currency units

	Slots []string `gorm:"column:slots;serializer:json;not null"`
}

func (Treatment) TableName() string {
	return "catalog.treatments"
}

// OpenSlots returns the catalog slots minus the booked ones, in catalog order.
// A fully booked treatment yields an empty (non-nil) slice.
func (t *Treatment) OpenSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}

	open := make([]string, 0, len(t.Slots))
	for _, s := range t.Slots {
		if _, ok := taken[s]; !ok {
			open = append(open, s)
		}
	}
	return open
}

// HasSlot reports whether the label belongs to the treatment's template.
func (t *Treatment) HasSlot(label string) bool {
	for _, s := range t.Slots {
		if s == label {
			return true
		}
	}
	return false
}

// NameProjection is the lightweight listing used by pickers that only need
// treatment names.
type NameProjection struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
