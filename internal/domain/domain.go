package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrStoreUnavailable marks a transient store failure. Callers may retry;
// it must never be collapsed into a not-found or conflict outcome.
var ErrStoreUnavailable = errors.New("store temporarily unavailable")

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePatient:
		return true
	}
	return false
}

// Capability is a named privilege. Authorization checks are expressed against
// capabilities rather than raw role comparisons so new roles can be added
// without touching call sites.
type Capability string

const (
	CapManageUsers     Capability = "users:manage"
	CapManageDoctors   Capability = "doctors:manage"
	CapViewAllBookings Capability = "bookings:view_all"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin:   {CapManageUsers, CapManageDoctors, CapViewAllBookings},
	RolePatient: {},
}

func (r Role) Has(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Email string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Name  string `gorm:"column:name;type:varchar(200)"`
	Role  Role   `gorm:"column:role;type:varchar(30);not null;default:'patient';index"`

	LastSeenAt *time.Time `gorm:"column:last_seen_at"`
}

func (User) TableName() string {
	return "auth.users"
}

type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionRead   AuditAction = "read"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OccurredAt time.Time `gorm:"autoCreateTime;index"`

	ActorEmail string `gorm:"column:actor_email;type:varchar(255);not null;index"`
	ActorRole  Role   `gorm:"column:actor_role;type:varchar(30);not null"`
	IPAddress  string `gorm:"column:ip_address;type:varchar(45)"`

	Action       AuditAction `gorm:"column:action;type:varchar(20);not null;index"`
	ResourceType string      `gorm:"column:resource_type;type:varchar(50);not null;index"`
	ResourceID   string      `gorm:"column:resource_id;type:varchar(100);index"`

	Changes string `gorm:"column:changes;type:jsonb"`
}

func (AuditLog) TableName() string {
	return "audit.logs"
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"` // Always "Bearer"
}

// Claims is the verified content of an identity assertion.
type Claims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
