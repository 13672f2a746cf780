package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a roster entry managed by administrators. It has no bearing on
// slot availability; the catalog, not the roster, defines what is bookable.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Name      string `gorm:"column:name;type:varchar(200);not null"`
	Email     string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Specialty string `gorm:"column:specialty;type:varchar(200)"`
	ImageURL  string `gorm:"column:image_url;type:text"`
}

func (Doctor) TableName() string {
	return "clinical.doctors"
}

type AddDoctorCommand struct {
	Name      string
	Email     string
	Specialty string
	ImageURL  string
}
