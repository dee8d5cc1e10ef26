package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FirstName      string    `json:"firstname"`
	MiddleName     string    `json:"middlename,omitempty"`
	LastName       string    `json:"lastname"`
	Username       string    `gorm:"uniqueIndex" json:"username"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	Password       string    `json:"-"`
	Department     string    `json:"department"`                // "SSG", "SSO", "SSD"
	Role           string    `gorm:"default:staff" json:"role"` // "staff", "admin", "superAdmin"
	ProfilePicture string    `json:"profile_picture,omitempty"`

	Items []*Item `gorm:"foreignKey:UserID"`
	Timestamp
}
