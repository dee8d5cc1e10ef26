package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Item         string     `json:"item"`
	Slug         string     `gorm:"index" json:"slug"`
	DateFound    time.Time  `json:"date_found"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Category     string     `gorm:"default:Other" json:"category"`
	ImageURLs    []string   `gorm:"serializer:json" json:"image_urls"`
	Status       string     `gorm:"default:available" json:"status"` // "available", "claimed"
	ClaimantName *string    `json:"claimant_name,omitempty"`
	ClaimedDate  *time.Time `json:"claimed_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
