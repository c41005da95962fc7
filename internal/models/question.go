package models

import (
	"time"

	"gorm.io/gorm"
)

// Question is one entry of the archive FAQ, ordered by position within its
// locale. Only admins manage questions; everyone can read them.
type Question struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Question     string `gorm:"size:255;not null" json:"question"`
	Answer       string `gorm:"type:text;not null" json:"answer"`
	Anchor       string `gorm:"size:100" json:"anchor,omitempty"`
	Locale       string `gorm:"size:10;not null;default:en;index" json:"locale"`
	Position     int    `gorm:"not null;default:1" json:"position"`
	IsTranslated bool   `gorm:"default:false" json:"is_translated"`
}
