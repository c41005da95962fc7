package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a wrangleable descriptor attached to works. Wrangling (merging,
// canonicalizing) is restricted to admins and tag wranglers.
type Tag struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name      string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Type      string `gorm:"size:30;not null;default:freeform" json:"type"` // fandom, character, relationship, freeform
	Canonical bool   `json:"canonical"`

	MergerID *uint `json:"merger_id,omitempty"` // canonical tag this one redirects to
	Merger   *Tag  `gorm:"foreignKey:MergerID" json:"-"`
}
