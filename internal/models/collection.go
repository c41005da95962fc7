package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection groups works, optionally anonymous or unrevealed (e.g. for a
// gift exchange before the reveal date).
type Collection struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint  `gorm:"index;not null" json:"user_id"` // maintainer
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Name       string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Title      string `gorm:"size:255" json:"title"`
	Unrevealed bool   `json:"unrevealed"`
	Anonymous  bool   `json:"anonymous"`
}

// GetUserID reports the maintaining user for ownership checks.
func (c *Collection) GetUserID() uint { return c.UserID }
