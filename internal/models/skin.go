package models

import (
	"time"

	"gorm.io/gorm"
)

// Skin is a user-contributed stylesheet. Skins follow their own visibility
// rule: only admins, the creator, and anyone for official skins.
type Skin struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint  `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Title    string `gorm:"uniqueIndex;size:255;not null" json:"title"`
	CSS      string `gorm:"type:text" json:"-"`
	Official bool   `json:"official"`
}

// GetUserID reports the creating user for ownership checks.
func (s *Skin) GetUserID() uint { return s.UserID }
