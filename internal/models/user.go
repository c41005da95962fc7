package models

import (
	"time"

	"gorm.io/gorm"
)

// User & identity related models.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Login    string `gorm:"uniqueIndex;size:40;not null" json:"login"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"-"`
	Password string `gorm:"size:100;not null" json:"-"` // bcrypt hash

	RoleID     uint        `json:"-"`
	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Preference *Preference `gorm:"foreignKey:UserID" json:"-"`

	// Suspension state. A temporary suspension carries an end date; a ban
	// does not. The nightly unsuspend job clears the flag once the window
	// has passed, so Suspended is authoritative for "currently suspended".
	Suspended      bool       `json:"-"`
	SuspendedUntil *time.Time `json:"-"`
	Banned         bool       `json:"-"`
}

// CurrentlySuspended reports a temporary suspension in force.
func (u *User) CurrentlySuspended() bool {
	return u.Suspended && u.SuspendedUntil != nil
}

// Admin accounts live in a separate table with their own credentials; an
// admin identity never doubles as a user identity.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Login    string `gorm:"uniqueIndex;size:40;not null" json:"login"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"-"`
	Password string `gorm:"size:100;not null" json:"-"`
}

// Preference holds per-user display settings consulted by the policy layer
// and the page title builder.
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	ViewAdult       bool   `json:"view_adult"`                       // skip the adult content interstitial
	TimeZone        string `gorm:"size:64" json:"time_zone"`         // IANA name for localized instants, empty means UTC
	WorkTitleFormat string `gorm:"size:100" json:"work_title_format"` // e.g. "TITLE - AUTHOR - FANDOM"
}
