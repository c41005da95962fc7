package models

import (
	"time"

	"gorm.io/gorm"
)

// Work is an archived story. Visibility is a combination of posting state,
// admin hiding, and collection reveal state; the policy layer reads these
// through its capability interfaces.
type Work struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint  `gorm:"index;not null" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	Title     string `gorm:"size:255;not null" json:"title"`
	Fandom    string `gorm:"size:255" json:"fandom"`
	Summary   string `gorm:"size:1250" json:"summary,omitempty"`
	WordCount int64  `json:"word_count"`
	Hits      int64  `json:"hits"`

	Posted        bool `json:"posted"`
	Restricted    bool `json:"restricted"`      // registered users only
	AdultContent  bool `json:"adult_content"`   // behind the view_adult interstitial
	HiddenByAdmin bool `json:"-"`

	CollectionID *uint       `json:"collection_id,omitempty"`
	Collection   *Collection `gorm:"foreignKey:CollectionID" json:"-"`
}

// GetUserID reports the owning user for ownership checks.
func (w *Work) GetUserID() uint { return w.UserID }

// IsRestricted reports whether the work is limited to logged-in users.
func (w *Work) IsRestricted() bool { return w.Restricted }

// Visible reports whether the work is generally viewable: it must be posted
// and not hidden by an admin.
func (w *Work) Visible() bool { return w.Posted && !w.HiddenByAdmin }

// IsHiddenByAdmin reports an administrative hide.
func (w *Work) IsHiddenByAdmin() bool { return w.HiddenByAdmin }

// InUnrevealedCollection reports membership in a collection whose contents
// have not been revealed yet.
func (w *Work) InUnrevealedCollection() bool {
	return w.Collection != nil && w.Collection.Unrevealed
}
