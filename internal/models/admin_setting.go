package models

import "time"

// AdminSetting is the single-row table of archive-wide switches flipped by
// admins at runtime (as opposed to deploy-time configuration).
type AdminSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TagWranglingOff        bool `json:"tag_wrangling_off"`
	DowntimeBanner         bool `json:"downtime_banner"`
	CreationRequiresInvite bool `json:"creation_requires_invite"`
}
