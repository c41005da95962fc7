package models

import (
	"time"

	"gorm.io/gorm"
)

// Role groups permissions; a user is assigned one role and inherits its
// permissions. System roles (user, tag_wrangler, archivist) are seeded.
type Role struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	IsSystem    bool   `gorm:"default:false" json:"is_system"`

	// Many-to-many via role_permissions join table.
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// Permission represents a single action allowed on a resource type.
// Format: "resource:action" (e.g. "question:create", "tag:wrangle").
type Permission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ResourceType string `gorm:"size:50;not null;index:idx_perm_resource_action" json:"resource_type"`
	Action       string `gorm:"size:50;not null;index:idx_perm_resource_action" json:"action"`
	Description  string `gorm:"size:200" json:"description,omitempty"`
}

// Code returns the permission in "resource:action" format for matching.
func (p Permission) Code() string {
	return p.ResourceType + ":" + p.Action
}
