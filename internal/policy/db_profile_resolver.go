package policy

import (
	"context"

	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/gate"
	"github.com/quillarchive/quillarchive/internal/models"
)

// DBProfileResolver fetches user roles from the database. It implements
// gate.ProfileResolver.
type DBProfileResolver struct {
	DB *gorm.DB
}

func NewDBProfileResolver(db *gorm.DB) *DBProfileResolver {
	return &DBProfileResolver{DB: db}
}

// Resolve looks up the user's role, preloading its permissions.
// Returns nil if the user has no role assigned or is not found.
func (r *DBProfileResolver) Resolve(ctx context.Context, userID uint) (gate.Profile, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Preload("Role.Permissions").First(&user, userID).Error
	if err != nil {
		return nil, err
	}
	if user.Role == nil {
		return nil, nil
	}
	return &roleProfile{role: user.Role}, nil
}

// roleProfile adapts models.Role to the gate.Profile interface.
type roleProfile struct {
	role *models.Role
}

func (a *roleProfile) Name() string { return a.role.Name }

// HasPermission checks the requested permission against the role's grants,
// honouring "*:*" and "resource:*" wildcards.
func (a *roleProfile) HasPermission(requested gate.Permission) bool {
	for _, p := range a.role.Permissions {
		if gate.Permission(p.Code()).Matches(requested) {
			return true
		}
	}
	return false
}
