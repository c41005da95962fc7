package db

import (
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/models"
)

// SeedPermissions creates the core permissions and system roles.
// Called during initial database setup or migration; idempotent.
func SeedPermissions(conn *gorm.DB) error {
	permissions := []struct {
		ResourceType string
		Action       string
		Description  string
	}{
		// FAQ management
		{"question", "*", "All FAQ question actions"},
		{"question", "create", "Create FAQ questions"},
		{"question", "update", "Edit FAQ questions"},
		{"question", "delete", "Delete FAQ questions"},
		// Works
		{"work", "create", "Post works"},
		{"work", "update", "Edit own works"},
		{"work", "delete", "Delete own works"},
		// Tag wrangling
		{"tag", "wrangle", "Wrangle tags"},
		// Open Doors imports
		{"archivist", "import", "Bulk-import works for other authors"},
	}
	for _, p := range permissions {
		var existing models.Permission
		err := conn.Where("resource_type = ? AND action = ?", p.ResourceType, p.Action).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := conn.Create(&models.Permission{
			ResourceType: p.ResourceType,
			Action:       p.Action,
			Description:  p.Description,
		}).Error; err != nil {
			return err
		}
	}

	roles := map[string][]string{
		"user":         {"work:create", "work:update", "work:delete"},
		"tag_wrangler": {"work:create", "work:update", "work:delete", "tag:wrangle"},
		"archivist":    {"work:create", "work:update", "work:delete", "archivist:import"},
	}
	for name, codes := range roles {
		if err := ensureRole(conn, name, codes); err != nil {
			return err
		}
	}
	return nil
}

func ensureRole(conn *gorm.DB, name string, codes []string) error {
	var role models.Role
	err := conn.Where("name = ?", name).First(&role).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	role = models.Role{Name: name, IsSystem: true}
	var perms []models.Permission
	for _, code := range codes {
		var p models.Permission
		res, action := splitCode(code)
		if err := conn.Where("resource_type = ? AND action = ?", res, action).First(&p).Error; err != nil {
			return err
		}
		perms = append(perms, p)
	}
	role.Permissions = perms
	return conn.Create(&role).Error
}

func splitCode(code string) (string, string) {
	for i := 0; i < len(code); i++ {
		if code[i] == ':' {
			return code[:i], code[i+1:]
		}
	}
	return code, ""
}
