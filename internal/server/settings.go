package server

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/cache"
	"github.com/quillarchive/quillarchive/internal/config"
	"github.com/quillarchive/quillarchive/internal/models"
)

// dbSettings reads archive-wide switches from the admin_settings row,
// cached briefly so guards don't query per request. The
// TAG_WRANGLING_DISABLED env var forces the switch regardless of the row
// (used during maintenance).
type dbSettings struct {
	db     *gorm.DB
	counts *cache.Counts
}

func newDBSettings(db *gorm.DB, counts *cache.Counts) *dbSettings {
	return &dbSettings{db: db, counts: counts}
}

func (s *dbSettings) TagWranglingOff(ctx context.Context) bool {
	if config.ParseBool("TAG_WRANGLING_DISABLED", false) {
		return true
	}
	v, err := s.counts.Fetch(ctx, "settings:tag_wrangling_off",
		time.Minute, 5*time.Second,
		func(ctx context.Context) (int64, error) {
			var setting models.AdminSetting
			if err := s.db.WithContext(ctx).First(&setting).Error; err != nil {
				return 0, err
			}
			if setting.TagWranglingOff {
				return 1, nil
			}
			return 0, nil
		})
	if err != nil {
		// Fail open: a missing settings row must not lock admins out of
		// unrelated wrangling.
		return false
	}
	return v == 1
}
