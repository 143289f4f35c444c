package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForWorkshop returns a GORM scope that filters rows by the owning
// workshop. Every tenant-owned query goes through this.
func ForWorkshop(oficinaID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("oficina_id = ?", oficinaID)
	}
}
