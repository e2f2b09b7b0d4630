package auth

import "gorm.io/gorm"

// OwnedBy returns a GORM scope that filters rows by their owning user.
func OwnedBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
