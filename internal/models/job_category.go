package models

// JobCategory and JobSubcategory form the fixed service catalog. Both are
// seeded at startup and only read through the API.
type JobCategory struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Name          string           `gorm:"size:150;not null" json:"name"`
	Icon          string           `gorm:"size:16" json:"icon"`
	DisplayOrder  int              `gorm:"not null" json:"display_order"`
	Subcategories []JobSubcategory `gorm:"foreignKey:JobCategoryID" json:"subcategories,omitempty"`
}

type JobSubcategory struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:150;not null" json:"name"`
	DisplayOrder  int         `gorm:"not null" json:"display_order"`
	JobCategoryID uint        `gorm:"not null;index" json:"job_category_id"`
	JobCategory   JobCategory `gorm:"foreignKey:JobCategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}
