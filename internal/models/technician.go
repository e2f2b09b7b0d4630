package models

import (
	"time"

	"gorm.io/datatypes"
)

// Technician is a service provider assignable to work orders. DocumentID is
// the national id (RUT) or passport number and is unique across all users.
type Technician struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Surname        string         `gorm:"size:100;not null" json:"surname"`
	Nationality    string         `gorm:"size:100" json:"nationality"`
	DocumentID     string         `gorm:"size:50;not null;uniqueIndex" json:"document_id"`
	BirthDate      datatypes.Date `json:"birth_date"`
	PhotoPath      *string        `gorm:"size:255" json:"photo_path"`
	Region         int            `json:"region"`
	Comuna         string         `gorm:"size:100" json:"comuna"`
	Address        string         `gorm:"size:255" json:"address"`
	Email          string         `gorm:"size:255;index" json:"email"`
	Phone          string         `gorm:"size:30" json:"phone"`
	AltPhone       string         `gorm:"size:30" json:"alt_phone"`
	VehiclePlate   string         `gorm:"size:20" json:"vehicle_plate"`
	Certifications string         `gorm:"type:text" json:"certifications"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"-"`
}
