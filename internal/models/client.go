package models

import "time"

// Client is a customer of the operator. Clients are soft-deleted via the
// Active flag so they can be restored with their history intact.
type Client struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"size:100;not null" json:"name"`
	Surname    string      `gorm:"size:100;not null" json:"surname"`
	Phone      string      `gorm:"size:30" json:"phone"`
	Email      string      `gorm:"size:255;index" json:"email"`
	Active     bool        `gorm:"not null;default:true" json:"active"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Directions []Direction `gorm:"foreignKey:ClientID" json:"directions,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"-"`
}
