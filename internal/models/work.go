package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "Pending"
	PaymentPaid           PaymentStatus = "Paid"
	PaymentPendingPayment PaymentStatus = "PendingPayment"
)

// Valid reports whether s is one of the known payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPendingPayment:
		return true
	}
	return false
}

// Work is a scheduled service job. Version increments on every full update
// and backs the optimistic-concurrency check; the technician reference is
// nulled out if the technician is removed, while client, direction and
// catalog references are RESTRICT so a work can never point at a deleted row.
type Work struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	JobCategoryID    uint            `gorm:"not null" json:"job_category_id"`
	JobCategory      JobCategory     `gorm:"foreignKey:JobCategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	JobSubcategoryID uint            `gorm:"not null" json:"job_subcategory_id"`
	JobSubcategory   JobSubcategory  `gorm:"foreignKey:JobSubcategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Details          string          `gorm:"type:text" json:"details"`
	Date             time.Time       `gorm:"not null;index" json:"date"`
	Completed        bool            `gorm:"not null;default:false" json:"completed"`
	Cost             decimal.Decimal `gorm:"type:decimal(18,2)" json:"cost"`
	AmountToCharge   decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount_to_charge"`
	PaymentStatus    PaymentStatus   `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	ClientID         uint            `gorm:"not null;index" json:"client_id"`
	Client           Client          `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT" json:"-"`
	DirectionID      uint            `gorm:"not null" json:"direction_id"`
	Direction        Direction       `gorm:"foreignKey:DirectionID;constraint:OnDelete:RESTRICT" json:"-"`
	TechnicianID     *uint           `json:"technician_id"`
	Technician       *Technician     `gorm:"foreignKey:TechnicianID;constraint:OnDelete:SET NULL" json:"-"`
	TechnicianFee    decimal.Decimal `gorm:"type:decimal(18,2)" json:"technician_fee"`
	TechnicianPaid   bool            `gorm:"not null;default:false" json:"technician_paid"`
	UserID           uint            `gorm:"not null;index" json:"user_id"`
	User             User            `gorm:"foreignKey:UserID" json:"-"`
	Version          int             `gorm:"not null;default:1" json:"version"`
	Files            []WorkFile      `gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"-"`
}
