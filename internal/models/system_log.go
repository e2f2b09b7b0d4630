package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemLog stores ERROR+ slog records for the admin error view.
type SystemLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null" json:"level"`
	Message   string         `gorm:"size:500;not null" json:"message"`
	RequestID string         `gorm:"size:64" json:"request_id"`
	UserID    *uint          `json:"user_id"`
	Action    string         `gorm:"size:100" json:"action"`
	Error     string         `gorm:"size:1000" json:"error"`
	Extra     datatypes.JSON `json:"extra"`
}
