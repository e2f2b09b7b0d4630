package models

import "time"

// WorkFile is a photo or video attached to a work order. The row cascades
// with its work; the binary under FilePath is removed by the file service.
type WorkFile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FileName   string    `gorm:"size:255;not null" json:"file_name"`
	FilePath   string    `gorm:"size:255;not null" json:"file_path"`
	FileType   string    `gorm:"size:10;not null" json:"file_type"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	WorkID     uint      `gorm:"not null;index" json:"work_id"`
	Work       Work      `gorm:"foreignKey:WorkID;constraint:OnDelete:CASCADE" json:"-"`
}
