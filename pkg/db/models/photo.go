package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo captures metadata for an uploaded work-sample image. The stored blob
// itself lives behind the gallery blob store; only the generated filename is
// recorded here.
type Photo struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Filename     string     `gorm:"column:filename;not null;unique"`
	OriginalName string     `gorm:"column:original_name;not null"`
	FolderID     *uuid.UUID `gorm:"column:folder_id;type:uuid"`
	Description  string     `gorm:"column:description"`
	MimeType     string     `gorm:"column:mime_type;not null"`
	SizeBytes    int64      `gorm:"column:size_bytes;not null"`
	UploadDate   time.Time  `gorm:"column:upload_date;autoCreateTime"`
}

func (Photo) TableName() string {
	return "gallery_photos"
}

// BeforeCreate assigns an id for drivers without gen_random_uuid (sqlite dev).
func (p *Photo) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
