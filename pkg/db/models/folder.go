package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder groups gallery photos. Photos keep a weak reference to their folder;
// deleting a folder does not cascade to its photos.
type Folder struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Folder) TableName() string {
	return "gallery_folders"
}

// BeforeCreate assigns an id for drivers without gen_random_uuid (sqlite dev).
func (f *Folder) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
