package domain

import (
	"time"

	"gorm.io/gorm"
)

// Upload modules form the first path segment under the upload root.
var UploadModules = []string{"articles", "events", "portfolios", "media"}

type Media struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	FileName    string         `gorm:"size:255" json:"fileName"`
	FilePath    string         `gorm:"size:500" json:"filePath"`
	MimeType    string         `gorm:"size:128" json:"mimeType"`
	Size        int64          `json:"size"`
	URL         string         `gorm:"size:500" json:"url"`
	AltText     string         `gorm:"size:255" json:"altText"`
	Caption     string         `gorm:"size:500" json:"caption"`
	CreatedByID string         `gorm:"size:36;index" json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Media) TableName() string { return "media" }
