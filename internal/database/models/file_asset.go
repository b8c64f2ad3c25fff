package models

import (
	"github.com/google/uuid"
)

// FileAsset is an uploaded file tracked by storage path
type FileAsset struct {
	BaseModel
	Path         string      `json:"path" gorm:"not null;size:500"`
	MimeType     string      `json:"mime_type" gorm:"size:100"`
	Purpose      FilePurpose `json:"purpose" gorm:"type:varchar(20);not null;default:'contract'"`
	Size         int64       `json:"size"`
	UploadedByID *uuid.UUID  `json:"uploaded_by_id" gorm:"type:uuid;index"`
}

// TableName returns the table name for FileAsset
func (FileAsset) TableName() string {
	return "file_assets"
}
