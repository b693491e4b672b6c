package models

import "gorm.io/datatypes"

type ServiceRequestModel struct {
	ID          uint   `gorm:"primaryKey"`
	RequestType string `gorm:"size:50;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Description string `gorm:"type:text;not null"`
	Address     string `gorm:"size:500;not null"`
	RequesterID uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
	ResolvedAt  *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ServiceRequestModel) TableName() string {
	return "service_requests"
}

type RequestCommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	RequestID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (RequestCommentModel) TableName() string {
	return "request_comments"
}

// AttachmentModel keeps the object key as a column and the file metadata
// (name, content type, size) in a JSON document.
type AttachmentModel struct {
	ID         uint           `gorm:"primaryKey"`
	RequestID  uint           `gorm:"not null;index"`
	ObjectKey  string         `gorm:"uniqueIndex;size:255;not null"`
	Metadata   datatypes.JSON `gorm:"not null"`
	UploadedAt int64          `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "request_attachments"
}
