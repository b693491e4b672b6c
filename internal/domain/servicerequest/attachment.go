package servicerequest

import (
	"fmt"
	"time"
)

// Attachment references a file stored in blob storage. Rows carry the object
// key and file metadata only, never the file bytes.
type Attachment struct {
	id          uint
	requestID   uint
	objectKey   string
	fileName    string
	contentType string
	size        int64
	uploadedAt  time.Time
}

// NewAttachment records a file uploaded for the given request.
func NewAttachment(requestID uint, objectKey, fileName, contentType string, size int64) (*Attachment, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if objectKey == "" {
		return nil, fmt.Errorf("object key is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		requestID:   requestID,
		objectKey:   objectKey,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		uploadedAt:  time.Now(),
	}, nil
}

// ReconstructAttachment rebuilds an attachment from persistence.
func ReconstructAttachment(
	id, requestID uint,
	objectKey, fileName, contentType string,
	size int64,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if requestID == 0 {
		return nil, fmt.Errorf("request ID is required")
	}

	return &Attachment{
		id:          id,
		requestID:   requestID,
		objectKey:   objectKey,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		uploadedAt:  uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) RequestID() uint       { return a.requestID }
func (a *Attachment) ObjectKey() string     { return a.objectKey }
func (a *Attachment) FileName() string      { return a.fileName }
func (a *Attachment) ContentType() string   { return a.contentType }
func (a *Attachment) Size() int64           { return a.size }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
