package servicerequest

import (
	"context"

	vo "gastrack/internal/domain/servicerequest/valueobjects"
)

// Filter narrows a request listing. A nil field means "no constraint".
// RequesterID is how the non-staff visibility scope is applied: handlers set
// it to the caller's ID for customers and leave it nil for staff.
type Filter struct {
	Status      *vo.Status
	Priority    *vo.Priority
	RequestType *vo.RequestType
	RequesterID *uint
	AssigneeID  *uint
	Page        int
	PageSize    int
}

type Repository interface {
	Save(ctx context.Context, r *ServiceRequest) error
	Update(ctx context.Context, r *ServiceRequest) error
	// Delete removes the request and cascades its comments and attachments.
	Delete(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, requestID uint) (*ServiceRequest, error)
	// List returns matching requests in stable insertion (ID ascending) order.
	List(ctx context.Context, filter Filter) ([]*ServiceRequest, int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByRequestID(ctx context.Context, requestID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	GetByRequestID(ctx context.Context, requestID uint) ([]*Attachment, error)
}
