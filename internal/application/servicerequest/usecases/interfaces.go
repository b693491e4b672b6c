package usecases

import (
	"context"
	"io"
	"time"

	"gastrack/internal/application/servicerequest/dto"
)

// TransactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FileStore persists attachment payloads in object storage.
type FileStore interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectKey string) error
}

// Notifier sends out-of-band notifications about request activity.
// Implementations may be a no-op when mail is disabled.
type Notifier interface {
	NotifyUrgentRequest(requestID uint, requestType, address string) error
	NotifyCommentAdded(to string, requestID uint, authorName string) error
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, int64, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error)
}
