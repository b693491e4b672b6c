package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"gastrack/internal/application/servicerequest/dto"
	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/id"
	"gastrack/internal/shared/logger"
)

// maxAttachmentSize caps uploads at 10 MiB.
const maxAttachmentSize = 10 << 20

type UploadAttachmentCommand struct {
	RequestID   uint
	UserID      uint
	IsStaff     bool
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type UploadAttachmentUseCase struct {
	requestRepo    servicerequest.Repository
	attachmentRepo servicerequest.AttachmentRepository
	fileStore      FileStore
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	requestRepo servicerequest.Repository,
	attachmentRepo servicerequest.AttachmentRepository,
	fileStore FileStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		requestRepo:    requestRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error) {
	r, err := loadVisibleRequest(ctx, uc.requestRepo, cmd.RequestID, cmd.UserID, cmd.IsStaff)
	if err != nil {
		return nil, err
	}

	if cmd.FileName == "" {
		return nil, errors.NewValidationError("file name is required")
	}
	if cmd.Size <= 0 {
		return nil, errors.NewValidationError("file is empty")
	}
	if cmd.Size > maxAttachmentSize {
		return nil, errors.NewValidationError("file exceeds the 10 MiB size limit")
	}

	// Object keys embed a random component so two uploads with the same
	// file name never collide.
	objectKey := fmt.Sprintf("requests/%d/%s%s", r.ID(), id.MustGenerate(id.DefaultLength), filepath.Ext(cmd.FileName))

	if err := uc.fileStore.Upload(ctx, objectKey, cmd.Reader, cmd.Size, cmd.ContentType); err != nil {
		uc.logger.Errorw("failed to upload attachment", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	attachment, err := servicerequest.NewAttachment(r.ID(), objectKey, cmd.FileName, cmd.ContentType, cmd.Size)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment record", "error", err, "request_id", cmd.RequestID)
		if removeErr := uc.fileStore.Remove(ctx, objectKey); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned object", "error", removeErr, "object_key", objectKey)
		}
		return nil, fmt.Errorf("failed to save attachment record: %w", err)
	}

	url, err := uc.fileStore.PresignedGetURL(ctx, objectKey, attachmentURLExpiry)
	if err != nil {
		uc.logger.Warnw("failed to presign attachment url", "error", err, "attachment_id", attachment.ID())
		url = ""
	}

	uc.logger.Infow("attachment uploaded",
		"attachment_id", attachment.ID(),
		"request_id", cmd.RequestID,
		"size", cmd.Size,
	)

	result := dto.ToAttachmentDTO(attachment, url)
	return &result, nil
}
