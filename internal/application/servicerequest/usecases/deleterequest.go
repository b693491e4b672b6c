package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
	UserID    uint
	IsStaff   bool
}

type DeleteRequestUseCase struct {
	requestRepo    servicerequest.Repository
	attachmentRepo servicerequest.AttachmentRepository
	fileStore      FileStore
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo servicerequest.Repository,
	attachmentRepo servicerequest.AttachmentRepository,
	fileStore FileStore,
	txMgr TransactionManager,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo:    requestRepo,
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) error {
	r, err := loadVisibleRequest(ctx, uc.requestRepo, cmd.RequestID, cmd.UserID, cmd.IsStaff)
	if err != nil {
		return err
	}

	attachments, err := uc.attachmentRepo.GetByRequestID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err, "request_id", cmd.RequestID)
		return fmt.Errorf("failed to load attachments: %w", err)
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requestRepo.Delete(txCtx, r.ID()); err != nil {
			return fmt.Errorf("failed to delete service request: %w", err)
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete service request", "error", txErr, "request_id", cmd.RequestID)
		return txErr
	}

	// Blob cleanup happens after the rows are gone. A failed removal leaves
	// an orphaned object, which is preferable to a dangling database row.
	if uc.fileStore != nil {
		for _, a := range attachments {
			if err := uc.fileStore.Remove(ctx, a.ObjectKey()); err != nil {
				uc.logger.Warnw("failed to remove attachment object", "error", err, "object_key", a.ObjectKey())
			}
		}
	}

	uc.logger.Infow("service request deleted", "request_id", cmd.RequestID, "user_id", cmd.UserID)
	return nil
}
