package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/application/servicerequest/dto"
	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/domain/user"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
)

type AddCommentCommand struct {
	RequestID uint
	UserID    uint
	IsStaff   bool
	Text      string
}

type AddCommentUseCase struct {
	requestRepo servicerequest.Repository
	commentRepo servicerequest.CommentRepository
	userRepo    user.Repository
	notifier    Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	requestRepo servicerequest.Repository,
	commentRepo servicerequest.CommentRepository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		requestRepo: requestRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	r, err := loadVisibleRequest(ctx, uc.requestRepo, cmd.RequestID, cmd.UserID, cmd.IsStaff)
	if err != nil {
		return nil, err
	}

	comment, err := servicerequest.NewComment(r.ID(), cmd.UserID, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	names, err := uc.userRepo.GetNamesByIDs(ctx, []uint{cmd.UserID})
	if err != nil {
		uc.logger.Warnw("failed to resolve commenter name", "error", err, "user_id", cmd.UserID)
		names = map[uint]string{}
	}

	// Staff replies on a customer's request trigger a best-effort mail to
	// the requester. Failures are logged, never surfaced to the commenter.
	if cmd.IsStaff && r.RequesterID() != cmd.UserID {
		if owner, err := uc.userRepo.GetByID(ctx, r.RequesterID()); err != nil || owner == nil {
			uc.logger.Warnw("failed to load requester for comment notification", "error", err, "user_id", r.RequesterID())
		} else if err := uc.notifier.NotifyCommentAdded(owner.Email().String(), r.ID(), names[cmd.UserID]); err != nil {
			uc.logger.Warnw("failed to send comment notification", "error", err, "request_id", r.ID())
		}
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "request_id", cmd.RequestID, "user_id", cmd.UserID)

	result := dto.ToCommentDTO(comment, names[cmd.UserID])
	return &result, nil
}
