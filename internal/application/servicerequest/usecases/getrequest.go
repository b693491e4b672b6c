package usecases

import (
	"context"
	"fmt"
	"time"

	"gastrack/internal/application/servicerequest/dto"
	"gastrack/internal/domain/servicerequest"
	"gastrack/internal/domain/user"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
)

const attachmentURLExpiry = 15 * time.Minute

type GetRequestQuery struct {
	RequestID uint
	UserID    uint
	IsStaff   bool
}

type GetRequestUseCase struct {
	requestRepo    servicerequest.Repository
	commentRepo    servicerequest.CommentRepository
	attachmentRepo servicerequest.AttachmentRepository
	userRepo       user.Repository
	fileStore      FileStore
	logger         logger.Interface
}

func NewGetRequestUseCase(
	requestRepo servicerequest.Repository,
	commentRepo servicerequest.CommentRepository,
	attachmentRepo servicerequest.AttachmentRepository,
	userRepo user.Repository,
	fileStore FileStore,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo:    requestRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		userRepo:       userRepo,
		fileStore:      fileStore,
		logger:         logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	r, err := loadVisibleRequest(ctx, uc.requestRepo, query.RequestID, query.UserID, query.IsStaff)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "error", err, "request_id", query.RequestID)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	r.AttachComments(comments)

	attachments, err := uc.attachmentRepo.GetByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err, "request_id", query.RequestID)
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}
	r.AttachFiles(attachments)

	names, err := uc.userRepo.GetNamesByIDs(ctx, collectUserIDs(r))
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "error", err, "request_id", query.RequestID)
		names = map[uint]string{}
	}

	urls := make(map[uint]string)
	if uc.fileStore != nil {
		for _, a := range attachments {
			url, err := uc.fileStore.PresignedGetURL(ctx, a.ObjectKey(), attachmentURLExpiry)
			if err != nil {
				uc.logger.Warnw("failed to presign attachment url", "error", err, "attachment_id", a.ID())
				continue
			}
			urls[a.ID()] = url
		}
	}

	return dto.ToRequestDTO(r, names, urls), nil
}

// loadVisibleRequest fetches a request and applies the visibility rule: a
// customer asking for someone else's request gets the same not-found error
// as for a request that does not exist, so request IDs cannot be probed.
func loadVisibleRequest(
	ctx context.Context,
	repo servicerequest.Repository,
	requestID, userID uint,
	isStaff bool,
) (*servicerequest.ServiceRequest, error) {
	r, err := repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service request: %w", err)
	}
	if r == nil || !r.CanBeViewedBy(userID, isStaff) {
		return nil, errors.NewNotFoundError("service request not found")
	}
	return r, nil
}

func collectUserIDs(r *servicerequest.ServiceRequest) []uint {
	idSet := map[uint]struct{}{r.RequesterID(): {}}
	if r.AssigneeID() != nil {
		idSet[*r.AssigneeID()] = struct{}{}
	}
	for _, c := range r.Comments() {
		idSet[c.UserID()] = struct{}{}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	return ids
}
