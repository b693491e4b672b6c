package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/application/servicerequest/dto"
	"gastrack/internal/domain/servicerequest"
	vo "gastrack/internal/domain/servicerequest/valueobjects"
	"gastrack/internal/domain/user"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
)

type ListRequestsQuery struct {
	UserID  uint
	IsStaff bool

	Status      string
	Priority    string
	RequestType string
	Page        int
	PageSize    int
}

type ListRequestsUseCase struct {
	requestRepo servicerequest.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo servicerequest.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]dto.RequestListItemDTO, int64, error) {
	filter := servicerequest.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	// Customers only ever see their own requests. Staff see everything.
	if !query.IsStaff {
		requesterID := query.UserID
		filter.RequesterID = &requesterID
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.RequestType != "" {
		requestType, err := vo.NewRequestType(query.RequestType)
		if err != nil {
			return nil, 0, errors.NewValidationError(err.Error())
		}
		filter.RequestType = &requestType
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list service requests", "error", err)
		return nil, 0, fmt.Errorf("failed to list service requests: %w", err)
	}

	names, err := uc.resolveNames(ctx, requests)
	if err != nil {
		uc.logger.Warnw("failed to resolve user names", "error", err)
		names = map[uint]string{}
	}

	items := make([]dto.RequestListItemDTO, 0, len(requests))
	for _, r := range requests {
		items = append(items, dto.ToRequestListItemDTO(r, names))
	}

	return items, total, nil
}

func (uc *ListRequestsUseCase) resolveNames(ctx context.Context, requests []*servicerequest.ServiceRequest) (map[uint]string, error) {
	idSet := make(map[uint]struct{})
	for _, r := range requests {
		idSet[r.RequesterID()] = struct{}{}
		if r.AssigneeID() != nil {
			idSet[*r.AssigneeID()] = struct{}{}
		}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	return uc.userRepo.GetNamesByIDs(ctx, ids)
}
