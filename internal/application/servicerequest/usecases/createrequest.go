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

type CreateRequestCommand struct {
	RequestType string
	Description string
	Address     string
	Priority    string
	RequesterID uint
}

type CreateRequestUseCase struct {
	requestRepo servicerequest.Repository
	userRepo    user.Repository
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo servicerequest.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error) {
	requestType, err := vo.NewRequestType(cmd.RequestType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority, err = vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// Status and assignee from the request body are ignored. New requests
	// always start pending and unassigned, owned by the caller.
	newRequest, err := servicerequest.NewServiceRequest(
		requestType,
		cmd.Description,
		cmd.Address,
		priority,
		cmd.RequesterID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save service request", "error", err)
		return nil, fmt.Errorf("failed to save service request: %w", err)
	}

	if uc.notifier != nil && requestType.IsUrgent() {
		if err := uc.notifier.NotifyUrgentRequest(newRequest.ID(), requestType.String(), cmd.Address); err != nil {
			uc.logger.Warnw("failed to send urgent request notification", "error", err, "request_id", newRequest.ID())
		}
	}

	names, err := uc.userRepo.GetNamesByIDs(ctx, []uint{cmd.RequesterID})
	if err != nil {
		uc.logger.Warnw("failed to resolve requester name", "error", err, "user_id", cmd.RequesterID)
		names = map[uint]string{}
	}

	uc.logger.Infow("service request created",
		"request_id", newRequest.ID(),
		"request_type", requestType.String(),
		"requester_id", cmd.RequesterID,
	)

	return dto.ToRequestDTO(newRequest, names, nil), nil
}
