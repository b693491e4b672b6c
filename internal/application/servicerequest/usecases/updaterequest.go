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

// UpdateRequestCommand carries a partial update. Nil pointer fields are left
// unchanged. Status and AssigneeID are staff-only; AssigneeID pointing at 0
// clears the assignment.
type UpdateRequestCommand struct {
	RequestID uint
	UserID    uint
	IsStaff   bool

	RequestType *string
	Description *string
	Address     *string
	Priority    *string
	Status      *string
	AssigneeID  *uint
}

type UpdateRequestUseCase struct {
	requestRepo servicerequest.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo servicerequest.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error) {
	r, err := loadVisibleRequest(ctx, uc.requestRepo, cmd.RequestID, cmd.UserID, cmd.IsStaff)
	if err != nil {
		return nil, err
	}

	if !cmd.IsStaff && (cmd.Status != nil || cmd.AssigneeID != nil) {
		return nil, errors.NewForbiddenError("only staff can change status or assignment")
	}

	if err := uc.applyDetailChanges(r, cmd); err != nil {
		return nil, err
	}

	if cmd.AssigneeID != nil {
		if *cmd.AssigneeID == 0 {
			r.Unassign()
		} else {
			assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
			if err != nil {
				uc.logger.Errorw("failed to load assignee", "error", err, "assignee_id", *cmd.AssigneeID)
				return nil, fmt.Errorf("failed to load assignee: %w", err)
			}
			if assignee == nil || !assignee.IsStaff() {
				return nil, errors.NewValidationError("assignee must be a staff user")
			}
			if err := r.AssignTo(*cmd.AssigneeID); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := r.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.requestRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update service request", "error", err, "request_id", cmd.RequestID)
		return nil, fmt.Errorf("failed to update service request: %w", err)
	}

	names, err := uc.userRepo.GetNamesByIDs(ctx, collectUserIDs(r))
	if err != nil {
		names = map[uint]string{}
	}

	uc.logger.Infow("service request updated", "request_id", cmd.RequestID, "user_id", cmd.UserID)
	return dto.ToRequestDTO(r, names, nil), nil
}

func (uc *UpdateRequestUseCase) applyDetailChanges(r *servicerequest.ServiceRequest, cmd UpdateRequestCommand) error {
	var requestType *vo.RequestType
	if cmd.RequestType != nil {
		rt, err := vo.NewRequestType(*cmd.RequestType)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		requestType = &rt
	}

	var priority *vo.Priority
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		priority = &p
	}

	if requestType == nil && cmd.Description == nil && cmd.Address == nil && priority == nil {
		return nil
	}

	if err := r.UpdateDetails(requestType, cmd.Description, cmd.Address, priority); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
