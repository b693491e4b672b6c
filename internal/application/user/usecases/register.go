package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/application/user/dto"
	"gastrack/internal/domain/user"
	vo "gastrack/internal/domain/user/valueobjects"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
)

type RegisterCommand struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Address   string
	Phone     string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	emailService   EmailService
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	emailService EmailService,
	txMgr TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		emailService:   emailService,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewValidationError("a user with this email already exists")
	}

	newUser, err := user.NewUser(email, name, cmd.Address, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The user row and its profile are created in one transaction. The
	// account number is derived from the allocated user ID, so it can only
	// be assigned after the insert.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewValidationError("a user with this email already exists")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if err := newUser.AssignAccountNumber(); err != nil {
			return fmt.Errorf("failed to assign account number: %w", err)
		}

		if err := uc.userRepo.CreateProfile(txCtx, newUser); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}

		return nil
	})
	if txErr != nil {
		if !errors.IsAppError(txErr) {
			uc.logger.Errorw("registration transaction failed", "error", txErr, "email", email.String())
		}
		return nil, txErr
	}

	if uc.emailService != nil {
		// The greeting uses the title-cased display name, not the raw
		// first/last as entered.
		if err := uc.emailService.SendWelcomeEmail(email.String(), name.DisplayName(), newUser.Profile().AccountNumber()); err != nil {
			uc.logger.Warnw("failed to send welcome email", "error", err, "email", email.String())
		}
	}

	uc.logger.Infow("user registered",
		"user_id", newUser.ID(),
		"email", email.String(),
		"account_number", newUser.Profile().AccountNumber(),
	)

	return dto.ToUserDTO(newUser), nil
}
