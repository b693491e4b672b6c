package usecases

import (
	"context"
	"fmt"
	"time"

	"gastrack/internal/application/user/dto"
	"gastrack/internal/domain/user"
	vo "gastrack/internal/domain/user/valueobjects"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
)

// ErrInvalidCredentials is returned for every authentication failure so the
// response never reveals whether the email is registered.
var ErrInvalidCredentials = errors.NewUnauthorizedError("Invalid credentials")

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User        *dto.UserDTO
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo        user.Repository
	sessionRepo     user.SessionRepository
	passwordHasher  user.PasswordHasher
	jwtService      JWTService
	sessionDuration time.Duration
	logger          logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	sessionDuration time.Duration,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordHasher:  hasher,
		jwtService:      jwtService,
		sessionDuration: sessionDuration,
		logger:          logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	// Accounts are stored under the normalized address, so the login lookup
	// must normalize too or a mixed-case login would never match.
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existingUser == nil {
		return nil, ErrInvalidCredentials
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existingUser.ID(), "ip", cmd.IPAddress)
		return nil, ErrInvalidCredentials
	}

	session, err := user.NewSession(existingUser.ID(), cmd.IPAddress, cmd.UserAgent, uc.sessionDuration)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID(), session.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "session_id", session.ID())

	return &LoginResult{
		User:        dto.ToUserDTO(existingUser),
		AccessToken: tokens.AccessToken,
		ExpiresIn:   tokens.ExpiresIn,
	}, nil
}
