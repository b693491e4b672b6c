package usecases

import (
	"context"

	"gastrack/internal/application/user/dto"
	"gastrack/internal/shared/authorization"
)

// TransactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TokenPair struct {
	AccessToken string
	ExpiresIn   int64
}

type JWTService interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (*TokenPair, error)
}

// EmailService sends account lifecycle mail. Implementations may be a no-op
// when SMTP is disabled in configuration.
type EmailService interface {
	SendWelcomeEmail(to, displayName, accountNumber string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}
