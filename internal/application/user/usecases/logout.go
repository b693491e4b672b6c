package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/domain/user"
	"gastrack/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute revokes the session. Logging out an already revoked or unknown
// session succeeds, so repeated logouts are harmless.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return nil
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to get session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil
	}

	if err := uc.sessionRepo.Revoke(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to revoke session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	uc.logger.Infow("user logged out", "session_id", cmd.SessionID, "user_id", session.UserID())
	return nil
}
