package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gastrack/internal/domain/user"
	"gastrack/internal/infrastructure/persistence/mappers"
	"gastrack/internal/infrastructure/persistence/models"
	"gastrack/internal/shared/db"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *user.Session) error {
	model := r.mapper.SessionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SessionModel
	if err := tx.Where("id = ?", sessionID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return r.mapper.SessionToDomain(&model)
}

func (r *SessionRepository) Revoke(ctx context.Context, sessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UnixMilli()
	if err := tx.
		Model(&models.SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", now).Error; err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("expires_at < ?", time.Now().UnixMilli()).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
