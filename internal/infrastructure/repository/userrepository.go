package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gastrack/internal/domain/user"
	"gastrack/internal/infrastructure/persistence/mappers"
	"gastrack/internal/infrastructure/persistence/models"
	"gastrack/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) CreateProfile(ctx context.Context, u *user.User) error {
	model := r.mapper.ProfileToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	profile := r.mapper.ProfileToModel(u)
	if err := tx.
		Model(&models.ProfileModel{}).
		Where("user_id = ?", model.ID).
		Updates(map[string]interface{}{
			"address": profile.Address,
			"phone":   profile.Phone,
		}).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.toDomainWithProfile(tx, &model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.toDomainWithProfile(tx, &model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) GetNamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error) {
	result := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.UserModel
	if err := tx.
		Select("id", "first_name", "last_name").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user names: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = row.FirstName + " " + row.LastName
	}
	return result, nil
}

func (r *UserRepository) toDomainWithProfile(tx *gorm.DB, model *models.UserModel) (*user.User, error) {
	var profile models.ProfileModel
	err := tx.Where("user_id = ?", model.ID).First(&profile).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to get profile: %w", err)
		}
		return r.mapper.ToDomain(model, nil)
	}
	return r.mapper.ToDomain(model, &profile)
}
