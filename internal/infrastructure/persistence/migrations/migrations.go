package migrations

import (
	"gorm.io/gorm"

	"gastrack/internal/infrastructure/persistence/models"
)

// MigrateAll brings the schema up to date for every table the service owns.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.ProfileModel{},
		&models.SessionModel{},
		&models.ServiceRequestModel{},
		&models.RequestCommentModel{},
		&models.AttachmentModel{},
		&models.ArticleModel{},
	)
}
