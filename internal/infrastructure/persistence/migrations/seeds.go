package migrations

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed seeds/*.sql
var seedFS embed.FS

// SeedKnowledgeBase applies the embedded goose seed scripts. Articles are
// reference content shipped with the binary, not user data, so they travel
// as versioned SQL instead of going through the repository layer.
func SeedKnowledgeBase(db *gorm.DB, dialect string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(seedFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "seeds"); err != nil {
		return fmt.Errorf("failed to run seed migrations: %w", err)
	}
	return nil
}
