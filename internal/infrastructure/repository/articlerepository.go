package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gastrack/internal/domain/kb"
	"gastrack/internal/infrastructure/persistence/mappers"
	"gastrack/internal/infrastructure/persistence/models"
	"gastrack/internal/shared/db"
)

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) List(ctx context.Context) ([]*kb.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ArticleModel
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*kb.Article, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*kb.Article, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ArticleModel
	if err := tx.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
