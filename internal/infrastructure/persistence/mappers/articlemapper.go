package mappers

import (
	"time"

	"gastrack/internal/domain/kb"
	"gastrack/internal/infrastructure/persistence/models"
)

type ArticleMapper interface {
	ToModel(a *kb.Article) *models.ArticleModel
	ToDomain(model *models.ArticleModel) (*kb.Article, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(a *kb.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:        a.ID(),
		Slug:      a.Slug(),
		Title:     a.Title(),
		Summary:   a.Summary(),
		Body:      a.Body(),
		CreatedAt: a.CreatedAt().UnixMilli(),
		UpdatedAt: a.UpdatedAt().UnixMilli(),
	}
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*kb.Article, error) {
	return kb.ReconstructArticle(
		model.ID,
		model.Slug,
		model.Title,
		model.Summary,
		model.Body,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
