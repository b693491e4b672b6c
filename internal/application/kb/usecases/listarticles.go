package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/application/kb/dto"
	"gastrack/internal/domain/kb"
	"gastrack/internal/shared/logger"
)

type ListArticlesUseCase struct {
	articleRepo kb.Repository
	logger      logger.Interface
}

func NewListArticlesUseCase(articleRepo kb.Repository, logger logger.Interface) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context) ([]dto.ArticleListItemDTO, error) {
	articles, err := uc.articleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	items := make([]dto.ArticleListItemDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ToArticleListItemDTO(a))
	}
	return items, nil
}
