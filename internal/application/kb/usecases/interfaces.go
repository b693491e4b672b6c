package usecases

import (
	"context"

	"gastrack/internal/application/kb/dto"
)

type ListArticlesExecutor interface {
	Execute(ctx context.Context) ([]dto.ArticleListItemDTO, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}
