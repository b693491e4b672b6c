package usecases

import (
	"context"
	"fmt"

	"gastrack/internal/application/kb/dto"
	"gastrack/internal/domain/kb"
	"gastrack/internal/shared/errors"
	"gastrack/internal/shared/logger"
	"gastrack/internal/shared/services/markdown"
)

type GetArticleQuery struct {
	Slug string
}

type GetArticleUseCase struct {
	articleRepo kb.Repository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewGetArticleUseCase(articleRepo kb.Repository, markdownSvc markdown.Service, logger logger.Interface) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	article, err := uc.articleRepo.GetBySlug(ctx, query.Slug)
	if err != nil {
		uc.logger.Errorw("failed to get article", "error", err, "slug", query.Slug)
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if article == nil {
		return nil, errors.NewNotFoundError("article not found")
	}

	html, err := uc.markdown.ToHTMLSanitized(article.Body())
	if err != nil {
		uc.logger.Errorw("failed to render article", "error", err, "slug", query.Slug)
		return nil, fmt.Errorf("failed to render article: %w", err)
	}

	return dto.ToArticleDTO(article, html), nil
}
