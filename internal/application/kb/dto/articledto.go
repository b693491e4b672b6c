package dto

import (
	"time"

	"gastrack/internal/domain/kb"
)

type ArticleDTO struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArticleListItemDTO struct {
	ID      uint   `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func ToArticleDTO(a *kb.Article, html string) *ArticleDTO {
	if a == nil {
		return nil
	}

	return &ArticleDTO{
		ID:        a.ID(),
		Slug:      a.Slug(),
		Title:     a.Title(),
		Summary:   a.Summary(),
		HTML:      html,
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToArticleListItemDTO(a *kb.Article) ArticleListItemDTO {
	return ArticleListItemDTO{
		ID:      a.ID(),
		Slug:    a.Slug(),
		Title:   a.Title(),
		Summary: a.Summary(),
	}
}
