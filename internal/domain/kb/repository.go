package kb

import "context"

// Repository provides read access to published articles. Articles are
// managed out of band (migrations and seed data), so there is no write path.
type Repository interface {
	// List returns all articles ordered by ID ascending.
	List(ctx context.Context) ([]*Article, error)

	// GetBySlug returns the article with the given slug, or (nil, nil)
	// when no such article exists.
	GetBySlug(ctx context.Context, slug string) (*Article, error)
}
