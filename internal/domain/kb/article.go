package kb

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Article is a published knowledge-base entry. The body is stored as
// markdown and rendered to sanitized HTML at read time.
type Article struct {
	id        uint
	slug      string
	title     string
	summary   string
	body      string
	createdAt time.Time
	updatedAt time.Time
}

// NewArticle creates an article with a URL-safe slug.
func NewArticle(slug, title, summary, body string) (*Article, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug: %q", slug)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("body is required")
	}

	now := time.Now()
	return &Article{
		slug:      slug,
		title:     title,
		summary:   summary,
		body:      body,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructArticle rebuilds an article from persistence.
func ReconstructArticle(id uint, slug, title, summary, body string, createdAt, updatedAt time.Time) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	return &Article{
		id:        id,
		slug:      slug,
		title:     title,
		summary:   summary,
		body:      body,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Slug() string         { return a.slug }
func (a *Article) Title() string        { return a.title }
func (a *Article) Summary() string      { return a.summary }
func (a *Article) Body() string         { return a.body }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}
