package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	a, err := NewArticle("Getting-Started", "Getting Started", "first steps", "# Welcome")
	require.NoError(t, err)
	assert.Equal(t, "getting-started", a.Slug(), "slug is normalized to lowercase")
	assert.Equal(t, "Getting Started", a.Title())
}

func TestNewArticle_Validation(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		title string
		body  string
	}{
		{"empty slug", "", "t", "b"},
		{"slug with spaces", "getting started", "t", "b"},
		{"slug with trailing dash", "faq-", "t", "b"},
		{"empty title", "faq", " ", "b"},
		{"empty body", "faq", "t", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArticle(tt.slug, tt.title, "", tt.body)
			assert.Error(t, err)
		})
	}
}
