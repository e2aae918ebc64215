package repository

import (
	"context"

	"docshare/internal/model"
)

// ArticleRepository defines data access for knowledge articles. Articles are
// append-only, so there is no Update or Delete.
type ArticleRepository interface {
	Create(ctx context.Context, a *model.Article) (*model.Article, error)

	// FindByID returns an article by its ID. Missing rows surface as
	// sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Article, error)

	// List returns every article ordered by created_at descending.
	List(ctx context.Context) ([]model.Article, error)
}

// CommentRepository defines data access for article comments. article_id is
// stored as-is without an existence check against the articles table.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)

	// ListByArticle returns the comments for an article ordered by created_at
	// ascending. An unknown article yields an empty slice, not an error.
	ListByArticle(ctx context.Context, articleID string) ([]model.Comment, error)
}
