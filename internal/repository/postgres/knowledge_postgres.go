package postgres

import (
	"context"
	"database/sql"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// ArticlePostgres is a PostgreSQL implementation of repository.ArticleRepository.
type ArticlePostgres struct {
	db *sql.DB
}

// NewArticlePostgres creates a new ArticlePostgres repository.
func NewArticlePostgres(db *sql.DB) *ArticlePostgres {
	return &ArticlePostgres{db: db}
}

var _ repository.ArticleRepository = (*ArticlePostgres)(nil)

const articleColumns = `id, title, content, author, created_at, updated_at`

func scanArticle(s interface{ Scan(...any) error }) (*model.Article, error) {
	var a model.Article
	if err := s.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article row and returns the stored record.
func (r *ArticlePostgres) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	const q = `
		INSERT INTO articles (id, title, content, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + articleColumns
	row := r.db.QueryRowContext(ctx, q, a.ID, a.Title, a.Content, a.Author, a.CreatedAt, a.UpdatedAt)
	return scanArticle(row)
}

// FindByID fetches a single article by its ID.
func (r *ArticlePostgres) FindByID(ctx context.Context, id string) (*model.Article, error) {
	const q = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
	`
	return scanArticle(r.db.QueryRowContext(ctx, q, id))
}

// List returns all articles, newest first.
func (r *ArticlePostgres) List(ctx context.Context) ([]model.Article, error) {
	const q = `
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

// Create inserts a new comment row. article_id is stored without an
// existence check; the schema declares no foreign key.
func (r *CommentPostgres) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (id, article_id, content, author, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, article_id, content, author, created_at
	`
	row := r.db.QueryRowContext(ctx, q, c.ID, c.ArticleID, c.Content, c.Author, c.CreatedAt)

	var out model.Comment
	if err := row.Scan(&out.ID, &out.ArticleID, &out.Content, &out.Author, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByArticle returns the comments for an article, oldest first.
func (r *CommentPostgres) ListByArticle(ctx context.Context, articleID string) ([]model.Comment, error) {
	const q = `
		SELECT id, article_id, content, author, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Content, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
