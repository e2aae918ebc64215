package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// KnowledgeService defines the use cases for articles and comments.
// Articles are append-only; neither articles nor comments can be updated or
// deleted.
type KnowledgeService interface {
	// ListArticles returns all articles, newest first.
	ListArticles(ctx context.Context) ([]model.Article, error)

	// GetArticle returns an article by ID, or ErrArticleNotFound.
	GetArticle(ctx context.Context, id string) (*model.Article, error)

	// CreateArticle stores a new article. Author is the authenticated
	// username.
	CreateArticle(ctx context.Context, title, content, author string) (*model.Article, error)

	// ListComments returns an article's comments, oldest first. An unknown
	// article yields an empty slice, not an error.
	ListComments(ctx context.Context, articleID string) ([]model.Comment, error)

	// CreateComment attaches a comment to an article ID without checking
	// that the article exists.
	CreateComment(ctx context.Context, articleID, content, author string) (*model.Comment, error)
}

type knowledgeService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
}

// NewKnowledgeService constructs a new KnowledgeService.
func NewKnowledgeService(articles repository.ArticleRepository, comments repository.CommentRepository) KnowledgeService {
	return &knowledgeService{articles: articles, comments: comments}
}

func (s *knowledgeService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.articles.List(ctx)
}

func (s *knowledgeService) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.articles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *knowledgeService) CreateArticle(ctx context.Context, title, content, author string) (*model.Article, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrAuthorRequired
	}

	now := time.Now().UTC()
	a := &model.Article{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.articles.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return stored, nil
}

func (s *knowledgeService) ListComments(ctx context.Context, articleID string) ([]model.Comment, error) {
	if articleID == "" {
		return nil, ErrIDRequired
	}
	return s.comments.ListByArticle(ctx, articleID)
}

func (s *knowledgeService) CreateComment(ctx context.Context, articleID, content, author string) (*model.Comment, error) {
	if articleID == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrAuthorRequired
	}

	c := &model.Comment{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.comments.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return stored, nil
}
