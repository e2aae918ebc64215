package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"docshare/internal/model"
	repoMocks "docshare/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeService_CreateArticle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		content string
		author  string
		wantErr error
	}{
		{"missing title", "", "body", "alice", ErrTitleRequired},
		{"blank title", "   ", "body", "alice", ErrTitleRequired},
		{"missing content", "Title", "", "alice", ErrContentRequired},
		{"missing author", "Title", "body", "", ErrAuthorRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mArticles := new(repoMocks.MockArticleRepository)
			mComments := new(repoMocks.MockCommentRepository)
			svc := NewKnowledgeService(mArticles, mComments)

			_, err := svc.CreateArticle(ctx, tt.title, tt.content, tt.author)

			assert.True(t, errors.Is(err, tt.wantErr))
			mArticles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("success", func(t *testing.T) {
		mArticles := new(repoMocks.MockArticleRepository)
		mComments := new(repoMocks.MockCommentRepository)

		mArticles.On("Create", ctx, mock.MatchedBy(func(a *model.Article) bool {
			return a.ID != "" &&
				a.Title == "Onboarding notes" &&
				a.Author == "alice" &&
				a.CreatedAt.Equal(a.UpdatedAt)
		})).Return(&model.Article{ID: "article-1"}, nil)

		svc := NewKnowledgeService(mArticles, mComments)
		a, err := svc.CreateArticle(ctx, "Onboarding notes", "Start with the runbook.", "alice")

		require.NoError(t, err)
		assert.Equal(t, "article-1", a.ID)
		mArticles.AssertExpectations(t)
	})
}

func TestKnowledgeService_GetArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mArticles := new(repoMocks.MockArticleRepository)
		mComments := new(repoMocks.MockCommentRepository)
		mArticles.On("FindByID", ctx, "article-1").Return(&model.Article{ID: "article-1"}, nil)

		svc := NewKnowledgeService(mArticles, mComments)
		a, err := svc.GetArticle(ctx, "article-1")

		require.NoError(t, err)
		assert.Equal(t, "article-1", a.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mArticles := new(repoMocks.MockArticleRepository)
		mComments := new(repoMocks.MockCommentRepository)
		mArticles.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

		svc := NewKnowledgeService(mArticles, mComments)
		_, err := svc.GetArticle(ctx, "missing")

		assert.True(t, errors.Is(err, ErrArticleNotFound))
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewKnowledgeService(new(repoMocks.MockArticleRepository), new(repoMocks.MockCommentRepository))
		_, err := svc.GetArticle(ctx, "")
		assert.True(t, errors.Is(err, ErrIDRequired))
	})
}

func TestKnowledgeService_ListArticles(t *testing.T) {
	ctx := context.Background()
	mArticles := new(repoMocks.MockArticleRepository)
	mComments := new(repoMocks.MockCommentRepository)

	articles := []model.Article{{ID: "newer"}, {ID: "older"}}
	mArticles.On("List", ctx).Return(articles, nil)

	svc := NewKnowledgeService(mArticles, mComments)
	got, err := svc.ListArticles(ctx)

	require.NoError(t, err)
	assert.Equal(t, articles, got)
}

func TestKnowledgeService_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		svc := NewKnowledgeService(new(repoMocks.MockArticleRepository), new(repoMocks.MockCommentRepository))

		_, err := svc.CreateComment(ctx, "", "body", "alice")
		assert.True(t, errors.Is(err, ErrIDRequired))

		_, err = svc.CreateComment(ctx, "article-1", "  ", "alice")
		assert.True(t, errors.Is(err, ErrContentRequired))

		_, err = svc.CreateComment(ctx, "article-1", "body", "")
		assert.True(t, errors.Is(err, ErrAuthorRequired))
	})

	t.Run("succeeds without checking the article exists", func(t *testing.T) {
		mArticles := new(repoMocks.MockArticleRepository)
		mComments := new(repoMocks.MockCommentRepository)

		mComments.On("Create", ctx, mock.MatchedBy(func(c *model.Comment) bool {
			return c.ID != "" && c.ArticleID == "never-created-article" && c.Author == "bob"
		})).Return(&model.Comment{ID: "comment-1", ArticleID: "never-created-article"}, nil)

		svc := NewKnowledgeService(mArticles, mComments)
		c, err := svc.CreateComment(ctx, "never-created-article", "+1", "bob")

		require.NoError(t, err)
		assert.Equal(t, "comment-1", c.ID)
		// No lookup against the articles table must happen.
		mArticles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestKnowledgeService_ListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("empty for unknown article", func(t *testing.T) {
		mArticles := new(repoMocks.MockArticleRepository)
		mComments := new(repoMocks.MockCommentRepository)
		mComments.On("ListByArticle", ctx, "unknown").Return([]model.Comment{}, nil)

		svc := NewKnowledgeService(mArticles, mComments)
		got, err := svc.ListComments(ctx, "unknown")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty id", func(t *testing.T) {
		svc := NewKnowledgeService(new(repoMocks.MockArticleRepository), new(repoMocks.MockCommentRepository))
		_, err := svc.ListComments(ctx, "")
		assert.True(t, errors.Is(err, ErrIDRequired))
	})
}
