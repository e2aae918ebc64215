package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/http/middleware"
	"docshare/internal/model"
	"docshare/internal/service"
)

type createArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// ListArticles returns every article, newest first.
func ListArticles(svc service.KnowledgeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		articles, err := svc.ListArticles(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if articles == nil {
			articles = []model.Article{}
		}
		return c.JSON(articles)
	}
}

// GetArticle returns a single article by id.
func GetArticle(svc service.KnowledgeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetArticle(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrArticleNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", service.ErrArticleNotFound.Error())
			case errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(a)
	}
}

// CreateArticle stores a new article authored by the session identity.
func CreateArticle(svc service.KnowledgeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createArticleRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		a, err := svc.CreateArticle(c.UserContext(), req.Title, req.Content, middleware.Username(c))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTitleRequired),
				errors.Is(err, service.ErrContentRequired),
				errors.Is(err, service.ErrAuthorRequired):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "article created", "id": a.ID})
	}
}

// ListComments returns an article's comments, oldest first. An unknown
// article id yields an empty array rather than a 404.
func ListComments(svc service.KnowledgeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comments, err := svc.ListComments(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if comments == nil {
			comments = []model.Comment{}
		}
		return c.JSON(comments)
	}
}

// CreateComment attaches a comment to an article id. The article's existence
// is deliberately not checked.
func CreateComment(svc service.KnowledgeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		cm, err := svc.CreateComment(c.UserContext(), c.Params("id"), req.Content, middleware.Username(c))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrContentRequired),
				errors.Is(err, service.ErrAuthorRequired),
				errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "comment created", "id": cm.ID})
	}
}
