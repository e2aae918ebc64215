package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docshare/internal/config"
	"docshare/internal/http/middleware"
	"docshare/internal/service"
	"docshare/internal/session"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	DB        *sql.DB
	Auth      service.AuthService
	Documents service.DocumentService
	Knowledge service.KnowledgeService
	Sessions  session.Store
	Session   config.SessionConfig
	WebDir    string
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; gating is done by the auth
// middleware, with API routes answering 401 JSON and page routes redirecting
// to /login.
func RegisterRoutes(app *fiber.App, deps RouterDeps) {
	// Resolve the session cookie on every request; gates come per route.
	app.Use(middleware.Authenticate(deps.Sessions, deps.Session.CookieName))

	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	authed := middleware.RequireAuth()

	api := app.Group("/api")
	api.Post("/register", Register(deps.Auth))
	api.Post("/login", Login(deps.Auth, deps.Sessions, deps.Session))
	api.Post("/logout", Logout(deps.Sessions, deps.Session))
	api.Get("/auth_status", AuthStatus())

	api.Get("/documents", authed, ListDocuments(deps.Documents))
	api.Post("/upload", authed, UploadDocument(deps.Documents))
	api.Get("/download/:id", authed, DownloadDocument(deps.Documents))
	api.Delete("/documents/:id", authed, DeleteDocument(deps.Documents))

	api.Get("/articles", ListArticles(deps.Knowledge))
	api.Post("/articles", authed, CreateArticle(deps.Knowledge))
	api.Get("/articles/:id", GetArticle(deps.Knowledge))
	api.Get("/articles/:id/comments", ListComments(deps.Knowledge))
	api.Post("/articles/:id/comments", authed, CreateComment(deps.Knowledge))

	gated := middleware.RequirePage("/login")

	app.Get("/", Page(deps.WebDir, "index.html"))
	app.Get("/login", Page(deps.WebDir, "login.html"))
	app.Get("/register", Page(deps.WebDir, "register.html"))
	app.Get("/documents", gated, Page(deps.WebDir, "documents.html"))
	app.Get("/upload", gated, Page(deps.WebDir, "upload.html"))
	app.Get("/knowledge", Page(deps.WebDir, "knowledge.html"))
	// /knowledge/new must be registered before /knowledge/:id.
	app.Get("/knowledge/new", gated, Page(deps.WebDir, "knowledge_new.html"))
	app.Get("/knowledge/:id", Page(deps.WebDir, "knowledge_detail.html"))
}
