package service

import "errors"

// Sentinel errors shared across the service layer. Handlers translate them
// into HTTP statuses; messages are safe to show to clients.
var (
	ErrIDRequired = errors.New("id is required")

	// Auth
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrUsernameTaken       = errors.New("username already taken")
	// ErrInvalidCredentials is deliberately the same for unknown usernames
	// and wrong passwords so responses cannot be used to enumerate users.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Documents
	ErrDocumentNotFound    = errors.New("document not found")
	ErrFileRequired        = errors.New("file is required")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrExtensionNotAllowed = errors.New("file type is not allowed")

	// Shared field validation
	ErrTitleRequired   = errors.New("title is required")
	ErrAuthorRequired  = errors.New("author is required")
	ErrContentRequired = errors.New("content is required")

	// Knowledge
	ErrArticleNotFound = errors.New("article not found")
)
