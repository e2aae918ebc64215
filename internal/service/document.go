package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/config"
	"docshare/internal/model"
	"docshare/internal/repository"
	"docshare/internal/storage"
)

// UploadInput carries everything needed to store a new document. Author is
// the authenticated username, never client-supplied input.
type UploadInput struct {
	Title            string
	Author           string
	OriginalFilename string
	ContentType      string
	Size             int64
	Reader           io.Reader
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// List returns all documents, newest upload first.
	List(ctx context.Context) ([]model.Document, error)

	// Upload validates the input, stores the payload under a generated
	// unique name, saves the metadata row, and rolls the payload back if the
	// row insert fails.
	Upload(ctx context.Context, in UploadInput) (*model.Document, error)

	// Download returns the payload stream and metadata for a document.
	// A missing row and a payload lost out of band both yield
	// ErrDocumentNotFound.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.Document, error)

	// Delete removes the payload (tolerating absence) and then the metadata
	// row. The two steps are not atomic.
	Delete(ctx context.Context, id string) error
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store    storage.Storage
	repo     repository.DocumentRepository
	maxBytes int64
	allowed  map[string]struct{}
}

// NewDocumentService constructs a new DocumentService enforcing the given
// upload constraints.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, cfg config.UploadConfig) DocumentService {
	allowed := make(map[string]struct{}, len(cfg.AllowedExts))
	for _, ext := range cfg.AllowedExts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &documentService{
		store:    store,
		repo:     repo,
		maxBytes: cfg.MaxBytes,
		allowed:  allowed,
	}
}

// unsafeFilenameChars matches everything that is stripped from an uploaded
// base filename before it is used as a storage key.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9\-_]`)

// storedFilename derives a filesystem-safe unique name: the sanitized base
// name, a millisecond timestamp, and the original extension.
func storedFilename(originalFilename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	base := strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename))
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	if base == "" {
		base = "file"
	}
	return base + "-" + strconv.FormatInt(now.UnixMilli(), 10) + ext
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*model.Document, error) {
	if in.Reader == nil {
		return nil, ErrFileRequired
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(in.Author) == "" {
		return nil, ErrAuthorRequired
	}
	ext := strings.ToLower(filepath.Ext(in.OriginalFilename))
	if _, ok := s.allowed[ext]; !ok {
		return nil, ErrExtensionNotAllowed
	}
	if in.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	now := time.Now().UTC()
	key := storedFilename(in.OriginalFilename, now)

	// Store the payload first, then the metadata row.
	_, err := s.store.Put(ctx, key, in.Reader, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.OriginalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store payload: %w", err)
	}

	doc := &model.Document{
		ID:               uuid.New().String(),
		Title:            in.Title,
		FilePath:         key,
		OriginalFilename: in.OriginalFilename,
		Author:           in.Author,
		UploadDate:       now,
		UpdateDate:       now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the payload so it is not orphaned.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns all documents, newest first.
func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	return s.repo.List(ctx)
}

func (s *documentService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Document, error) {
	if id == "" {
		return nil, nil, ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}

	rc, _, err := s.store.Get(ctx, doc.FilePath)
	if err != nil {
		// The payload can be removed out of band; surface it as not found.
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("open payload: %w", err)
	}
	return rc, doc, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return err
	}

	// Remove the payload first, tolerating a payload already gone. The row
	// delete that follows is a separate statement; the two are not atomic.
	if err := s.store.Delete(ctx, doc.FilePath); err != nil && !errors.Is(err, storage.ErrNotExist) {
		return fmt.Errorf("delete payload: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
