package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains the document payload storage abstraction. Two
// backends exist: local disk (the default) and an S3-compatible object store.

// ErrNotExist is returned by Get and Delete when no object is stored under
// the requested key. Callers treat it as a not-found condition.
var ErrNotExist = errors.New("object does not exist")

// PutObjectOptions define optional parameters for storing objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage stores and retrieves document payloads by key. Methods use context
// and streaming readers; payloads are never buffered whole in memory.
type Storage interface {
	// Put stores an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its
	// info. A missing object is reported as ErrNotExist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. A missing object is reported as
	// ErrNotExist; callers that tolerate absence check for it.
	Delete(ctx context.Context, key string) error
}
