package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Hour)

	token, err := store.Create(ctx, Session{UserID: "user-1", Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	s, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, "user-1", s.UserID)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Hour)

	_, err := store.Get(ctx, "no-such-token")
	assert.True(t, errors.Is(err, ErrNotFound))

	// Destroying an unknown token is not an error.
	assert.NoError(t, store.Destroy(ctx, "no-such-token"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Minute).(*memoryStore)

	now := time.Now()
	store.now = func() time.Time { return now }

	token, err := store.Create(ctx, Session{UserID: "user-1", Username: "alice"})
	require.NoError(t, err)

	// Still valid just before the TTL.
	store.now = func() time.Time { return now.Add(59 * time.Second) }
	_, err = store.Get(ctx, token)
	require.NoError(t, err)

	// Expired past the TTL.
	store.now = func() time.Time { return now.Add(61 * time.Second) }
	_, err = store.Get(ctx, token)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Hour)

	t1, err := store.Create(ctx, Session{UserID: "u1", Username: "alice"})
	require.NoError(t, err)
	t2, err := store.Create(ctx, Session{UserID: "u1", Username: "alice"})
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
