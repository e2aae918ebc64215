package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocal(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads")

		_, err := NewLocal(dir)

		require.NoError(t, err)
		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		_, err := NewLocal("")
		assert.Error(t, err)
	})
}

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	content := "hello world"
	info, err := store.Put(ctx, "report-1700000000000.txt", strings.NewReader(content), PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: "text/plain",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "report-1700000000000.txt", info.Key)

	rc, getInfo, err := store.Get(ctx, "report-1700000000000.txt")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
	assert.Equal(t, int64(len(content)), getInfo.Size)

	require.NoError(t, store.Delete(ctx, "report-1700000000000.txt"))

	_, _, err = store.Get(ctx, "report-1700000000000.txt")
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestLocalStorage_MissingObject(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Get(ctx, "nope.pdf")
	assert.True(t, errors.Is(err, ErrNotExist))

	err = store.Delete(ctx, "nope.pdf")
	assert.True(t, errors.Is(err, ErrNotExist))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside.txt", "/etc/passwd", ""} {
		_, err := store.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{Size: 1})
		assert.Error(t, err, "key %q should be rejected", key)
	}
}
