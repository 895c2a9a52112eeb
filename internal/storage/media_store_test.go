package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaStoreSaveAndDelete(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), 1)
	require.NoError(t, err)

	userID := uuid.New()
	relPath, size, err := store.Save(context.Background(), userID, "before.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.Equal(t, int64(len("fake image bytes")), size)
	assert.True(t, strings.HasPrefix(relPath, userID.String()), "file must land in the owner's directory")
	assert.Equal(t, ".jpg", filepath.Ext(relPath))

	full := filepath.Join(store.Root(), relPath)
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), relPath))
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))
}

func TestMediaStoreSizeLimit(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), 1)
	require.NoError(t, err)

	big := strings.NewReader(strings.Repeat("x", 1024*1024+1))
	_, _, err = store.Save(context.Background(), uuid.New(), "huge.png", big)

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestMediaStoreDeleteMissingFile(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), 1)
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "nobody/nothing.jpg"))
}

func TestMediaStoreDeleteRejectsTraversal(t *testing.T) {
	store, err := NewMediaStore(t.TempDir(), 1)
	require.NoError(t, err)

	assert.Error(t, store.Delete(context.Background(), "../outside.txt"))
}
