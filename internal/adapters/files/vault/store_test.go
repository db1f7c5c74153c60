package vault

import (
	"context"
	"testing"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T, files map[string]string) *Store {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, "/vault/"+path, []byte(content), 0o644))
	}

	return NewStore(fs, "/vault")
}

func TestStoreResolveNameSearchesRecursively(t *testing.T) {
	t.Parallel()

	store := newTestVault(t, map[string]string{
		"notes/today.md":            "hello",
		"attachments/2026/cat.png":  "png",
		"z-archive/cat.png":         "older",
		".trash/dog.jpg":            "deleted",
		"attachments/2026/dog.jpeg": "jpeg",
	})

	ref, err := store.ResolveName(context.Background(), "cat.png")
	require.NoError(t, err)
	assert.Equal(t, "attachments/2026/cat.png", ref)

	data, err := store.ReadBinary(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestStoreResolveNameSkipsHiddenDirectories(t *testing.T) {
	t.Parallel()

	store := newTestVault(t, map[string]string{".trash/dog.jpg": "deleted"})

	_, err := store.ResolveName(context.Background(), "dog.jpg")
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStoreResolveNameWithPath(t *testing.T) {
	t.Parallel()

	store := newTestVault(t, map[string]string{
		"a/cat.png": "first",
		"b/cat.png": "second",
	})

	ref, err := store.ResolveName(context.Background(), "b/cat.png")
	require.NoError(t, err)
	assert.Equal(t, "b/cat.png", ref)
}

func TestStoreResolveNameMissingVault(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), "/nowhere")

	_, err := store.ResolveName(context.Background(), "cat.png")
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStoreReadText(t *testing.T) {
	t.Parallel()

	store := newTestVault(t, map[string]string{"notes/thread.md": "THREAD START\none\nTHREAD END"})

	text, err := store.ReadText(context.Background(), "notes/thread.md")
	require.NoError(t, err)
	assert.Equal(t, "THREAD START\none\nTHREAD END", text)

	_, err = store.ReadText(context.Background(), "notes/missing.md")
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStoreRejectsEscapingRefs(t *testing.T) {
	t.Parallel()

	store := newTestVault(t, nil)

	_, err := store.ReadBinary(context.Background(), "../etc/passwd")
	require.Error(t, err)
	assert.ErrorContains(t, err, "escapes the vault")
}
