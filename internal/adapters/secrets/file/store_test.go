package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), "/secrets")
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid secret key"},
		{name: "traversal", key: "../escape", wantErr: "invalid secret key"},
		{name: "deep traversal", key: "../../secret", wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/secrets")
	key := "xthreads/acc-1/access_token"

	require.NoError(t, store.Put(context.Background(), key, "top-secret"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "top-secret", got)

	exists, err := afero.Exists(fs, "/secrets/xthreads/acc-1/access_token")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStoreGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/secrets/xthreads/acc-1/access_token", []byte("hand-written\n"), 0o600))

	got, err := NewStore(fs, "/secrets").Get(context.Background(), "xthreads/acc-1/access_token")
	require.NoError(t, err)
	assert.Equal(t, "hand-written", got)
}

func TestStoreGetMissingSecret(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), "/secrets")

	_, err := store.Get(context.Background(), "xthreads/acc-1/access_token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreEnforcesPermissionsOnDisk(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(afero.NewOsFs(), root)
	key := "xthreads/acc-1/access_token"

	require.NoError(t, store.Put(context.Background(), key, "top-secret"))

	info, err := os.Stat(filepath.Join(root, key))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMod), info.Mode().Perm())
}

func TestStoreDeleteIsIdempotentWhenSecretMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(afero.NewMemMapFs(), "/secrets")
	key := "xthreads/acc-1/access_token"

	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))
}
