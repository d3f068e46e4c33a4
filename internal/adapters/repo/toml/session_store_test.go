package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/paladins-stats-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SessionStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "session.toml")
	config := viper.New()
	config.Set(SessionPathKey, path)

	store, err := NewSessionStore(config)
	require.NoError(t, err)

	return store, path
}

func TestSessionStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	session := domain.StoredSession{
		ID:        "ABC123",
		DevID:     "2557",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(context.Background(), session))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionStoreMissingFile(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	require.NoError(t, store.Clear(context.Background()))
}

func TestSessionStoreSaveEnforcesPermissionsAndVersion(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), domain.StoredSession{ID: "x", DevID: "1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[session]")
}

func TestSessionStoreClear(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), domain.StoredSession{ID: "x", DevID: "1"}))
	require.NoError(t, store.Clear(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStoreMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("version = [\n"), 0o600))

	_, err := store.Load(context.Background())
	require.ErrorContains(t, err, "decode session file")
}

func TestSessionStoreFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	content := strings.Join([]string{
		"version = 999",
		"[session]",
		`id = "x"`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := store.Load(context.Background())
	require.ErrorContains(t, err, "unsupported session schema version")
}

func TestSessionStoreCanceledContext(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Save(ctx, domain.StoredSession{ID: "x"}), context.Canceled)
}

func TestSessionStoreRejectsEmptyID(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	require.Error(t, store.Save(context.Background(), domain.StoredSession{}))
}
