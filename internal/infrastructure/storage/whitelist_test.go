package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"plate-sentry/internal/domain/entity"
)

func writeWhitelist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whitelist.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWhitelistStoreLoadsNormalized(t *testing.T) {
	path := writeWhitelist(t, `["abc 123", "XYZ999"]`)

	store, err := NewWhitelistStore(path, zerolog.Nop())
	require.NoError(t, err)

	require.Equal(t, 2, store.Size())
	require.True(t, store.Contains("ABC123"))
	require.True(t, store.Contains("XYZ999"))
	require.False(t, store.Contains("AAA111"))
}

func TestWhitelistStoreReload(t *testing.T) {
	path := writeWhitelist(t, `["ABC123"]`)

	store, err := NewWhitelistStore(path, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, store.Contains("ABC123"))

	require.NoError(t, os.WriteFile(path, []byte(`["NEW-42"]`), 0o644))
	require.NoError(t, store.Reload())

	require.False(t, store.Contains("ABC123"))
	require.True(t, store.Contains("NEW-42"))
}

func TestWhitelistStoreMissingFile(t *testing.T) {
	_, err := NewWhitelistStore(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())
	require.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestWhitelistStoreInvalidJSON(t *testing.T) {
	path := writeWhitelist(t, `{"not": "a list"}`)
	_, err := NewWhitelistStore(path, zerolog.Nop())
	require.ErrorIs(t, err, entity.ErrConfiguration)
}

func TestWhitelistStoreConcurrentReads(t *testing.T) {
	path := writeWhitelist(t, `["ABC123"]`)
	store, err := NewWhitelistStore(path, zerolog.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				store.Contains("ABC123")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, store.Reload())
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
