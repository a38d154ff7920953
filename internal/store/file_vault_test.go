package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestFileVaultRepository_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vaults")
	repo, err := NewFileVaultRepository(dir, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	updated := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	vault := models.StoredVault{UserID: 42, Raw: "secret\nline\nhash", Encrypted: false, UpdatedAt: updated}

	require.NoError(t, repo.SaveVault(ctx, vault))

	got, err := repo.GetVault(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, vault, got)

	info, err := os.Stat(filepath.Join(dir, "vault-42.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(vaultFilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileVaultRepository_Overwrite(t *testing.T) {
	repo, err := NewFileVaultRepository(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveVault(ctx, models.StoredVault{UserID: 1, Raw: "old"}))
	require.NoError(t, repo.SaveVault(ctx, models.StoredVault{UserID: 1, Raw: "new"}))

	got, err := repo.GetVault(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Raw)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestFileVaultRepository_NotFound(t *testing.T) {
	repo, err := NewFileVaultRepository(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.GetVault(ctx, 9)
	assert.ErrorIs(t, err, ErrVaultNotFound)
	assert.ErrorIs(t, repo.DeleteVault(ctx, 9), ErrVaultNotFound)
}

func TestFileVaultRepository_Delete(t *testing.T) {
	repo, err := NewFileVaultRepository(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveVault(ctx, models.StoredVault{UserID: 2, Raw: "x"}))
	require.NoError(t, repo.DeleteVault(ctx, 2))

	_, err = repo.GetVault(ctx, 2)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestFileVaultRepository_Invalid(t *testing.T) {
	repo, err := NewFileVaultRepository(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, repo.SaveVault(context.Background(), models.StoredVault{Raw: "x"}), ErrInvalidVault)
}

func TestFileVaultRepository_CanceledContext(t *testing.T) {
	repo, err := NewFileVaultRepository(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.SaveVault(ctx, models.StoredVault{UserID: 1, Raw: "x"}), context.Canceled)
}

func TestNewStorages_FileBackend(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorages(context.Background(), config.ClientStorage{Files: config.ClientFiles{VaultDir: dir}}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.VaultRepository)
	assert.NoError(t, s.Close())
}
