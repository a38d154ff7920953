package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultFilePerm = 0o600

// fileVaultRepository keeps one JSON document per user in dir. Writes go
// through a temporary file and a rename so a crash never leaves a torn vault.
type fileVaultRepository struct {
	dir    string
	logger *logger.Logger
	now    func() time.Time
}

// NewFileVaultRepository constructs a [VaultRepository] storing vaults under
// dir, creating the directory if needed.
func NewFileVaultRepository(dir string, logger *logger.Logger) (VaultRepository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating vault directory: %w", err)
	}

	return &fileVaultRepository{
		dir:    dir,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (f *fileVaultRepository) path(userID int64) string {
	return filepath.Join(f.dir, "vault-"+strconv.FormatInt(userID, 10)+".json")
}

func (f *fileVaultRepository) SaveVault(ctx context.Context, vault models.StoredVault) error {
	if vault.UserID <= 0 || vault.Raw == "" {
		return ErrInvalidVault
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if vault.UpdatedAt.IsZero() {
		vault.UpdatedAt = f.now().UTC()
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("error encoding vault: %w", err)
	}

	if err = atomicWriteFile(f.path(vault.UserID), data, vaultFilePerm); err != nil {
		f.logger.Err(err).
			Str("func", "fileVaultRepository.SaveVault").
			Int64("user_id", vault.UserID).
			Msg("failed to write vault file")
		return fmt.Errorf("error writing vault file: %w", err)
	}

	return nil
}

func (f *fileVaultRepository) GetVault(ctx context.Context, userID int64) (models.StoredVault, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredVault{}, err
	}

	data, err := os.ReadFile(f.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return models.StoredVault{}, ErrVaultNotFound
	}
	if err != nil {
		f.logger.Err(err).
			Str("func", "fileVaultRepository.GetVault").
			Int64("user_id", userID).
			Msg("failed to read vault file")
		return models.StoredVault{}, fmt.Errorf("error reading vault file: %w", err)
	}

	var vault models.StoredVault
	if err = json.Unmarshal(data, &vault); err != nil {
		return models.StoredVault{}, fmt.Errorf("error decoding vault file: %w", err)
	}

	return vault, nil
}

func (f *fileVaultRepository) DeleteVault(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(f.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		return ErrVaultNotFound
	}
	if err != nil {
		return fmt.Errorf("error removing vault file: %w", err)
	}

	return nil
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".vault-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return err
	}
	if err = tmpFile.Sync(); err != nil {
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
