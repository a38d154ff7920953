package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultStorageService struct {
	local  store.VaultRepository
	remote adapter.RemoteStore
	log    *logger.Logger
}

// NewVaultStorageService constructs a storage service over the local
// repository and the remote store. remote may be nil, in which case only the
// local copy is used.
func NewVaultStorageService(local store.VaultRepository, remote adapter.RemoteStore, log *logger.Logger) VaultStorageService {
	return &vaultStorageService{local: local, remote: remote, log: log}
}

func (s *vaultStorageService) Save(ctx context.Context, userID int64, file models.VaultFile) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if file.Raw == "" {
		return ErrNoVault
	}

	stored := models.StoredVault{
		UserID:    userID,
		Raw:       file.Raw,
		Encrypted: file.Encrypted,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.local.SaveVault(ctx, stored); err != nil {
		return fmt.Errorf("save vault to local store: %w", err)
	}

	if s.remote == nil {
		return nil
	}

	if err := s.remote.Set(ctx, stored); err != nil {
		return fmt.Errorf("set vault in remote store: %w", err)
	}
	if err := s.remote.Push(ctx, stored); err != nil {
		return fmt.Errorf("push vault snapshot to remote store: %w", err)
	}

	return nil
}

func (s *vaultStorageService) Load(ctx context.Context, userID int64) (models.StoredVault, error) {
	if userID <= 0 {
		return models.StoredVault{}, ErrInvalidUserID
	}

	stored, err := s.local.GetVault(ctx, userID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, store.ErrVaultNotFound) {
		return models.StoredVault{}, fmt.Errorf("get vault from local store: %w", err)
	}

	if s.remote == nil {
		return models.StoredVault{}, ErrVaultNotFound
	}

	stored, err = s.remote.Get(ctx, userID)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.StoredVault{}, ErrVaultNotFound
	}
	if err != nil {
		return models.StoredVault{}, fmt.Errorf("get vault from remote store: %w", err)
	}

	if err = s.local.SaveVault(ctx, stored); err != nil {
		s.log.Err(err).Str("func", "vaultStorageService.Load").Int64("user_id", userID).Msg("failed to cache remote vault locally")
	}

	return stored, nil
}

func (s *vaultStorageService) Remove(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	if err := s.local.DeleteVault(ctx, userID); err != nil && !errors.Is(err, store.ErrVaultNotFound) {
		return fmt.Errorf("delete vault from local store: %w", err)
	}

	if s.remote == nil {
		return nil
	}

	if err := s.remote.Remove(ctx, userID); err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("remove vault from remote store: %w", err)
	}

	return nil
}
