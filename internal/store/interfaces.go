package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists one vault blob per user.
type VaultRepository interface {
	// SaveVault inserts or replaces the vault of vault.UserID.
	SaveVault(ctx context.Context, vault models.StoredVault) error
	// GetVault returns the vault of userID or [ErrVaultNotFound].
	GetVault(ctx context.Context, userID int64) (models.StoredVault, error)
	// DeleteVault removes the vault of userID or returns [ErrVaultNotFound].
	DeleteVault(ctx context.Context, userID int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
