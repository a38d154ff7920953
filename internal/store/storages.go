package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups the local storage backends used by the service layer.
type Storages struct {
	// VaultRepository persists vault blobs locally.
	VaultRepository VaultRepository

	db *DB
}

// NewStorages initialises the local storage layer. When cfg.DB.DSN is set it
// opens the configured database and runs migrations; otherwise it falls back
// to the file store in cfg.Files.VaultDir.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		if cfg.Files.VaultDir == "" {
			return nil, errors.New("no local storage configured")
		}
		repo, err := NewFileVaultRepository(cfg.Files.VaultDir, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{VaultRepository: repo}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		VaultRepository: NewVaultRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
