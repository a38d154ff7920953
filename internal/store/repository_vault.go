package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultsTable = "vaults"

// vaultRepository is the SQL implementation of [VaultRepository]. Queries
// are built with squirrel so the same code serves SQLite and PostgreSQL.
type vaultRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewVaultRepository constructs a [VaultRepository] on top of db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *vaultRepository) SaveVault(ctx context.Context, vault models.StoredVault) error {
	if vault.UserID <= 0 || vault.Raw == "" {
		return ErrInvalidVault
	}
	if vault.UpdatedAt.IsZero() {
		vault.UpdatedAt = r.now().UTC()
	}

	query, args, err := r.builder.
		Insert(vaultsTable).
		Columns("user_id", "raw", "encrypted", "updated_at").
		Values(vault.UserID, vault.Raw, vault.Encrypted, vault.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET raw = excluded.raw, encrypted = excluded.encrypted, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.SaveVault").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "vaultRepository.SaveVault").
			Int64("user_id", vault.UserID).
			Msg("failed to save vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *vaultRepository) GetVault(ctx context.Context, userID int64) (models.StoredVault, error) {
	query, args, err := r.builder.
		Select("user_id", "raw", "encrypted", "updated_at").
		From(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.GetVault").Msg("failed to build query")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var vault models.StoredVault
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&vault.UserID, &vault.Raw, &vault.Encrypted, &vault.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredVault{}, ErrVaultNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "vaultRepository.GetVault").
			Int64("user_id", userID).
			Msg("failed to scan vault row")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vault, nil
}

func (r *vaultRepository) DeleteVault(ctx context.Context, userID int64) error {
	query, args, err := r.builder.
		Delete(vaultsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "vaultRepository.DeleteVault").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "vaultRepository.DeleteVault").
			Int64("user_id", userID).
			Msg("failed to delete vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}
