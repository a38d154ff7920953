package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var vaultColumns = []string{"user_id", "raw", "encrypted", "updated_at"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, driver string) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)

	var classificator ErrorClassificator = NewSQLiteErrorClassifier()
	if driver == config.DriverPostgres {
		classificator = NewPostgresErrorClassifier()
	}

	storeDB := newDB(db, driver, classificator, logger.Nop())
	return NewVaultRepository(storeDB, logger.Nop()), mock
}

func TestVaultRepository_SaveVault(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO vaults \(user_id,raw,encrypted,updated_at\) VALUES \(\?,\?,\?,\?\) ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(int64(7), "blob", true, updated).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveVault(context.Background(), models.StoredVault{UserID: 7, Raw: "blob", Encrypted: true, UpdatedAt: updated})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveVault_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverPostgres)

	mock.ExpectExec(`INSERT INTO vaults \(user_id,raw,encrypted,updated_at\) VALUES \(\$1,\$2,\$3,\$4\)`).
		WithArgs(int64(7), "blob", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveVault(context.Background(), models.StoredVault{UserID: 7, Raw: "blob"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveVault_Invalid(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	err := repo.SaveVault(context.Background(), models.StoredVault{UserID: 0, Raw: "blob"})
	assert.ErrorIs(t, err, ErrInvalidVault)

	err = repo.SaveVault(context.Background(), models.StoredVault{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidVault)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveVault_RetriesBusy(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectExec(`INSERT INTO vaults`).WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec(`INSERT INTO vaults`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveVault(context.Background(), models.StoredVault{UserID: 1, Raw: "blob"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_SaveVault_NonRetryable(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectExec(`INSERT INTO vaults`).WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveVault(context.Background(), models.StoredVault{UserID: 1, Raw: "blob"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetVault(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT user_id, raw, encrypted, updated_at FROM vaults WHERE user_id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(vaultColumns).AddRow(int64(3), "blob", true, updated))

	got, err := repo.GetVault(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.StoredVault{UserID: 3, Raw: "blob", Encrypted: true, UpdatedAt: updated}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetVault_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectQuery(`SELECT user_id, raw, encrypted, updated_at FROM vaults`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(vaultColumns))

	_, err := repo.GetVault(context.Background(), 3)
	assert.ErrorIs(t, err, ErrVaultNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_GetVault_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectQuery(`SELECT user_id`).WillReturnError(errors.New("boom"))

	_, err := repo.GetVault(context.Background(), 3)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_DeleteVault(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectExec(`DELETE FROM vaults WHERE user_id = \?`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteVault(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_DeleteVault_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t, config.DriverSQLite)

	mock.ExpectExec(`DELETE FROM vaults`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteVault(context.Background(), 5), ErrVaultNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.ClientDB{DSN: "x", Driver: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
