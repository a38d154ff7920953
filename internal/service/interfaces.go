// Package service holds the vault's orchestration layer: the master key
// cache, the vault manager that owns the entry collection, and the storage
// service that persists vault files locally and remotely.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterKeyCache owns the single derived key of a vault session.
//
// The cache is either empty ([models.KeyStateNoKey]) or holds one key
// ([models.KeyStateCached]).
// A derived key expires after the configured TTL unless RefreshTimeout is
// called; Clear drops it immediately.
type MasterKeyCache interface {
	// SetMasterPassword stores the hash of password. Any cached key is
	// dropped.
	SetMasterPassword(password string)

	// MatchesMasterPassword reports whether password is the one currently
	// set. It is false when no master password is set.
	MatchesMasterPassword(password string) bool

	// SetDeviceSecretHash stores the hash that salts derivation. Any cached
	// key is dropped.
	SetDeviceSecretHash(hash string)

	// GetOrDerive returns the cached key, or derives one through the
	// derivation channel. Returns an error satisfying
	// [IsCredentialsRequired] when the master password or device secret is
	// missing.
	GetOrDerive(ctx context.Context) ([]byte, error)

	// RefreshTimeout restarts the expiry timer of a cached key without
	// re-deriving. Returns false if no key is cached.
	RefreshTimeout() bool

	// Clear drops the cached key.
	Clear()

	// State reports whether a key is cached.
	State() models.KeyState
}

// VaultManager owns the credential entries of one vault session and applies
// field encryption to them.
//
// Only password and secrets are encrypted. Operations that touch nothing but
// plaintext fields never trigger key derivation.
//
// Tags are not required to be unique. AddEntry, ImportEntries and
// LoadVaultFile keep duplicates as they are, and lookups by tag (Entry,
// EditEntry, DeleteEntry, DecryptEntry) resolve to the first match. Later
// duplicates are reachable through Entries and get numbered names such as
// "tag (2)" in ExportEntries and BuildVaultFile.
type VaultManager interface {
	// NewVault starts an empty vault with a fresh file secret.
	NewVault() error

	// LoadVaultFile parses raw, unwrapping it first when encrypted is set,
	// adopts its file secret and replaces the entries with its entries. On
	// failure the returned file still holds raw unchanged.
	LoadVaultFile(raw string, encrypted bool) (models.VaultFile, error)

	// SetMasterPassword forwards password to the key cache.
	SetMasterPassword(password string)

	// AddEntry encrypts the sensitive fields of entry and appends it. An
	// empty tag is replaced with a generated one. Returns the stored entry.
	AddEntry(ctx context.Context, entry models.CredentialEntry) (models.CredentialEntry, error)

	// EditEntry replaces the entry identified by tag with updated, encrypting
	// its sensitive fields. An empty updated.Tag keeps the old tag.
	EditEntry(ctx context.Context, tag string, updated models.CredentialEntry) (models.CredentialEntry, error)

	// DeleteEntry removes the entry identified by tag.
	DeleteEntry(tag string) error

	// Entry returns a copy of the stored (encrypted) entry identified by tag.
	Entry(tag string) (models.CredentialEntry, error)

	// Entries returns copies of all stored entries in insertion order.
	Entries() []models.CredentialEntry

	// DecryptEntry returns a copy of the entry identified by tag with
	// password and secrets decrypted.
	DecryptEntry(ctx context.Context, tag string) (models.CredentialEntry, error)

	// EncryptField encrypts value when field is encrypted and returns it
	// unchanged otherwise. Array fields are encrypted one element per call.
	EncryptField(ctx context.Context, field, value string) (string, error)

	// DecryptField decrypts value when field is encrypted and returns it
	// unchanged otherwise. Array values use the storage array separator and
	// are returned joined with [DisplaySeparator].
	DecryptField(ctx context.Context, field, value string) (string, error)

	// ExportEntries serializes every entry, renaming duplicate tags.
	ExportEntries() []string

	// ImportEntries replaces the entries with the deserialized lines. Either
	// every line is imported or none is.
	ImportEntries(lines []string) error

	// BuildVaultFile lays out the current vault as a file.
	BuildVaultFile() (models.VaultFile, error)

	// ParseVaultFile parses raw without adopting it.
	ParseVaultFile(raw string, encrypted bool) (models.VaultFile, error)

	// DeriveOrGetKey returns the session key, deriving it when needed.
	DeriveOrGetKey(ctx context.Context) ([]byte, error)

	// ClearCachedKey drops the session key.
	ClearCachedKey()

	// RefreshCachedKeyTimeout restarts the expiry of the session key.
	RefreshCachedKeyTimeout() bool

	// RotateFileSecret generates a new file secret and re-encrypts every
	// sensitive field under the key it yields.
	RotateFileSecret(ctx context.Context) error

	// ChangeMasterPassword re-encrypts every sensitive field under the key
	// derived from newPassword. currentPassword must match the password the
	// session was unlocked with, otherwise [ErrWrongMasterPassword] is
	// returned. On any failure the session password and fields are kept.
	ChangeMasterPassword(ctx context.Context, currentPassword, newPassword string) error
}

// VaultStorageService persists vault files for a user in the local store and
// the remote key-value store.
type VaultStorageService interface {
	// Save stores file locally, then replaces the remote copy and pushes a
	// snapshot to the remote history.
	Save(ctx context.Context, userID int64, file models.VaultFile) error

	// Load returns the stored vault of userID, reading the local store first
	// and falling back to the remote store.
	Load(ctx context.Context, userID int64) (models.StoredVault, error)

	// Remove deletes the vault of userID from both stores.
	Remove(ctx context.Context, userID int64) error
}
