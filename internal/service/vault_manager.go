// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// DisplaySeparator joins decrypted array elements for display. It differs
// from the storage array separator.
const DisplaySeparator = ", "

const generatedTagPrefix = "entry-"

// VaultOptions configures the outer wrap of vault files.
type VaultOptions struct {
	AppToken    string
	EncryptFile bool
}

type cipherOp func(value string, key []byte) (string, error)

type vaultManager struct {
	keys   MasterKeyCache
	cipher crypto.FieldCipher
	files  *codec.VaultFileCodec
	opts   VaultOptions
	log    *logger.Logger

	mu         sync.RWMutex
	fileSecret string
	entries    []models.CredentialEntry
	tagCounter int
}

// NewVaultManager constructs a manager with no vault open. Call NewVault or
// LoadVaultFile before persisting.
func NewVaultManager(keys MasterKeyCache, cipher crypto.FieldCipher, opts VaultOptions, log *logger.Logger) VaultManager {
	return &vaultManager{
		keys:   keys,
		cipher: cipher,
		files:  codec.NewVaultFileCodec(cipher),
		opts:   opts,
		log:    log.WithSession(utils.NewUUIDGenerator().Generate()),
	}
}

func (m *vaultManager) NewVault() error {
	fileSecret, err := crypto.GenerateFileSecret()
	if err != nil {
		return fmt.Errorf("new vault: %w", err)
	}

	m.mu.Lock()
	m.fileSecret = fileSecret
	m.entries = nil
	m.tagCounter = 0
	m.mu.Unlock()

	m.keys.SetDeviceSecretHash(crypto.DeviceSecretHash(fileSecret))
	m.log.Info().Str("func", "vaultManager.NewVault").Msg("new vault created")
	return nil
}

func (m *vaultManager) LoadVaultFile(raw string, encrypted bool) (models.VaultFile, error) {
	file, err := m.ParseVaultFile(raw, encrypted)
	if err != nil {
		m.log.Err(err).Str("func", "vaultManager.LoadVaultFile").Bool("encrypted", encrypted).Msg("vault file rejected")
		return file, err
	}

	entries, err := deserializeLines(file.Entries)
	if err != nil {
		return models.VaultFile{Raw: raw, Encrypted: encrypted}, err
	}

	m.mu.Lock()
	m.fileSecret = file.First
	m.tagCounter = 0
	m.entries = m.assignTagsLocked(entries)
	m.mu.Unlock()

	// The last segment is the device secret; one more hash feeds derivation.
	m.keys.SetDeviceSecretHash(crypto.Hash(file.Last))
	m.log.Info().Str("func", "vaultManager.LoadVaultFile").Int("entries", len(entries)).Msg("vault file loaded")

	return file, nil
}

func (m *vaultManager) SetMasterPassword(password string) {
	m.keys.SetMasterPassword(password)
}

func (m *vaultManager) AddEntry(ctx context.Context, entry models.CredentialEntry) (models.CredentialEntry, error) {
	stored, err := m.seal(ctx, entry.Clone())
	if err != nil {
		return models.CredentialEntry{}, fmt.Errorf("add entry: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if stored.Tag == "" {
		stored.Tag = m.nextTagLocked()
	}
	m.entries = append(m.entries, stored)

	return stored.Clone(), nil
}

func (m *vaultManager) EditEntry(ctx context.Context, tag string, updated models.CredentialEntry) (models.CredentialEntry, error) {
	if _, err := m.Entry(tag); err != nil {
		return models.CredentialEntry{}, err
	}

	stored, err := m.seal(ctx, updated.Clone())
	if err != nil {
		return models.CredentialEntry{}, fmt.Errorf("edit entry %q: %w", tag, err)
	}
	if stored.Tag == "" {
		stored.Tag = tag
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(tag)
	if i < 0 {
		return models.CredentialEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, tag)
	}
	m.entries[i] = stored

	return stored.Clone(), nil
}

func (m *vaultManager) DeleteEntry(tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(tag)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, tag)
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return nil
}

func (m *vaultManager) Entry(tag string) (models.CredentialEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexLocked(tag)
	if i < 0 {
		return models.CredentialEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, tag)
	}
	return m.entries[i].Clone(), nil
}

func (m *vaultManager) Entries() []models.CredentialEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.CredentialEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Clone())
	}
	return out
}

func (m *vaultManager) DecryptEntry(ctx context.Context, tag string) (models.CredentialEntry, error) {
	entry, err := m.Entry(tag)
	if err != nil {
		return models.CredentialEntry{}, err
	}
	if !hasSensitive(entry) {
		return entry, nil
	}

	key, err := m.keys.GetOrDerive(ctx)
	if err != nil {
		return models.CredentialEntry{}, err
	}
	defer clear(key)

	plain, err := m.transform(entry, key, m.cipher.Decrypt)
	if err != nil {
		return models.CredentialEntry{}, fmt.Errorf("decrypt entry %q: %w", tag, err)
	}
	return plain, nil
}

func (m *vaultManager) EncryptField(ctx context.Context, field, value string) (string, error) {
	f, err := models.ParseField(field)
	if err != nil {
		return "", err
	}
	if policy, _ := f.Policy(); !policy.Encrypted || value == "" {
		return value, nil
	}

	key, err := m.keys.GetOrDerive(ctx)
	if err != nil {
		return "", err
	}
	defer clear(key)

	ciphertext, err := m.cipher.Encrypt(value, key)
	if err != nil {
		return "", fmt.Errorf("encrypt field %s: %w", f, err)
	}
	return ciphertext, nil
}

func (m *vaultManager) DecryptField(ctx context.Context, field, value string) (string, error) {
	f, err := models.ParseField(field)
	if err != nil {
		return "", err
	}
	policy, _ := f.Policy()
	if !policy.Encrypted || value == "" {
		return value, nil
	}

	key, err := m.keys.GetOrDerive(ctx)
	if err != nil {
		return "", err
	}
	defer clear(key)

	if !policy.IsArray {
		plaintext, err := m.cipher.Decrypt(value, key)
		if err != nil {
			return "", fmt.Errorf("decrypt field %s: %w", f, err)
		}
		return plaintext, nil
	}

	elements := codec.SplitArray(value)
	for i, element := range elements {
		if elements[i], err = m.cipher.Decrypt(element, key); err != nil {
			return "", fmt.Errorf("decrypt field %s[%d]: %w", f, i, err)
		}
	}
	return strings.Join(elements, DisplaySeparator), nil
}

func (m *vaultManager) ExportEntries() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.exportLocked()
}

func (m *vaultManager) ImportEntries(lines []string) error {
	entries, err := deserializeLines(lines)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.tagCounter = 0
	m.entries = m.assignTagsLocked(entries)
	return nil
}

func (m *vaultManager) BuildVaultFile() (models.VaultFile, error) {
	m.mu.RLock()
	fileSecret := m.fileSecret
	lines := m.exportLocked()
	m.mu.RUnlock()

	if fileSecret == "" {
		return models.VaultFile{}, ErrNoVault
	}

	return m.files.Build(fileSecret, lines, crypto.DeviceSecret(fileSecret), m.opts.EncryptFile, m.opts.AppToken)
}

func (m *vaultManager) ParseVaultFile(raw string, encrypted bool) (models.VaultFile, error) {
	if encrypted {
		return m.files.DecryptAndParse(raw, m.opts.AppToken)
	}
	return m.files.Parse(raw)
}

func (m *vaultManager) DeriveOrGetKey(ctx context.Context) ([]byte, error) {
	return m.keys.GetOrDerive(ctx)
}

func (m *vaultManager) ClearCachedKey() {
	m.keys.Clear()
}

func (m *vaultManager) RefreshCachedKeyTimeout() bool {
	return m.keys.RefreshTimeout()
}

// RotateFileSecret holds the vault lock for the whole rotation, so other
// operations wait for both derivations.
func (m *vaultManager) RotateFileSecret(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fileSecret == "" {
		return ErrNoVault
	}

	plain, err := m.openAllLocked(ctx)
	if err != nil {
		return fmt.Errorf("rotate file secret: %w", err)
	}

	newSecret, err := crypto.GenerateFileSecret()
	if err != nil {
		return fmt.Errorf("rotate file secret: %w", err)
	}

	m.keys.SetDeviceSecretHash(crypto.DeviceSecretHash(newSecret))
	sealed, err := m.sealAll(ctx, plain)
	if err != nil {
		m.keys.SetDeviceSecretHash(crypto.DeviceSecretHash(m.fileSecret))
		return fmt.Errorf("rotate file secret: %w", err)
	}

	m.fileSecret = newSecret
	m.entries = sealed
	m.log.Info().Str("func", "vaultManager.RotateFileSecret").Int("entries", len(sealed)).Msg("file secret rotated")

	return nil
}

func (m *vaultManager) ChangeMasterPassword(ctx context.Context, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrMissingMasterPassword
	}

	// The session key stays untouched until the current password is
	// confirmed, so a mistyped one cannot re-key the vault.
	if !m.keys.MatchesMasterPassword(currentPassword) {
		return ErrWrongMasterPassword
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	plain, err := m.openAllLocked(ctx)
	if err != nil {
		return fmt.Errorf("change master password: %w", err)
	}

	m.keys.SetMasterPassword(newPassword)
	sealed, err := m.sealAll(ctx, plain)
	if err != nil {
		m.keys.SetMasterPassword(currentPassword)
		return fmt.Errorf("change master password: %w", err)
	}

	m.entries = sealed
	m.log.Info().Str("func", "vaultManager.ChangeMasterPassword").Msg("master password changed")

	return nil
}

// seal encrypts the sensitive fields of e. Entries without sensitive values
// are returned as is, without a key.
func (m *vaultManager) seal(ctx context.Context, e models.CredentialEntry) (models.CredentialEntry, error) {
	if !hasSensitive(e) {
		return e, nil
	}

	key, err := m.keys.GetOrDerive(ctx)
	if err != nil {
		return models.CredentialEntry{}, err
	}
	defer clear(key)

	return m.transform(e, key, m.cipher.Encrypt)
}

func (m *vaultManager) sealAll(ctx context.Context, entries []models.CredentialEntry) ([]models.CredentialEntry, error) {
	out := make([]models.CredentialEntry, 0, len(entries))
	for _, e := range entries {
		sealed, err := m.seal(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("encrypt entry %q: %w", e.Tag, err)
		}
		out = append(out, sealed)
	}
	return out, nil
}

// openAllLocked returns decrypted copies of every entry.
func (m *vaultManager) openAllLocked(ctx context.Context) ([]models.CredentialEntry, error) {
	out := make([]models.CredentialEntry, 0, len(m.entries))
	var key []byte
	defer func() { clear(key) }()

	for _, e := range m.entries {
		e = e.Clone()
		if !hasSensitive(e) {
			out = append(out, e)
			continue
		}
		if key == nil {
			k, err := m.keys.GetOrDerive(ctx)
			if err != nil {
				return nil, err
			}
			key = k
		}
		plain, err := m.transform(e, key, m.cipher.Decrypt)
		if err != nil {
			return nil, fmt.Errorf("decrypt entry %q: %w", e.Tag, err)
		}
		out = append(out, plain)
	}
	return out, nil
}

// transform applies op to every non-empty value of every encrypted field of
// e. Array fields are processed element-wise.
func (m *vaultManager) transform(e models.CredentialEntry, key []byte, op cipherOp) (models.CredentialEntry, error) {
	for _, f := range models.EntryFields {
		policy, _ := f.Policy()
		if !policy.Encrypted {
			continue
		}

		if !policy.IsArray {
			v := e.Scalar(f)
			if v == "" {
				continue
			}
			out, err := op(v, key)
			if err != nil {
				return models.CredentialEntry{}, fmt.Errorf("field %s: %w", f, err)
			}
			e.SetScalar(f, out)
			continue
		}

		values := e.List(f)
		if len(values) == 0 {
			continue
		}
		out := make([]string, len(values))
		for i, v := range values {
			var err error
			if out[i], err = op(v, key); err != nil {
				return models.CredentialEntry{}, fmt.Errorf("field %s[%d]: %w", f, i, err)
			}
		}
		e.SetList(f, out)
	}
	return e, nil
}

// exportLocked serializes every entry. A tag already used by an earlier entry
// becomes "tag (2)", "tag (3)" and so on.
func (m *vaultManager) exportLocked() []string {
	used := make(map[string]bool, len(m.entries))
	for _, e := range m.entries {
		used[e.Tag] = true
	}

	seen := make(map[string]bool, len(m.entries))
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if seen[e.Tag] {
			e = e.Clone()
			e.Tag = uniqueTag(e.Tag, used)
			used[e.Tag] = true
		}
		seen[e.Tag] = true
		lines = append(lines, codec.SerializeEntry(e))
	}
	return lines
}

func (m *vaultManager) assignTagsLocked(entries []models.CredentialEntry) []models.CredentialEntry {
	m.entries = entries
	for i := range entries {
		if entries[i].Tag == "" {
			entries[i].Tag = m.nextTagLocked()
		}
	}
	return entries
}

func (m *vaultManager) nextTagLocked() string {
	for {
		m.tagCounter++
		tag := generatedTagPrefix + strconv.Itoa(m.tagCounter)
		if m.indexLocked(tag) < 0 {
			return tag
		}
	}
}

func (m *vaultManager) indexLocked(tag string) int {
	return slices.IndexFunc(m.entries, func(e models.CredentialEntry) bool {
		return e.Tag == tag
	})
}

func uniqueTag(tag string, used map[string]bool) string {
	for n := 2; ; n++ {
		candidate := tag + " (" + strconv.Itoa(n) + ")"
		if !used[candidate] {
			return candidate
		}
	}
}

func hasSensitive(e models.CredentialEntry) bool {
	for _, f := range models.EntryFields {
		policy, _ := f.Policy()
		if !policy.Encrypted {
			continue
		}
		if policy.IsArray && len(e.List(f)) > 0 || !policy.IsArray && e.Scalar(f) != "" {
			return true
		}
	}
	return false
}

func deserializeLines(lines []string) ([]models.CredentialEntry, error) {
	entries := make([]models.CredentialEntry, 0, len(lines))
	for i, line := range lines {
		e, err := codec.DeserializeEntry(line)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
