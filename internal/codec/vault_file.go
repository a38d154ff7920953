// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultFileCodec builds and parses vault blobs.
//
// Two protection layers are involved and kept apart: the optional outer wrap
// applied here under the application token, and the per-field encryption of
// password and secrets inside each entry line, which this codec never
// touches.
type VaultFileCodec struct {
	cipher crypto.FieldCipher
}

// NewVaultFileCodec constructs a codec that wraps files with c.
func NewVaultFileCodec(c crypto.FieldCipher) *VaultFileCodec {
	return &VaultFileCodec{cipher: c}
}

// Build lays out fileSecret, entryLines and deviceSecret separated by
// [EntrySeparator]. When encrypt is true the text is wrapped under appToken
// and the returned file is marked encrypted.
func (c *VaultFileCodec) Build(fileSecret string, entryLines []string, deviceSecret string, encrypt bool, appToken string) (models.VaultFile, error) {
	segments := make([]string, 0, len(entryLines)+2)
	segments = append(segments, fileSecret)
	segments = append(segments, entryLines...)
	segments = append(segments, deviceSecret)

	file := models.VaultFile{
		First:   fileSecret,
		Last:    deviceSecret,
		Entries: append([]string(nil), entryLines...),
		Raw:     strings.Join(segments, EntrySeparator),
	}

	if !encrypt {
		return file, nil
	}

	wrapped, err := c.cipher.Encrypt(file.Raw, crypto.TokenKey(appToken))
	if err != nil {
		return models.VaultFile{}, fmt.Errorf("wrap vault file: %w", err)
	}
	file.Raw = wrapped
	file.Encrypted = true

	return file, nil
}

// Parse splits a plaintext blob and verifies that the last segment equals
// SHA256 of the first.
//
// On [ErrMalformedFile] or [ErrIntegrityCheckFailed] the returned file holds
// raw unchanged and is marked encrypted, so the caller can retry with a
// different token or give up.
func (c *VaultFileCodec) Parse(raw string) (models.VaultFile, error) {
	failed := models.VaultFile{Raw: raw, Encrypted: true}

	segments := strings.Split(raw, EntrySeparator)
	if len(segments) < 2 {
		return failed, fmt.Errorf("%w: got %d segments", ErrMalformedFile, len(segments))
	}

	first, last := segments[0], segments[len(segments)-1]
	if last != crypto.DeviceSecret(first) {
		return failed, ErrIntegrityCheckFailed
	}

	var entries []string
	if len(segments) > 2 {
		entries = append(entries, segments[1:len(segments)-1]...)
	}

	return models.VaultFile{
		First:   first,
		Last:    last,
		Entries: entries,
		Raw:     raw,
	}, nil
}

// DecryptAndParse removes the outer wrap with appToken and parses the result.
// Any failure returns a file holding the original wrapped bytes.
func (c *VaultFileCodec) DecryptAndParse(raw, appToken string) (models.VaultFile, error) {
	failed := models.VaultFile{Raw: raw, Encrypted: true}

	plain, err := c.cipher.Decrypt(raw, crypto.TokenKey(appToken))
	if err != nil {
		return failed, fmt.Errorf("unwrap vault file: %w", err)
	}

	file, err := c.Parse(plain)
	if err != nil {
		return failed, err
	}
	return file, nil
}
