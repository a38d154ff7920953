// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultKeySize is the derived key length in bytes (AES-256).
	DefaultKeySize = 32
	// DefaultIterations is the PBKDF2 round count.
	DefaultIterations = 100_000

	fileSecretSize = 32
)

// pbkdf2Deriver is the PBKDF2-HMAC-SHA256 implementation of [KeyDeriver].
type pbkdf2Deriver struct{}

// NewKeyDeriver constructs a PBKDF2-HMAC-SHA256 [KeyDeriver].
func NewKeyDeriver() KeyDeriver {
	return &pbkdf2Deriver{}
}

// DeriveKey implements [KeyDeriver]. The password hash is the PBKDF2
// password, the salt hash is the PBKDF2 salt.
func (d *pbkdf2Deriver) DeriveKey(passwordHash, saltHash string, keySize, iterations int) []byte {
	return pbkdf2.Key([]byte(passwordHash), []byte(saltHash), iterations, keySize, sha256.New)
}

// Hash returns the lowercase hex SHA-256 digest of s. Every link of the
// secret chain (master password hash, device secret, device secret hash) and
// the vault file self-check use this encoding.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// DeviceSecret returns the device secret bound to fileSecret.
func DeviceSecret(fileSecret string) string {
	return Hash(fileSecret)
}

// DeviceSecretHash returns the value that feeds key derivation: two hashing
// steps removed from the stored file secret.
func DeviceSecretHash(fileSecret string) string {
	return Hash(DeviceSecret(fileSecret))
}

// TokenKey turns the application token into a 32-byte cipher key for the
// outer file wrap.
func TokenKey(appToken string) []byte {
	if appToken == "" {
		return nil
	}
	sum := sha256.Sum256([]byte(appToken))
	return sum[:]
}

// GenerateFileSecret reads 32 bytes from the OS CSPRNG and returns them hex
// encoded, so the secret never contains a line separator.
func GenerateFileSecret() (string, error) {
	buf := make([]byte, fileSecretSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate file secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
