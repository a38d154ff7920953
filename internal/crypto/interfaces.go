// Package crypto holds the symmetric primitives of the vault: the field
// cipher shared by per-field encryption and the outer file wrap, the PBKDF2
// key stretching used by the derivation worker, and the hash chain that links
// a vault's file secret to its device secret.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts and decrypts individual values.
//
// The same cipher protects entry fields (keyed by the derived master key) and
// wraps whole vault files (keyed by the application token), so both layers
// share one on-disk format: base64(nonce ‖ AES-GCM ciphertext).
type FieldCipher interface {
	// Encrypt seals plaintext under key. Returns [ErrMissingKey] if key is
	// empty.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt opens a value produced by Encrypt. Returns [ErrMissingKey] if
	// key is empty and [ErrDecryptionFailed] if authentication fails, which
	// almost always means the wrong key.
	Decrypt(ciphertext string, key []byte) (string, error)
}

// KeyDeriver stretches a password hash and a salt hash into key material.
type KeyDeriver interface {
	// DeriveKey returns keySize bytes derived with the given number of
	// iterations. Equal inputs always produce equal output.
	DeriveKey(passwordHash, saltHash string, keySize, iterations int) []byte
}
