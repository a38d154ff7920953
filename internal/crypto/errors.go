package crypto

import "errors"

var (
	// ErrMissingKey is returned by cipher operations invoked without a key.
	ErrMissingKey = errors.New("missing key")

	// ErrCiphertextTooShort is returned when a blob is shorter than the GCM
	// nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed wraps GCM authentication failures.
	ErrDecryptionFailed = errors.New("decryption failed")
)
