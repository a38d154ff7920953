package codec

import "errors"

// Format errors. They signal bad input and are never recovered inside the
// codec.
var (
	// ErrMalformedEntry is returned when an entry line does not split into
	// exactly nine values.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrMalformedFile is returned when a vault blob has fewer than two
	// segments (file secret and device-secret hash).
	ErrMalformedFile = errors.New("malformed vault file")

	// ErrIntegrityCheckFailed is returned when the device-secret hash of a
	// vault file does not match SHA256 of its file secret. Either the blob is
	// still wrapped (wrong token) or the plaintext is corrupt.
	ErrIntegrityCheckFailed = errors.New("vault file integrity check failed")
)
