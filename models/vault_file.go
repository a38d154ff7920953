package models

import "time"

// VaultFile is the parsed form of a persisted vault blob.
//
// First is the per-vault file secret, Last the device-secret hash that must
// equal SHA256(First). Raw always holds the text the file was built from or
// parsed from; when parsing fails Raw is left untouched and Encrypted stays
// true so the caller can retry with another token.
type VaultFile struct {
	First     string
	Last      string
	Entries   []string
	Raw       string
	Encrypted bool
}

// StoredVault is a vault blob as persisted by a storage backend.
type StoredVault struct {
	UserID    int64     `json:"user_id"`
	Raw       string    `json:"raw"`
	Encrypted bool      `json:"encrypted"`
	UpdatedAt time.Time `json:"updated_at"`
}
