package service

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialsRequired is the parent of the errors a caller recovers
	// from by asking the user for the master password or a vault file.
	ErrCredentialsRequired = errors.New("credentials required")

	ErrMissingMasterPassword = fmt.Errorf("%w: missing master password", ErrCredentialsRequired)
	ErrMissingDeviceSecret   = fmt.Errorf("%w: missing device secret", ErrCredentialsRequired)

	ErrEntryNotFound = errors.New("entry not found")
	ErrNoVault       = errors.New("no vault is open")
	ErrVaultNotFound = errors.New("vault not found")
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrWrongMasterPassword is returned by ChangeMasterPassword when the
	// current password does not match the one the session was unlocked with.
	ErrWrongMasterPassword = errors.New("current master password does not match")
)

// IsCredentialsRequired reports whether err asks for the master password or
// device secret to be provided before retrying.
func IsCredentialsRequired(err error) bool {
	return errors.Is(err, ErrCredentialsRequired)
}
