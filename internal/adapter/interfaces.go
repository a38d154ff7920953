// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote vault store.
//
// The remote store is an opaque key-value service keyed by user id. [RemoteStore]
// decouples the service layer from the protocol; the package ships an
// HTTP/REST implementation ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the remote copy of a user's vault blob.
type RemoteStore interface {
	// Get returns the vault stored for userID, or [ErrNotFound].
	Get(ctx context.Context, userID int64) (models.StoredVault, error)

	// Set stores vault under vault.UserID without publishing it.
	Set(ctx context.Context, vault models.StoredVault) error

	// Push publishes vault as the current version for the user's other
	// devices.
	Push(ctx context.Context, vault models.StoredVault) error

	// Remove deletes the vault stored for userID.
	Remove(ctx context.Context, userID int64) error
}
