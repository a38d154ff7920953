// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultAppToken is the fixed application token that keys the outer vault
// file wrap. It is not a user secret.
const DefaultAppToken = "go-pass-vault/outer-wrap/v1"

// Supported local database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the outer wrap token, the
	// version and the log level.
	App App `envPrefix:"APP_"`

	// Vault holds key derivation and caching settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds configuration for the local persistence backends: the
	// relational database and the file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote key-value store settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token keys the outer encryption layer of vault files.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Vault holds master key derivation and caching settings.
type Vault struct {
	// UserID identifies the vault in the local and remote stores.
	// Env: VAULT_USER_ID
	UserID int64 `env:"USER_ID"`

	// KeyTTL is how long a derived master key stays cached without a
	// refresh.
	// Env: VAULT_KEY_TTL
	KeyTTL time.Duration `env:"KEY_TTL"`

	// JobCacheTTL is the shared window after each completed derivation job
	// during which identical jobs are answered from the worker's cache.
	// Env: VAULT_JOB_CACHE_TTL
	JobCacheTTL time.Duration `env:"JOB_CACHE_TTL"`

	// KDFIterations is the PBKDF2 round count.
	// Env: VAULT_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// KDFKeySize is the derived key length in bytes.
	// Env: VAULT_KDF_KEY_SIZE
	KDFKeySize int `env:"KDF_KEY_SIZE"`

	// UseWorker selects the derivation worker goroutine over the direct
	// fallback.
	// Env: VAULT_USE_WORKER
	UseWorker *bool `env:"USE_WORKER"`

	// EncryptFile enables the outer wrap of vault files.
	// Env: VAULT_ENCRYPT_FILE
	EncryptFile *bool `env:"ENCRYPT_FILE"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string: a file path for SQLite or a
	// "postgres://" URL for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is the database/sql driver name, "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Files holds file-system settings for the file vault store.
type Files struct {
	// VaultDir is the directory that holds one vault file per user. It is
	// used when no database DSN is configured.
	// Env: STORAGE_FILES_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// Adapter holds the remote key-value store settings.
type Adapter struct {
	// HTTPAddress is the base address of the remote store
	// (e.g. "http://localhost:8080"). Empty disables the remote store.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaults returns the configuration used for every field no other source
// sets.
func defaults() *StructuredConfig {
	useWorker, encryptFile := true, true
	return &StructuredConfig{
		App: App{
			Token:    DefaultAppToken,
			LogLevel: "info",
		},
		Vault: Vault{
			KeyTTL:        5 * time.Minute,
			JobCacheTTL:   3 * time.Second,
			KDFIterations: 100_000,
			KDFKeySize:    32,
			UseWorker:     &useWorker,
			EncryptFile:   &encryptFile,
		},
		Storage: Storage{
			DB: DB{Driver: DriverSQLite},
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
