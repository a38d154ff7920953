package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings of the vault client.
type ClientApp struct {
	// Version is the application version reported at startup.
	Version string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientVault holds the settings of the key management core.
type ClientVault struct {
	// UserID identifies the vault in the stores.
	UserID int64
	// AppToken keys the outer vault file wrap.
	AppToken string
	// KeyTTL is the master key cache expiry.
	KeyTTL time.Duration
	// JobCacheTTL is the derivation worker's shared result window.
	JobCacheTTL time.Duration
	// KDFIterations is the PBKDF2 round count.
	KDFIterations int
	// KDFKeySize is the derived key length in bytes.
	KDFKeySize int
	// UseWorker selects the derivation worker over the direct fallback.
	UseWorker bool
	// EncryptFile enables the outer vault file wrap.
	EncryptFile bool
}

// ClientAdapter holds network settings used by the remote store adapter.
type ClientAdapter struct {
	// HTTPAddress is the remote store base address. Empty disables it.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string.
	DSN string
	// Driver is "sqlite3" or "pgx".
	Driver string
}

// ClientFiles contains file vault store settings.
type ClientFiles struct {
	// VaultDir holds one vault file per user.
	VaultDir string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds file store settings, used when DB.DSN is empty.
	Files ClientFiles
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Vault contains key management settings.
	Vault ClientVault
	// Adapter contains the remote store address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Vault: ClientVault{
			UserID:        cfg.Vault.UserID,
			AppToken:      cfg.App.Token,
			KeyTTL:        cfg.Vault.KeyTTL,
			JobCacheTTL:   cfg.Vault.JobCacheTTL,
			KDFIterations: cfg.Vault.KDFIterations,
			KDFKeySize:    cfg.Vault.KDFKeySize,
			UseWorker:     boolValue(cfg.Vault.UseWorker, true),
			EncryptFile:   boolValue(cfg.Vault.EncryptFile, true),
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:    cfg.Storage.DB.DSN,
				Driver: cfg.Storage.DB.Driver,
			},
			Files: ClientFiles{
				VaultDir: cfg.Storage.Files.VaultDir,
			},
		},
	}
}

func boolValue(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
