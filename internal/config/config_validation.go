// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Vault.AppToken == "" {
		return fmt.Errorf("%w: empty app token", ErrInvalidAppConfigs)
	}

	if cfg.Vault.KeyTTL <= 0 || cfg.Vault.JobCacheTTL <= 0 || cfg.Vault.KDFIterations <= 0 {
		return ErrInvalidVaultConfigs
	}

	switch cfg.Vault.KDFKeySize {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: key size %d is not an AES key size", ErrInvalidVaultConfigs, cfg.Vault.KDFKeySize)
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.VaultDir == "" {
		return fmt.Errorf("%w: neither DSN nor vault dir is set", ErrInvalidStorageConfigs)
	}

	if strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: in-memory database would lose the vault", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
