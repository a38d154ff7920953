package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

type Services struct {
	KeyCache       MasterKeyCache
	VaultManager   VaultManager
	StorageService VaultStorageService
}

func NewServices(channel workers.DerivationChannel, storages *store.Storages, remote adapter.RemoteStore, cfg *config.ClientConfig, logger *logger.Logger) *Services {
	keys := NewMasterKeyCache(channel, KeyCacheOptions{
		TTL:        cfg.Vault.KeyTTL,
		KeySize:    cfg.Vault.KDFKeySize,
		Iterations: cfg.Vault.KDFIterations,
	}, logger)

	manager := NewVaultManager(keys, crypto.NewFieldCipher(), VaultOptions{
		AppToken:    cfg.Vault.AppToken,
		EncryptFile: cfg.Vault.EncryptFile,
	}, logger)

	return &Services{
		KeyCache:       keys,
		VaultManager:   manager,
		StorageService: NewVaultStorageService(storages.VaultRepository, remote, logger),
	}
}
