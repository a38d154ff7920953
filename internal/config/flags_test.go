package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "http://localhost:8080",
		"-d", "vault.db",
		"-driver", "sqlite3",
		"-f", "/tmp/vaults",
		"-config", "cfg.json",
		"-token", "token",
		"-log-level", "warn",
		"-user", "7",
		"-key-ttl", "1m",
		"-job-cache-ttl", "2s",
		"-iterations", "1000",
		"-key-size", "24",
		"-request-timeout", "15s",
		"-worker=false",
		"-encrypt-file",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/vaults", cfg.Storage.Files.VaultDir)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "token", cfg.App.Token)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, int64(7), cfg.Vault.UserID)
	assert.Equal(t, time.Minute, cfg.Vault.KeyTTL)
	assert.Equal(t, 2*time.Second, cfg.Vault.JobCacheTTL)
	assert.Equal(t, 1000, cfg.Vault.KDFIterations)
	assert.Equal(t, 24, cfg.Vault.KDFKeySize)

	require.NotNil(t, cfg.Vault.UseWorker)
	assert.False(t, *cfg.Vault.UseWorker)
	require.NotNil(t, cfg.Vault.EncryptFile)
	assert.True(t, *cfg.Vault.EncryptFile)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad duration", args: []string{"-key-ttl", "soon"}},
		{name: "bad bool", args: []string{"-worker=maybe"}},
		{name: "bad int", args: []string{"-iterations", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

func TestBoolFlag_String(t *testing.T) {
	var f boolFlag
	assert.Equal(t, "", f.String())

	require.NoError(t, f.Set("true"))
	assert.Equal(t, "true", f.String())
	assert.True(t, f.IsBoolFlag())
}
