package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Token    string `json:"token"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Vault struct {
		UserID        int64    `json:"user_id"`
		KeyTTL        Duration `json:"key_ttl"`
		JobCacheTTL   Duration `json:"job_cache_ttl"`
		KDFIterations int      `json:"kdf_iterations"`
		KDFKeySize    int      `json:"kdf_key_size"`
		UseWorker     *bool    `json:"use_worker"`
		EncryptFile   *bool    `json:"encrypt_file"`
	} `json:"vault,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`

		Files struct {
			VaultDir string `json:"vault_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:    jsonCfg.App.Token,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Vault: Vault{
			UserID:        jsonCfg.Vault.UserID,
			KeyTTL:        time.Duration(jsonCfg.Vault.KeyTTL),
			JobCacheTTL:   time.Duration(jsonCfg.Vault.JobCacheTTL),
			KDFIterations: jsonCfg.Vault.KDFIterations,
			KDFKeySize:    jsonCfg.Vault.KDFKeySize,
			UseWorker:     jsonCfg.Vault.UseWorker,
			EncryptFile:   jsonCfg.Vault.EncryptFile,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
			Files: Files{
				VaultDir: jsonCfg.Storage.Files.VaultDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
