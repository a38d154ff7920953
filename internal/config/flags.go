package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// boolFlag records whether a boolean flag was given so an absent flag does
// not override other sources.
type boolFlag struct {
	value *bool
}

func (f *boolFlag) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatBool(*f.value)
}

func (f *boolFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.value = &v
	return nil
}

func (f *boolFlag) IsBoolFlag() bool { return true }

// parseFlags parses the configuration flags in args.
//
// Flags:
//
//	-a remote store address
//	-d database DSN
//	-driver database driver (sqlite3 or pgx)
//	-f vault file directory
//	-c/-config json file path with configs
//	-token outer file wrap token
//	-user user id of the vault
//	-key-ttl master key cache expiry (e.g., "5m")
//	-job-cache-ttl derivation result window (e.g., "3s")
//	-iterations PBKDF2 rounds
//	-key-size derived key length in bytes
//	-worker use the derivation worker goroutine
//	-encrypt-file wrap vault files
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)

	var (
		adapterAddress string
		databaseDSN    string
		databaseDriver string
		vaultDir       string
		jsonConfigPath string
		appToken       string
		logLevel       string
		userID         int64
		keyTTL         time.Duration
		jobCacheTTL    time.Duration
		iterations     int
		keySize        int
		requestTimeout time.Duration
		useWorker      boolFlag
		encryptFile    boolFlag
	)

	fs.StringVar(&adapterAddress, "a", "", "Remote store address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (sqlite3 or pgx)")
	fs.StringVar(&vaultDir, "f", "", "Vault file directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appToken, "token", "", "Outer file wrap token")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Int64Var(&userID, "user", 0, "Vault user id")
	fs.DurationVar(&keyTTL, "key-ttl", 0, "Master key cache expiry (e.g., 5m)")
	fs.DurationVar(&jobCacheTTL, "job-cache-ttl", 0, "Derivation result window (e.g., 3s)")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 rounds")
	fs.IntVar(&keySize, "key-size", 0, "Derived key length in bytes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&useWorker, "worker", "Use the derivation worker goroutine")
	fs.Var(&encryptFile, "encrypt-file", "Wrap vault files with the app token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Token:    appToken,
			LogLevel: logLevel,
		},
		Vault: Vault{
			UserID:        userID,
			KeyTTL:        keyTTL,
			JobCacheTTL:   jobCacheTTL,
			KDFIterations: iterations,
			KDFKeySize:    keySize,
			UseWorker:     useWorker.value,
			EncryptFile:   encryptFile.value,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
			Files: Files{
				VaultDir: vaultDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
