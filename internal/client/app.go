package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

// ErrEmptyMasterPassword is returned when no master password was entered.
var ErrEmptyMasterPassword = errors.New("master password is empty")

type App struct {
	services *service.Services
	channel  workers.DerivationChannel
	workers  *workers.Workers
	userID   int64

	in  *bufio.Reader
	out io.Writer
	log *logger.Logger
}

// NewApp constructs the runtime. in supplies the master password and out
// receives the entry listing.
func NewApp(services *service.Services, channel workers.DerivationChannel, ws *workers.Workers, userID int64, in io.Reader, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil || channel == nil || ws == nil {
		return nil, errors.New("client app: services and workers are required")
	}
	if userID <= 0 {
		return nil, service.ErrInvalidUserID
	}

	return &App{
		services: services,
		channel:  channel,
		workers:  ws,
		userID:   userID,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.workers.Run()

	if err := workers.Ping(ctx, a.channel); err != nil {
		return fmt.Errorf("derivation worker is not responding: %w", err)
	}

	created, err := a.open(ctx)
	if err != nil {
		return err
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}

	manager := a.services.VaultManager
	manager.SetMasterPassword(password)
	defer manager.ClearCachedKey()

	if err = a.verify(ctx); err != nil {
		return err
	}

	a.list()

	if created {
		file, buildErr := manager.BuildVaultFile()
		if buildErr != nil {
			return fmt.Errorf("build vault file: %w", buildErr)
		}
		if err = a.services.StorageService.Save(ctx, a.userID, file); err != nil {
			return fmt.Errorf("save new vault: %w", err)
		}
		a.log.Info().Str("func", "App.Run").Int64("user_id", a.userID).Msg("new vault saved")
	}

	return nil
}

// open loads the stored vault of the user, or starts a new one when none
// exists. It reports whether a new vault was created.
func (a *App) open(ctx context.Context) (bool, error) {
	manager := a.services.VaultManager

	stored, err := a.services.StorageService.Load(ctx, a.userID)
	if errors.Is(err, service.ErrVaultNotFound) {
		if err = manager.NewVault(); err != nil {
			return false, err
		}
		fmt.Fprintln(a.out, "No vault found, a new one was created.")
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("load vault: %w", err)
	}

	if _, err = manager.LoadVaultFile(stored.Raw, stored.Encrypted); err != nil {
		return false, fmt.Errorf("open vault: %w", err)
	}
	return false, nil
}

func (a *App) readPassword() (string, error) {
	fmt.Fprint(a.out, "Master password: ")

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read master password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", ErrEmptyMasterPassword
	}
	return password, nil
}

// verify checks the master password by decrypting the first entry that
// carries encrypted fields.
func (a *App) verify(ctx context.Context) error {
	manager := a.services.VaultManager

	for _, entry := range manager.Entries() {
		if entry.Password == "" && len(entry.Secrets) == 0 {
			continue
		}
		if _, err := manager.DecryptEntry(ctx, entry.Tag); err != nil {
			return fmt.Errorf("unlock vault: %w", err)
		}
		return nil
	}

	_, err := manager.DeriveOrGetKey(ctx)
	return err
}

func (a *App) list() {
	entries := a.services.VaultManager.Entries()
	fmt.Fprintf(a.out, "%d entries\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(a.out, "  %s\t%s\t%s\n", e.Tag, e.Website, e.Username)
	}
}

func (a *App) Close() error {
	return a.workers.Close()
}
