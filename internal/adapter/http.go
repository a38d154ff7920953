package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpRemoteStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request.
func NewHTTPRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRemoteStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func vaultPath(userID int64) string {
	return "/api/vaults/" + strconv.FormatInt(userID, 10)
}

// Get implements [RemoteStore]. It issues GET /api/vaults/{userID}.
func (h *httpRemoteStore) Get(ctx context.Context, userID int64) (models.StoredVault, error) {
	var vault models.StoredVault

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&vault).
		Get(vaultPath(userID))
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.Get").Int64("user_id", userID).Msg("request failed")
		return models.StoredVault{}, fmt.Errorf("get vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredVault{}, err
	}

	if vault.UserID == 0 {
		vault.UserID = userID
	}
	return vault, nil
}

// Set implements [RemoteStore]. It issues PUT /api/vaults/{userID}.
func (h *httpRemoteStore) Set(ctx context.Context, vault models.StoredVault) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(vault).
		Put(vaultPath(vault.UserID))
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.Set").Int64("user_id", vault.UserID).Msg("request failed")
		return fmt.Errorf("set vault request: %w", err)
	}

	return mapHTTPError(resp)
}

// Push implements [RemoteStore]. It issues POST /api/vaults/{userID}/push.
func (h *httpRemoteStore) Push(ctx context.Context, vault models.StoredVault) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(vault).
		Post(vaultPath(vault.UserID) + "/push")
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.Push").Int64("user_id", vault.UserID).Msg("request failed")
		return fmt.Errorf("push vault request: %w", err)
	}

	return mapHTTPError(resp)
}

// Remove implements [RemoteStore]. It issues DELETE /api/vaults/{userID}.
func (h *httpRemoteStore) Remove(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(vaultPath(userID))
	if err != nil {
		h.logger.Err(err).Str("func", "httpRemoteStore.Remove").Int64("user_id", userID).Msg("request failed")
		return fmt.Errorf("remove vault request: %w", err)
	}

	return mapHTTPError(resp)
}
