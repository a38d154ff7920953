// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// DefaultKeyTTL is how long a derived key stays cached without a refresh.
const DefaultKeyTTL = 5 * time.Minute

// KeyCacheOptions tunes derivation and expiry. Zero values fall back to the
// defaults.
type KeyCacheOptions struct {
	TTL        time.Duration
	KeySize    int
	Iterations int
}

func (o KeyCacheOptions) withDefaults() KeyCacheOptions {
	if o.TTL <= 0 {
		o.TTL = DefaultKeyTTL
	}
	if o.KeySize <= 0 {
		o.KeySize = crypto.DefaultKeySize
	}
	if o.Iterations <= 0 {
		o.Iterations = crypto.DefaultIterations
	}
	return o
}

type masterKeyCache struct {
	channel workers.DerivationChannel
	opts    KeyCacheOptions
	log     *logger.Logger
	group   singleflight.Group

	mu               sync.Mutex
	passwordHash     string
	deviceSecretHash string
	key              []byte
	timer            *time.Timer
	// epoch changes on every transition; a derivation or timer started in an
	// older epoch must not touch the current state.
	epoch uint64
}

// NewMasterKeyCache constructs an empty cache that derives through channel.
func NewMasterKeyCache(channel workers.DerivationChannel, opts KeyCacheOptions, log *logger.Logger) MasterKeyCache {
	return &masterKeyCache{
		channel: channel,
		opts:    opts.withDefaults(),
		log:     log,
	}
}

func (c *masterKeyCache) SetMasterPassword(password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.passwordHash = ""
	if password != "" {
		c.passwordHash = crypto.Hash(password)
	}
	c.dropLocked()
}

func (c *masterKeyCache) MatchesMasterPassword(password string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.passwordHash == "" || password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.passwordHash), []byte(crypto.Hash(password))) == 1
}

func (c *masterKeyCache) SetDeviceSecretHash(hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deviceSecretHash = hash
	c.dropLocked()
}

func (c *masterKeyCache) GetOrDerive(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	switch {
	case c.passwordHash == "":
		c.mu.Unlock()
		return nil, ErrMissingMasterPassword
	case c.deviceSecretHash == "":
		c.mu.Unlock()
		return nil, ErrMissingDeviceSecret
	case c.key != nil:
		key := append([]byte(nil), c.key...)
		c.mu.Unlock()
		return key, nil
	}

	epoch := c.epoch
	params := models.Params{
		models.ParamPassword:   c.passwordHash,
		models.ParamSalt:       c.deviceSecretHash,
		models.ParamKeySize:    c.opts.KeySize,
		models.ParamIterations: c.opts.Iterations,
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		// A derivation that finished after this caller read the state has
		// already filled the cache.
		if key := c.cached(); key != nil {
			return key, nil
		}
		key, err := c.channel.Do(ctx, models.FunctionKDF, params)
		if err != nil {
			return nil, err
		}
		c.store(epoch, key)
		return key, nil
	})
	if err != nil {
		c.log.Err(err).Str("func", "masterKeyCache.GetOrDerive").Msg("key derivation failed")
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	return append([]byte(nil), v.([]byte)...), nil
}

func (c *masterKeyCache) cached() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == nil {
		return nil
	}
	return append([]byte(nil), c.key...)
}

// store caches key unless the state moved on while it was being derived.
func (c *masterKeyCache) store(epoch uint64, key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		c.log.Debug().Str("func", "masterKeyCache.store").Msg("discarding key derived for a previous state")
		return
	}

	c.key = append([]byte(nil), key...)
	c.restartTimerLocked()
	c.log.Debug().Str("func", "masterKeyCache.store").Dur("ttl", c.opts.TTL).Msg("master key cached")
}

func (c *masterKeyCache) RefreshTimeout() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == nil {
		return false
	}
	c.restartTimerLocked()
	return true
}

func (c *masterKeyCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropLocked()
}

func (c *masterKeyCache) State() models.KeyState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key == nil {
		return models.KeyStateNoKey
	}
	return models.KeyStateCached
}

func (c *masterKeyCache) restartTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.epoch++
	epoch := c.epoch
	c.timer = time.AfterFunc(c.opts.TTL, func() { c.expire(epoch) })
}

func (c *masterKeyCache) expire(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch {
		return
	}
	c.dropLocked()
	c.log.Debug().Str("func", "masterKeyCache.expire").Msg("master key expired")
}

func (c *masterKeyCache) dropLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	clear(c.key)
	c.key = nil
	c.epoch++
}
