// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// DefaultJobCacheTTL is how long computed results stay reusable after the
// most recent completion.
const DefaultJobCacheTTL = 3 * time.Second

const jobQueueSize = 16

// DerivationWorker is the goroutine-backed [DerivationChannel].
//
// Two goroutines cooperate without sharing memory:
//   - the compute loop owns the job-result cache and its expiry timer. A job
//     whose function and parameters match a cached result is answered from
//     the cache; otherwise it is computed. Every computed job restarts one
//     shared expiry window, and when the window elapses the whole cache is
//     dropped.
//   - the dispatcher reads completions and hands each one to the pending
//     request with the same correlation id, removing it from the registry.
//     Completions with no pending request are discarded.
type DerivationWorker struct {
	functions functionTable
	cacheTTL  time.Duration
	logger    *logger.Logger

	nextID   atomic.Uint64
	computed atomic.Int64

	jobs        chan models.DerivationJob
	completions chan models.DerivationResult

	mu      sync.Mutex
	pending map[uint64]chan models.DerivationResult
	closed  bool

	runOnce   sync.Once
	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewDerivationWorker constructs a worker running the functions backed by
// deriver. A non-positive cacheTTL falls back to [DefaultJobCacheTTL]. The
// worker's goroutines start on Run or on the first request.
func NewDerivationWorker(deriver crypto.KeyDeriver, cacheTTL time.Duration, log *logger.Logger) *DerivationWorker {
	if cacheTTL <= 0 {
		cacheTTL = DefaultJobCacheTTL
	}
	return &DerivationWorker{
		functions:   newFunctionTable(deriver),
		cacheTTL:    cacheTTL,
		logger:      log,
		jobs:        make(chan models.DerivationJob, jobQueueSize),
		completions: make(chan models.DerivationResult, jobQueueSize),
		pending:     make(map[uint64]chan models.DerivationResult),
		done:        make(chan struct{}),
	}
}

// Run implements [Worker]. It is safe to call more than once.
func (w *DerivationWorker) Run() {
	w.runOnce.Do(func() {
		w.wg.Add(2)
		go w.computeLoop()
		go w.dispatchLoop()
		w.logger.Debug().Str("func", "DerivationWorker.Run").Msg("derivation worker started")
	})
}

// Request implements [DerivationChannel].
func (w *DerivationWorker) Request(fn models.FunctionName, params models.Params) (uint64, <-chan models.DerivationResult, error) {
	if _, err := w.functions.validate(fn, params); err != nil {
		return 0, nil, err
	}
	w.Run()

	id := w.nextID.Add(1)
	result := make(chan models.DerivationResult, 1)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return 0, nil, ErrChannelClosed
	}
	w.pending[id] = result
	w.mu.Unlock()

	job := models.DerivationJob{ID: id, Function: fn, Params: cloneParams(params)}
	select {
	case w.jobs <- job:
	case <-w.done:
		w.mu.Lock()
		delete(w.pending, id)
		w.mu.Unlock()
		return 0, nil, ErrChannelClosed
	}

	return id, result, nil
}

// Do implements [DerivationChannel].
func (w *DerivationWorker) Do(ctx context.Context, fn models.FunctionName, params models.Params) ([]byte, error) {
	id, result, err := w.Request(fn, params)
	if err != nil {
		return nil, err
	}

	select {
	case res := <-result:
		return res.Value, res.Err
	case <-ctx.Done():
		w.logger.Debug().
			Str("func", "DerivationWorker.Do").
			Uint64("job_id", id).
			Msg("caller stopped waiting, job keeps running")
		return nil, ctx.Err()
	}
}

// Computed reports how many jobs were actually computed rather than answered
// from the cache.
func (w *DerivationWorker) Computed() int64 {
	return w.computed.Load()
}

// Close stops the worker goroutines and fails every pending request with
// [ErrChannelClosed]. It blocks until both goroutines exit.
func (w *DerivationWorker) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		close(w.done)
		w.wg.Wait()

		w.mu.Lock()
		for id, ch := range w.pending {
			ch <- models.DerivationResult{ID: id, Err: ErrChannelClosed}
			delete(w.pending, id)
		}
		w.mu.Unlock()

		w.logger.Debug().Str("func", "DerivationWorker.Close").Msg("derivation worker stopped")
	})
	return nil
}

func (w *DerivationWorker) computeLoop() {
	defer w.wg.Done()

	cache := make(map[string][]byte)
	expiry := time.NewTimer(w.cacheTTL)
	expiry.Stop()
	defer expiry.Stop()
	var expired <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case <-expired:
			clear(cache)
			expired = nil
			w.logger.Debug().Str("func", "DerivationWorker.computeLoop").Msg("job cache cleared")

		case job := <-w.jobs:
			res := models.DerivationResult{ID: job.ID}

			key, keyErr := jobKey(job.Function, job.Params)
			if cached, ok := cache[key]; keyErr == nil && ok {
				res.Value = bytes.Clone(cached)
			} else {
				res.Value, res.Err = w.functions.run(job.Function, job.Params)
				w.computed.Add(1)
				if res.Err == nil && keyErr == nil {
					cache[key] = bytes.Clone(res.Value)
				}
				if res.Err != nil {
					res.Err = fmt.Errorf("job %d (%s): %w", job.ID, job.Function, res.Err)
				}
				expiry.Reset(w.cacheTTL)
				expired = expiry.C
			}

			select {
			case w.completions <- res:
			case <-w.done:
				return
			}
		}
	}
}

func (w *DerivationWorker) dispatchLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case res := <-w.completions:
			w.mu.Lock()
			ch, ok := w.pending[res.ID]
			if ok {
				delete(w.pending, res.ID)
			}
			w.mu.Unlock()

			if !ok {
				w.logger.Debug().
					Str("func", "DerivationWorker.dispatchLoop").
					Uint64("job_id", res.ID).
					Msg("not my result, discarded")
				continue
			}
			ch <- res
		}
	}
}
