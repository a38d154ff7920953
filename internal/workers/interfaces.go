// Package workers provides the background execution contexts of the vault.
//
// The main one is the derivation worker: a goroutine that runs the expensive
// key-stretching function off the caller's goroutine and answers through a
// correlated request/response protocol. A direct implementation with the same
// contract is used when no worker goroutine is wanted.
package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution; implementations spawn their goroutines
// and return.
type Worker interface {
	Run()
}

// DerivationChannel submits derivation jobs and delivers their results.
//
// Every request is validated against the declared functions before it is
// accepted and receives a monotonically increasing correlation id. Results are
// delivered only to the request they belong to; outstanding requests may
// complete in any order.
type DerivationChannel interface {
	// Request submits a job and returns its correlation id together with a
	// channel that receives exactly one result. Returns
	// [ErrUnsupportedFunction] or [ErrMissingParameter] for invalid jobs.
	Request(fn models.FunctionName, params models.Params) (uint64, <-chan models.DerivationResult, error)

	// Do submits a job and waits for its result. If ctx ends first Do returns
	// ctx.Err(); the job itself is not cancelled and runs to completion.
	Do(ctx context.Context, fn models.FunctionName, params models.Params) ([]byte, error)
}
