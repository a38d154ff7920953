package workers

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// directChannel is the [DerivationChannel] used when no worker goroutine is
// available. It validates like the worker but computes on the caller's
// goroutine and keeps no result cache.
type directChannel struct {
	functions functionTable
	nextID    atomic.Uint64
}

// NewDirectChannel constructs the synchronous fallback [DerivationChannel].
func NewDirectChannel(deriver crypto.KeyDeriver) DerivationChannel {
	return &directChannel{functions: newFunctionTable(deriver)}
}

// Request implements [DerivationChannel]. The job runs before Request
// returns; the result is already waiting in the returned channel.
func (d *directChannel) Request(fn models.FunctionName, params models.Params) (uint64, <-chan models.DerivationResult, error) {
	f, err := d.functions.validate(fn, params)
	if err != nil {
		return 0, nil, err
	}

	id := d.nextID.Add(1)
	value, err := f.run(params)

	result := make(chan models.DerivationResult, 1)
	result <- models.DerivationResult{ID: id, Value: value, Err: err}
	return id, result, nil
}

// Do implements [DerivationChannel].
func (d *directChannel) Do(ctx context.Context, fn models.FunctionName, params models.Params) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, result, err := d.Request(fn, params)
	if err != nil {
		return nil, err
	}
	res := <-result
	return res.Value, res.Err
}
