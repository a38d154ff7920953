package workers

import (
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Workers runs a set of workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Close closes every worker that implements io.Closer and joins their errors.
func (w *Workers) Close() error {
	var errs []error
	for _, worker := range w.workers {
		if c, ok := worker.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

// NewDerivationChannel returns the worker-backed channel when useWorker is
// set, registering it in the returned Workers, and the direct fallback
// otherwise.
func NewDerivationChannel(useWorker bool, deriver crypto.KeyDeriver, cacheTTL time.Duration, log *logger.Logger) (DerivationChannel, *Workers) {
	if !useWorker {
		log.Info().Str("func", "NewDerivationChannel").Msg("using direct derivation fallback")
		return NewDirectChannel(deriver), NewWorkers()
	}

	worker := NewDerivationWorker(deriver, cacheTTL, log)
	return worker, NewWorkers(worker)
}
