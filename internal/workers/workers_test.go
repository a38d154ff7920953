// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the ids of the fake workers in the order they act.
type recorder struct {
	runs   []string
	closes []string
}

// fakeWorker only runs.
type fakeWorker struct {
	id  string
	rec *recorder
}

func (f *fakeWorker) Run() { f.rec.runs = append(f.rec.runs, f.id) }

// fakeCloser runs and closes, failing Close with err when set.
type fakeCloser struct {
	fakeWorker
	err error
}

func (f *fakeCloser) Close() error {
	f.rec.closes = append(f.rec.closes, f.id)
	return f.err
}

var (
	errFirst  = errors.New("first close failed")
	errSecond = errors.New("second close failed")
)

func TestWorkers(t *testing.T) {
	tests := []struct {
		name       string
		build      func(rec *recorder) *Workers
		runs       int
		wantRuns   []string
		wantCloses []string
		wantErrs   []error
	}{
		{
			name:  "nil aggregate",
			build: func(*recorder) *Workers { return &Workers{} },
			runs:  1,
		},
		{
			name:  "empty aggregate",
			build: func(*recorder) *Workers { return NewWorkers() },
			runs:  2,
		},
		{
			name: "runs in order once per call",
			build: func(rec *recorder) *Workers {
				return NewWorkers(&fakeWorker{"a", rec}, &fakeWorker{"b", rec}, &fakeWorker{"c", rec})
			},
			runs:     1,
			wantRuns: []string{"a", "b", "c"},
		},
		{
			name: "repeated runs reach every worker each time",
			build: func(rec *recorder) *Workers {
				return NewWorkers(&fakeWorker{"a", rec}, &fakeCloser{fakeWorker: fakeWorker{"b", rec}})
			},
			runs:       3,
			wantRuns:   []string{"a", "b", "a", "b", "a", "b"},
			wantCloses: []string{"b"},
		},
		{
			name: "close reaches only closers",
			build: func(rec *recorder) *Workers {
				return NewWorkers(
					&fakeCloser{fakeWorker: fakeWorker{"a", rec}},
					&fakeWorker{"b", rec},
					&fakeCloser{fakeWorker: fakeWorker{"c", rec}},
				)
			},
			wantCloses: []string{"a", "c"},
		},
		{
			name: "close errors are joined and every closer is still closed",
			build: func(rec *recorder) *Workers {
				return NewWorkers(
					&fakeCloser{fakeWorker: fakeWorker{"a", rec}, err: errFirst},
					&fakeCloser{fakeWorker: fakeWorker{"b", rec}},
					&fakeCloser{fakeWorker: fakeWorker{"c", rec}, err: errSecond},
				)
			},
			wantCloses: []string{"a", "b", "c"},
			wantErrs:   []error{errFirst, errSecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			ws := tt.build(rec)

			for range tt.runs {
				ws.Run()
			}
			err := ws.Close()

			assert.Equal(t, tt.wantRuns, rec.runs)
			assert.Equal(t, tt.wantCloses, rec.closes)
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestNewDerivationChannel(t *testing.T) {
	tests := []struct {
		name      string
		useWorker bool
		check     func(t *testing.T, ch DerivationChannel)
	}{
		{
			name:      "worker-backed with default cache window",
			useWorker: true,
			check: func(t *testing.T, ch DerivationChannel) {
				worker, ok := ch.(*DerivationWorker)
				require.True(t, ok)
				assert.Equal(t, DefaultJobCacheTTL, worker.cacheTTL)
			},
		},
		{
			name: "direct fallback",
			check: func(t *testing.T, ch DerivationChannel) {
				_, ok := ch.(*directChannel)
				require.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, ws := NewDerivationChannel(tt.useWorker, crypto.NewKeyDeriver(), 0, logger.Nop())
			tt.check(t, ch)
			ws.Run()
			require.NoError(t, ws.Close())
		})
	}
}
