// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// pong is the result of [models.FunctionPing].
var pong = []byte("pong")

type function struct {
	required []string
	run      func(params models.Params) ([]byte, error)
}

// functionTable holds the functions a derivation channel is allowed to run.
type functionTable map[models.FunctionName]function

func newFunctionTable(deriver crypto.KeyDeriver) functionTable {
	return functionTable{
		models.FunctionKDF: {
			required: []string{
				models.ParamPassword,
				models.ParamSalt,
				models.ParamKeySize,
				models.ParamIterations,
			},
			run: func(params models.Params) ([]byte, error) {
				return runKDF(deriver, params)
			},
		},
		models.FunctionPing: {
			run: func(models.Params) ([]byte, error) {
				return append([]byte(nil), pong...), nil
			},
		},
	}
}

// validate checks that fn is declared and that params carries every required
// key.
func (t functionTable) validate(fn models.FunctionName, params models.Params) (function, error) {
	f, ok := t[fn]
	if !ok {
		return function{}, fmt.Errorf("%w: %q", ErrUnsupportedFunction, fn)
	}
	for _, key := range f.required {
		if _, ok := params[key]; !ok {
			return function{}, fmt.Errorf("%w: %s requires %q", ErrMissingParameter, fn, key)
		}
	}
	return f, nil
}

func (t functionTable) run(fn models.FunctionName, params models.Params) ([]byte, error) {
	f, err := t.validate(fn, params)
	if err != nil {
		return nil, err
	}
	return f.run(params)
}

func runKDF(deriver crypto.KeyDeriver, params models.Params) ([]byte, error) {
	password, err := stringParam(params, models.ParamPassword)
	if err != nil {
		return nil, err
	}
	salt, err := stringParam(params, models.ParamSalt)
	if err != nil {
		return nil, err
	}
	keySize, err := positiveIntParam(params, models.ParamKeySize)
	if err != nil {
		return nil, err
	}
	iterations, err := positiveIntParam(params, models.ParamIterations)
	if err != nil {
		return nil, err
	}

	return deriver.DeriveKey(password, salt, keySize, iterations), nil
}

func stringParam(params models.Params, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidParameter, key)
	}
	return v, nil
}

func positiveIntParam(params models.Params, key string) (int, error) {
	var n int
	switch v := params[key].(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case uint32:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidParameter, key)
		}
		n = int(v)
	default:
		return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidParameter, key)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidParameter, key)
	}
	return n, nil
}

// jobKey identifies a job for result caching: two jobs with the same function
// and structurally equal parameters share a key. json.Marshal sorts map keys,
// which makes the encoding canonical.
func jobKey(fn models.FunctionName, params models.Params) (string, error) {
	encoded, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return string(fn) + ":" + string(encoded), nil
}

func cloneParams(params models.Params) models.Params {
	if params == nil {
		return nil
	}
	out := make(models.Params, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// Ping sends a liveness probe through ch.
func Ping(ctx context.Context, ch DerivationChannel) error {
	got, err := ch.Do(ctx, models.FunctionPing, nil)
	if err != nil {
		return fmt.Errorf("ping derivation channel: %w", err)
	}
	if string(got) != string(pong) {
		return fmt.Errorf("ping derivation channel: unexpected answer %q", got)
	}
	return nil
}
