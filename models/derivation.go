// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FunctionName identifies a function the derivation worker may run.
type FunctionName string

const (
	// FunctionKDF stretches a master password hash and a device secret hash
	// into key material.
	FunctionKDF FunctionName = "KDF"
	// FunctionPing is a liveness probe answered with "pong".
	FunctionPing FunctionName = "PING"
)

// Parameter keys understood by FunctionKDF.
const (
	ParamPassword   = "password"
	ParamSalt       = "salt"
	ParamKeySize    = "keySize"
	ParamIterations = "iterations"
)

// Params is the parameter map of a derivation job. Values are strings or
// integers.
type Params map[string]any

// DerivationJob is a single request sent to the derivation worker.
type DerivationJob struct {
	ID       uint64
	Function FunctionName
	Params   Params
}

// DerivationResult is the completion of a [DerivationJob]. ID matches the
// job's correlation id.
type DerivationResult struct {
	ID    uint64
	Value []byte
	Err   error
}
