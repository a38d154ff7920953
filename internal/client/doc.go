// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line vault runtime.
//
// It wires the derivation workers, the vault manager and the storage service
// into a single process lifecycle: open or create the user's vault, unlock it
// with the master password, list its entries and write it back.
package client
