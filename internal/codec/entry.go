// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts credential entries and whole vaults to and from
// their text representation.
//
// An entry line is the nine fields of [models.CredentialEntry] joined with
// [ValueSeparator]; array fields are pre-joined with [ArraySeparator]. A vault
// file is the file secret, the entry lines and the device-secret hash joined
// with [EntrySeparator].
//
// The format has no escaping. A value that contains one of the separators
// cannot be represented and will not survive a round trip. An array field
// stored as "" reads back as an empty array, so an array holding a single
// empty element is not preserved either.
package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// ValueSeparator joins the nine values of an entry line.
	ValueSeparator = "[|]"
	// ArraySeparator joins the elements of an array field in storage.
	ArraySeparator = "[*]"
	// EntrySeparator joins the segments of a vault file.
	EntrySeparator = "\n"
)

// SerializeEntry renders e as a single entry line.
func SerializeEntry(e models.CredentialEntry) string {
	values := make([]string, 0, len(models.EntryFields))
	for _, f := range models.EntryFields {
		if models.FieldSchema[f].IsArray {
			values = append(values, JoinArray(e.List(f)))
			continue
		}
		values = append(values, e.Scalar(f))
	}
	return strings.Join(values, ValueSeparator)
}

// DeserializeEntry parses an entry line produced by [SerializeEntry]. It
// returns [ErrMalformedEntry] unless the line has exactly nine values.
func DeserializeEntry(line string) (models.CredentialEntry, error) {
	values := strings.Split(line, ValueSeparator)
	if len(values) != len(models.EntryFields) {
		return models.CredentialEntry{}, fmt.Errorf("%w: got %d values, want %d",
			ErrMalformedEntry, len(values), len(models.EntryFields))
	}

	var e models.CredentialEntry
	for i, f := range models.EntryFields {
		if models.FieldSchema[f].IsArray {
			e.SetList(f, SplitArray(values[i]))
			continue
		}
		e.SetScalar(f, values[i])
	}
	return e, nil
}

// JoinArray joins array elements for storage.
func JoinArray(values []string) string {
	return strings.Join(values, ArraySeparator)
}

// SplitArray splits a stored array field. An empty value is an empty array,
// which makes []string{""} and nil indistinguishable once stored.
func SplitArray(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ArraySeparator)
}
