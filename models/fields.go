// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidField is returned when a field name does not belong to the
// credential entry schema.
var ErrInvalidField = errors.New("invalid field")

// Field names one of the nine logical fields of a [CredentialEntry].
type Field string

const (
	FieldTag      Field = "tag"
	FieldWebsite  Field = "website"
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldAltEmail Field = "altEmail"
	FieldPassword Field = "password"
	FieldSecrets  Field = "secrets"
	FieldHints    Field = "hints"
	FieldComments Field = "comments"
)

// FieldPolicy describes how a field is stored and protected.
type FieldPolicy struct {
	// Encrypted fields hold ciphertext produced with the derived master key.
	Encrypted bool
	// IsArray fields are ordered sequences joined with the array separator.
	IsArray bool
}

// EntryFields lists the fields in their serialization order.
var EntryFields = []Field{
	FieldTag,
	FieldWebsite,
	FieldUsername,
	FieldEmail,
	FieldAltEmail,
	FieldPassword,
	FieldSecrets,
	FieldHints,
	FieldComments,
}

// FieldSchema is the single source of truth for field policy. Both the entry
// codec and the field cipher consult it.
var FieldSchema = map[Field]FieldPolicy{
	FieldTag:      {},
	FieldWebsite:  {},
	FieldUsername: {},
	FieldEmail:    {},
	FieldAltEmail: {},
	FieldPassword: {Encrypted: true},
	FieldSecrets:  {Encrypted: true, IsArray: true},
	FieldHints:    {IsArray: true},
	FieldComments: {IsArray: true},
}

// ParseField validates name against [FieldSchema].
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := FieldSchema[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	return f, nil
}

// Policy returns the schema entry of f. ok is false for unknown fields.
func (f Field) Policy() (policy FieldPolicy, ok bool) {
	policy, ok = FieldSchema[f]
	return policy, ok
}
