// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Client models a member of the client roster.
// Email is unique among the non-deleted clients. The IsRenting flag is
// owned exclusively by the rentals use case and is true if and only if
// exactly one active rental transaction references this client.
type Client struct {
	ID             uuid.UUID    `json:"id"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	Nationality    string       `json:"nationality"`
	Address        string       `json:"address"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	BirthDate      time.Time    `json:"birth_date"`
	IsRenting      bool         `json:"is_renting"`
	IsDeleted      bool         `json:"is_deleted"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ClientPatch describes a partial update of a client. Nil fields are
// left unchanged. The renting and soft-delete flags may not be patched.
type ClientPatch struct {
	FirstName      *string
	LastName       *string
	DocumentType   *DocumentType
	DocumentNumber *string
	Nationality    *string
	Address        *string
	Phone          *string
	Email          *string
	BirthDate      *time.Time
}

// DocumentType specifies the identity document type enum of a client.
type DocumentType string

// Valid values for the DocumentType enum.
const (
	DocumentPassport DocumentType = "passport"
	DocumentDNI      DocumentType = "dni"
	DocumentCedula   DocumentType = "cedula"
)

// ErrUnknownDocumentType indicates that a given string may not be
// parsed as a valid/known document type.
var ErrUnknownDocumentType = errors.New("unknown document type")

// Validate returns nil if the DocumentType value is valid and
// ErrUnknownDocumentType otherwise.
func (d DocumentType) Validate() error {
	switch d {
	case DocumentPassport, DocumentDNI, DocumentCedula:
		return nil
	default:
		return ErrUnknownDocumentType
	}
}

// ParseDocumentType parses the given string as a DocumentType.
func ParseDocumentType(d string) (DocumentType, error) {
	dt := DocumentType(d)
	if err := dt.Validate(); err != nil {
		return "", err
	}
	return dt, nil
}
