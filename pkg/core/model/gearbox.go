// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "errors"

// Gearbox specifies the transmission type enum of a car. It is stored
// and (de)serialized as a string for readability in the adapter layer.
type Gearbox string

// Valid values for the Gearbox enum.
const (
	GearboxManual    Gearbox = "manual"
	GearboxAutomatic Gearbox = "automatic"
)

// ErrUnknownGearbox indicates that a given string may not be parsed
// as a valid/known gearbox type. The caller of ParseGearbox already
// knows the invalid string, so this error does not repeat it.
var ErrUnknownGearbox = errors.New("unknown gearbox type")

// Validate returns nil if the Gearbox value is valid and
// ErrUnknownGearbox otherwise.
func (g Gearbox) Validate() error {
	switch g {
	case GearboxManual, GearboxAutomatic:
		return nil
	default:
		return ErrUnknownGearbox
	}
}

// ParseGearbox parses the given string as a Gearbox, helping to
// deserialize it when reading a REST API request.
func ParseGearbox(g string) (Gearbox, error) {
	gb := Gearbox(g)
	if err := gb.Validate(); err != nil {
		return "", err
	}
	return gb, nil
}
