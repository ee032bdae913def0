/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package id

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/rxmerr"
	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"dirpx.dev/steamfx/steamcore/model/account"
	"gopkg.in/yaml.v3"
)

// Bit widths of the five fields of the packed 64-bit identifier, in order
// from the most significant bit to the least significant bit. The widths
// sum to exactly 64 and are load-bearing for interoperability with the
// external identifier format: changing any of them, or their order, breaks
// every identifier ever decoded or encoded by this module.
const (
	// UniverseBits is the width of the universe field (bits 56-63).
	UniverseBits = 8

	// AccountTypeBits is the width of the account type field (bits 52-55).
	AccountTypeBits = 4

	// InstanceBits is the width of the instance field (bits 32-51).
	InstanceBits = 20

	// AccountBits is the width of the account number field (bits 1-31).
	AccountBits = 31

	// AuthServerBits is the width of the authentication server flag
	// (bit 0).
	AuthServerBits = 1
)

// Maximum values of the variable numeric fields, derived from the bit
// widths above. Encoding rejects any field above its maximum instead of
// truncating.
const (
	MaxInstance   = 1<<InstanceBits - 1
	MaxAccount    = 1<<AccountBits - 1
	MaxAuthServer = 1<<AuthServerBits - 1
)

// redactTail masks all but the last three characters of s with asterisks.
// Used by the Redacted implementations to keep enough of an account number
// for log correlation without exposing the full identifier.
func redactTail(s string) string {
	if len(s) <= 3 {
		return s
	}
	return strings.Repeat("*", len(s)-3) + s[len(s)-3:]
}

// Info is the decoded view of a packed 64-bit identifier: the universe and
// account type enumerations plus the three raw numeric fields.
//
// Info is a pure derived value, constructed by ID64.Info or ID3.Info and
// never mutated afterwards. An Info decoded from the C:U:A textual format
// is strictly less precise than one decoded from a packed identifier: the
// format cannot carry a universe, so Universe is always
// UniverseIndividualOrUnspecified and Instance is the default 1.
//
// This type implements the model.Model interface. The zero value (all
// fields zero) is valid: it decodes from the packed value 0.
type Info struct {
	// Universe is the deployment realm the identifier belongs to.
	Universe account.Universe `json:"universe" yaml:"universe"`

	// AccountType is the category of entity the identifier names.
	AccountType account.AccountType `json:"account_type" yaml:"account_type"`

	// Instance distinguishes multiple concurrent objects under one
	// account. At most 20 bits; defaulted to 1 when unknown.
	Instance uint32 `json:"instance" yaml:"instance"`

	// Account is the account number. At most 31 bits.
	Account uint32 `json:"account" yaml:"account"`

	// AuthServer is the historical authentication server flag, either 0
	// or 1. Mostly vestigial but still part of the bit layout and of the
	// textual formats.
	AuthServer uint8 `json:"authentication_server" yaml:"authentication_server"`
}

// ID64 re-encodes the Info into its packed 64-bit form. It is the exact
// inverse of ID64.Info for any Info whose fields are within their legal
// ranges, and fails with the same precise errors as NewID64Full when they
// are not.
func (i Info) ID64() (ID64, error) {
	return NewID64Full(i.Universe, i.AccountType, i.Instance, i.AuthServer, i.Account)
}

// String returns a human-readable rendering of all five fields.
func (i Info) String() string {
	return fmt.Sprintf("Info{universe:%s, type:%s, instance:%d, account:%d, auth:%d}",
		i.Universe, i.AccountType, i.Instance, i.Account, i.AuthServer)
}

// Redacted returns the same rendering as String with the account number
// masked down to its last three digits. This method implements part of the
// model.Model interface.
func (i Info) Redacted() string {
	return fmt.Sprintf("Info{universe:%s, type:%s, instance:%d, account:%s, auth:%d}",
		i.Universe, i.AccountType, i.Instance,
		redactTail(fmt.Sprintf("%d", i.Account)), i.AuthServer)
}

// TypeName returns "Info", the name of the type for logging and debugging.
// This method implements part of the model.Model interface.
func (i Info) TypeName() string {
	return "Info"
}

// IsZero reports whether all five fields hold their zero value. The zero
// Info is valid (it is the decoding of the packed value 0), so IsZero does
// not indicate an error condition. This method implements part of the
// model.Model interface.
func (i Info) IsZero() bool {
	return i == Info{}
}

// Equal reports whether this Info is field-for-field equal to another.
func (i Info) Equal(other Info) bool {
	return i == other
}

// Validate checks every field against its enumeration or bit width and
// returns all violations aggregated into a single error, so that an Info
// with several bad fields reports them all at once rather than one per
// call. This method implements part of the model.Model interface.
func (i Info) Validate() error {
	c := rxmerr.NewCollector()

	if err := i.Universe.Validate(); err != nil {
		c.Append(err)
	}
	if err := i.AccountType.Validate(); err != nil {
		c.Append(err)
	}
	if i.Instance > MaxInstance {
		c.Append(&errors.RangeError{Type: "Info", Field: "Instance", Value: uint64(i.Instance), Max: MaxInstance})
	}
	if i.Account > MaxAccount {
		c.Append(&errors.RangeError{Type: "Info", Field: "Account", Value: uint64(i.Account), Max: MaxAccount})
	}
	if i.AuthServer > MaxAuthServer {
		c.Append(&errors.RangeError{Type: "Info", Field: "AuthServer", Value: uint64(i.AuthServer), Max: MaxAuthServer})
	}

	return c.Err()
}

// MarshalJSON implements json.Marshaler for Info, serializing the five
// fields as an object after validating them.
func (i Info) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", i.TypeName(), err)
	}
	type alias Info
	return json.Marshal((alias)(i))
}

// UnmarshalJSON implements json.Unmarshaler for Info, validating the
// decoded fields before accepting them.
func (i *Info) UnmarshalJSON(data []byte) error {
	type alias Info
	if err := json.Unmarshal(data, (*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Info", Data: data, Reason: err.Error()}
	}
	if err := i.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Info is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Info.
func (i Info) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", i.TypeName(), err)
	}
	type alias Info
	return (alias)(i), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Info.
func (i *Info) UnmarshalYAML(node *yaml.Node) error {
	type alias Info
	if err := node.Decode((*alias)(i)); err != nil {
		return &errors.UnmarshalError{Type: "Info", Reason: err.Error()}
	}
	if err := i.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Info is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that Info implements model.Model.
var _ model.Model = (*Info)(nil)
