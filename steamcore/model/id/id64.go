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
	"fmt"
	"strconv"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"dirpx.dev/steamfx/steamcore/model/account"
	"gopkg.in/yaml.v3"
)

// Default field values used when an identifier source cannot supply them.
// The community convention for an unknown account type and instance is to
// assume an individual account with instance 1.
const (
	// DefaultAccountType is assumed when a textual format carries no
	// account type.
	DefaultAccountType = account.AccountTypeIndividual

	// DefaultInstance is assumed when a source carries no instance.
	DefaultInstance uint32 = 1
)

// ID64 is the packed 64-bit identifier form, for example
// 76561197983318796.
//
// The raw integer always decomposes into exactly five fields, from the
// most significant to the least significant bit: universe (8 bits),
// account type (4 bits), instance (20 bits), account (31 bits) and the
// authentication server flag (1 bit). No invariant beyond that layout is
// enforced at construction time for the raw form; validity is only
// established by successfully decoding the universe and account type into
// their enumerations, which is what Info and Validate do.
//
// This type implements the model.Model interface. It serializes as its
// decimal numeric value in both JSON and YAML.
type ID64 uint64

// Info decodes the packed identifier into its five fields.
//
// Decoding walks the bits left to right with a BitIterator using widths
// 8, 4, 20, 31, 1 and validates the universe and account type numbers
// against their enumerations; an unknown number in either field is the
// only error this decoding can produce. The widths sum to 64 by
// construction, so extraction itself cannot run out of bits.
func (v ID64) Info() (Info, error) {
	it := NewBitIterator(uint64(v), UniverseBits)

	rawUniverse, _ := it.Next()
	universe, err := account.UniverseFromNumber(rawUniverse)
	if err != nil {
		return Info{}, err
	}

	rawType, _ := NextAs[uint8](it, AccountTypeBits)
	accountType, err := account.AccountTypeFromNumber(uint64(rawType))
	if err != nil {
		return Info{}, err
	}

	instance, _ := NextAs[uint32](it, InstanceBits)
	acct, _ := NextAs[uint32](it, AccountBits)
	auth, _ := NextAs[uint8](it, AuthServerBits)

	return Info{
		Universe:    universe,
		AccountType: accountType,
		Instance:    instance,
		Account:     acct,
		AuthServer:  auth,
	}, nil
}

// NewID64Full constructs a packed identifier from all five fields.
//
// Every field is checked against its enumeration or bit width before
// packing, so out-of-range input yields a precise *RangeError (or
// *ValidationError for the enumerations) naming the field rather than a
// silently truncated identifier. The fields are then rendered as
// zero-padded binary strings of their fixed widths (8, 4, 20, 31, 1),
// concatenated, and the 64-character result is re-parsed base-2 into the
// packed integer.
func NewID64Full(universe account.Universe, accountType account.AccountType, instance uint32, authServer uint8, acct uint32) (ID64, error) {
	if err := universe.Validate(); err != nil {
		return 0, err
	}
	if err := accountType.Validate(); err != nil {
		return 0, err
	}
	if instance > MaxInstance {
		return 0, &errors.RangeError{Type: "ID64", Field: "Instance", Value: uint64(instance), Max: MaxInstance}
	}
	if acct > MaxAccount {
		return 0, &errors.RangeError{Type: "ID64", Field: "Account", Value: uint64(acct), Max: MaxAccount}
	}
	if authServer > MaxAuthServer {
		return 0, &errors.RangeError{Type: "ID64", Field: "AuthServer", Value: uint64(authServer), Max: MaxAuthServer}
	}

	packed := fmt.Sprintf("%08b%04b%020b%031b%01b",
		universe.Number(), accountType.Number(), instance, acct, authServer)
	n, err := strconv.ParseUint(packed, 2, 64)
	if err != nil {
		return 0, &errors.ValidationError{Type: "ID64", Reason: err.Error()}
	}
	return ID64(n), nil
}

// NewID64Simple constructs a packed identifier from the three fields the
// textual formats actually carry, filling in the community defaults for
// the rest: an individual account type and instance 1.
func NewID64Simple(universe account.Universe, authServer uint8, acct uint32) (ID64, error) {
	return NewID64Full(universe, DefaultAccountType, DefaultInstance, authServer, acct)
}

// ID32 converts the packed identifier into the STEAM_U:S:A textual form.
//
// The published layout says the digit after "STEAM_" is the universe, but
// deployed clients emit 0 there regardless of the actual universe, so this
// conversion hardcodes the digit to 0 to match observed behavior. The
// decoded universe is validated and then deliberately discarded. The
// inverse conversion coerces that 0 back up to the public universe.
func (v ID64) ID32() (ID32, error) {
	info, err := v.Info()
	if err != nil {
		return "", err
	}
	return ID32(fmt.Sprintf("STEAM_0:%d:%d", info.AuthServer, info.Account)), nil
}

// ParseID64 parses a decimal string into an ID64 and validates that it
// decodes into known universe and account type enumerants.
func ParseID64(s string) (ID64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &errors.ParseError{Type: "ID64", Value: s}
	}
	v := ID64(n)
	if err := v.Validate(); err != nil {
		return 0, err
	}
	return v, nil
}

// String returns the decimal digits of the packed value. This method
// implements part of the model.Model interface.
func (v ID64) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Redacted returns the decimal form with all but the last three digits
// masked, keeping enough for log correlation without exposing the full
// account identifier. This method implements part of the model.Model
// interface.
func (v ID64) Redacted() string {
	return redactTail(v.String())
}

// TypeName returns "ID64", the name of the type for logging and debugging.
// This method implements part of the model.Model interface.
func (v ID64) TypeName() string {
	return "ID64"
}

// IsZero reports whether the packed value is 0. This method implements
// part of the model.Model interface.
func (v ID64) IsZero() bool {
	return v == 0
}

// Equal reports whether this ID64 holds the same packed value as another.
func (v ID64) Equal(other ID64) bool {
	return v == other
}

// Validate checks that the packed value decodes into known universe and
// account type enumerants. Any 64-bit value has well-formed numeric
// fields; only those two enumerations can reject it. This method
// implements part of the model.Model interface.
func (v ID64) Validate() error {
	_, err := v.Info()
	return err
}

// MarshalJSON implements json.Marshaler for ID64, emitting the decimal
// numeric value after validating it.
func (v ID64) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return []byte(v.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for ID64.
//
// The method accepts both a bare JSON number and a quoted decimal string;
// community APIs are inconsistent about which one they emit. The decoded
// value is validated before being accepted.
func (v *ID64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ID64", Data: data, Reason: "empty data"}
	}

	s := string(data)
	if data[0] == '"' {
		if len(s) < 2 {
			return &errors.UnmarshalError{Type: "ID64", Data: data, Reason: "malformed string"}
		}
		s = s[1 : len(s)-1]
	}

	parsed, err := ParseID64(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ID64, emitting the decimal
// numeric value after validating it.
func (v ID64) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return uint64(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ID64, accepting both plain
// integer scalars and quoted decimal strings.
func (v *ID64) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ID64", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseID64(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time verification that ID64 implements model.Model.
var _ model.Model = (*ID64)(nil)
