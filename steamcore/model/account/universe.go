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

// Package account defines the enumerations carried inside a packed Steam
// identifier: the Universe a record belongs to and the AccountType of the
// entity the identifier names.
//
// Both enumerations are small closed sets whose numeric values are part of
// the external wire format of the 64-bit packed identifier and MUST NOT be
// renumbered. The textual names are a steamfx convention used for
// serialization and display; the numbers are what interoperates with the
// real identifier format.
package account

import (
	"encoding/json"
	"strconv"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"gopkg.in/yaml.v3"
)

// Universe identifies the deployment realm an account belongs to: the
// public universe serving regular accounts, or one of the internal realms
// (beta, internal, developer, RC).
//
// The numeric values occupy the top 8 bits of the packed 64-bit identifier
// and are fixed by the external format. Only the numbers 0 through 5 name a
// known universe; decoding any other number is an error.
//
// Note that the zero value (UniverseIndividualOrUnspecified) is a valid
// Universe: it is the "unspecified" realm that textual identifier formats
// produce when the true universe cannot be recovered. Validation does not
// reject it.
type Universe int

const (
	// UniverseIndividualOrUnspecified marks an individual account or an
	// identifier whose universe is unknown. Textual formats that cannot
	// carry a universe (the C:U:A form) always decode to this value.
	UniverseIndividualOrUnspecified Universe = 0

	// UniversePublic is the public universe serving regular accounts.
	// Virtually every identifier seen in the wild belongs here.
	UniversePublic Universe = 1

	// UniverseBeta is the beta universe.
	UniverseBeta Universe = 2

	// UniverseInternal is the internal universe.
	UniverseInternal Universe = 3

	// UniverseDeveloper is the developer universe.
	UniverseDeveloper Universe = 4

	// UniverseRC is the release-candidate universe.
	UniverseRC Universe = 5
)

// String constants for Universe values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable textual representation of Universe and MAY be
// persisted in JSON/YAML documents. Changing them is a breaking change for
// any consumer that relies on the textual form. The numeric wire values are
// defined by the packed identifier layout, not by these strings.
const (
	UniverseIndividualOrUnspecifiedStr = "unspecified"
	UniversePublicStr                  = "public"
	UniverseBetaStr                    = "beta"
	UniverseInternalStr                = "internal"
	UniverseDeveloperStr               = "developer"
	UniverseRCStr                      = "rc"
)

// ParseUniverse converts a textual representation into a Universe value.
//
// The function accepts a small, case-tolerant vocabulary of strings and
// maps them to the corresponding constants:
//
//	"unspecified", "Unspecified", "UNSPECIFIED" -> UniverseIndividualOrUnspecified
//	"public",      "Public",      "PUBLIC"      -> UniversePublic
//	"beta",        "Beta",        "BETA"        -> UniverseBeta
//	"internal",    "Internal",    "INTERNAL"    -> UniverseInternal
//	"developer",   "Developer",   "DEVELOPER"   -> UniverseDeveloper
//	"rc",          "Rc",          "RC"          -> UniverseRC
//
// Any other input is treated as invalid, and ParseUniverse returns a
// *ParseError carrying the original string.
func ParseUniverse(s string) (Universe, error) {
	switch s {
	case UniverseIndividualOrUnspecifiedStr, "Unspecified", "UNSPECIFIED":
		return UniverseIndividualOrUnspecified, nil
	case UniversePublicStr, "Public", "PUBLIC":
		return UniversePublic, nil
	case UniverseBetaStr, "Beta", "BETA":
		return UniverseBeta, nil
	case UniverseInternalStr, "Internal", "INTERNAL":
		return UniverseInternal, nil
	case UniverseDeveloperStr, "Developer", "DEVELOPER":
		return UniverseDeveloper, nil
	case UniverseRCStr, "Rc", "RC":
		return UniverseRC, nil
	default:
		return UniverseIndividualOrUnspecified, &errors.ParseError{Type: "Universe", Value: s}
	}
}

// UniverseFromNumber converts a raw numeric universe field, as extracted
// from the top 8 bits of a packed identifier, into a Universe value.
//
// Only the numbers 0 through 5 name a known universe. Any other number
// yields a *ValidationError carrying the raw value, which is how decoding a
// packed identifier with a corrupt or unknown universe surfaces to callers.
func UniverseFromNumber(n uint64) (Universe, error) {
	u := Universe(n)
	if !u.Valid() {
		return UniverseIndividualOrUnspecified, &errors.ValidationError{
			Type:   "Universe",
			Reason: "no universe with number " + strconv.FormatUint(n, 10),
			Value:  n,
		}
	}
	return u, nil
}

// String returns the canonical string representation of the Universe value.
//
// The returned value is always lowercase and suitable for use in logs,
// serialized documents and API responses. If the Universe value is not one
// of the defined constants, String returns "unknown"; callers that need to
// ensure only valid values are emitted SHOULD call Valid first.
func (u Universe) String() string {
	switch u {
	case UniverseIndividualOrUnspecified:
		return UniverseIndividualOrUnspecifiedStr
	case UniversePublic:
		return UniversePublicStr
	case UniverseBeta:
		return UniverseBetaStr
	case UniverseInternal:
		return UniverseInternalStr
	case UniverseDeveloper:
		return UniverseDeveloperStr
	case UniverseRC:
		return UniverseRCStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Universe value is one of the defined constants.
//
// This method is primarily useful when Universe values have been created
// via deserialization or numeric casts from packed identifier fields. Code
// that relies on Universe being well-formed SHOULD call Valid before using
// the value in logic that assumes a known realm.
func (u Universe) Valid() bool {
	return u >= UniverseIndividualOrUnspecified && u <= UniverseRC
}

// Number returns the numeric wire value of the Universe as carried in the
// top 8 bits of a packed identifier.
func (u Universe) Number() uint64 {
	return uint64(u)
}

// TypeName returns "Universe", the name of the type for logging and
// debugging. This method implements part of the model.Model interface.
func (u Universe) TypeName() string {
	return "Universe"
}

// Redacted returns the same string representation as String().
//
// Universe values contain no account-identifying information (they are
// enum constants naming a deployment realm), so the redacted form is
// identical to the regular string form. This method implements part of the
// model.Model interface.
func (u Universe) Redacted() string {
	return u.String()
}

// IsZero reports whether the Universe has its zero value.
//
// For Universe the zero value is UniverseIndividualOrUnspecified, which is
// a valid realm, so IsZero returning true does not indicate an error
// condition. This method implements part of the model.Model interface.
func (u Universe) IsZero() bool {
	return u == UniverseIndividualOrUnspecified
}

// Equal reports whether this Universe is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Universe or *Universe. This method implements part of the
// model.Model interface and is useful for comparisons in tests.
func (u Universe) Equal(other any) bool {
	switch v := other.(type) {
	case Universe:
		return u == v
	case *Universe:
		if v == nil {
			return false
		}
		return u == *v
	default:
		return false
	}
}

// Validate checks whether the Universe value is one of the defined
// constants, returning a *ValidationError carrying the numeric value when
// it is not. This method implements part of the model.Model interface and
// is typically called after deserialization or numeric casts.
func (u Universe) Validate() error {
	if !u.Valid() {
		return &errors.ValidationError{
			Type:   "Universe",
			Reason: "no universe with number " + strconv.Itoa(int(u)),
			Value:  int(u),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Universe.
//
// A valid Universe is serialized as its lowercase string representation
// (for example, "public"). If the value is not valid, MarshalJSON returns a
// *MarshalError and does not produce any JSON output.
func (u Universe) MarshalJSON() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Universe", Value: int(u)}
	}
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Universe.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "unspecified", "public", "beta", "internal", "developer",
//     "rc" (case-tolerant variants accepted via ParseUniverse).
//   - Number: the wire values 0 through 5.
//
// String input is the preferred, stable representation. Numeric input is
// accepted because the universe travels as a number inside packed
// identifiers and in payloads that expose the raw field. If the input
// cannot be parsed as either, or resolves to an invalid Universe,
// UnmarshalJSON returns an *UnmarshalError describing the failure.
func (u *Universe) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Universe", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Universe", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseUniverse(s)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Universe", Data: data, Reason: err.Error()}
	}
	*u = Universe(i)
	if !u.Valid() {
		return &errors.UnmarshalError{Type: "Universe", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Universe.
//
// A valid Universe is serialized as its canonical string representation.
// If the value is not valid, MarshalYAML returns a *MarshalError.
func (u Universe) MarshalYAML() (any, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Universe", Value: int(u)}
	}
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Universe.
//
// The method accepts string representations of Universe values (for
// example, "public") and resolves them via ParseUniverse. On failure, it
// returns the underlying *ParseError.
func (u *Universe) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Universe", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseUniverse(str)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Universe.
//
// Textual form is the same lowercase string representation as used by
// String(). If the Universe value is invalid, MarshalText returns a
// *MarshalError.
func (u Universe) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, &errors.MarshalError{Type: "Universe", Value: int(u)}
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Universe, resolving
// the textual form via ParseUniverse.
func (u *Universe) UnmarshalText(text []byte) error {
	parsed, err := ParseUniverse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Compile-time verification that Universe implements model.Model.
var _ model.Model = (*Universe)(nil)
