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

// Package id implements the Steam identifier formats and the conversions
// between them.
//
// A Steam identifier exists in three interchangeable representations:
//
//   - ID64, the packed 64-bit integer form (76561197983318796),
//   - ID32, the STEAM_U:S:A textual form (STEAM_0:0:11526534),
//   - ID3, the C:U:A textual form (U:1:23053068).
//
// The packed form is authoritative: it carries all five fields of the
// identifier layout (universe, account type, instance, account,
// authentication server flag), while the textual forms each drop some of
// them and rely on community defaults when converting back. The ID type
// wraps whichever form a caller happens to hold and exposes conversions
// and a format-insensitive comparison on top.
package id

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"gopkg.in/yaml.v3"
)

// Kind identifies which identifier representation an ID currently holds.
type Kind int

const (
	// KindNone marks the zero ID that holds no identifier at all.
	KindNone Kind = iota

	// KindID64 marks an ID holding the packed 64-bit form.
	KindID64

	// KindID32 marks an ID holding the STEAM_U:S:A textual form.
	KindID32

	// KindID3 marks an ID holding the C:U:A textual form.
	KindID3
)

// String constants for the Kind values.
const (
	KindNoneStr = "none"
	KindID64Str = "id64"
	KindID32Str = "id32"
	KindID3Str  = "id3"
)

// ParseKind parses a string into a Kind value. It returns a *ParseError
// if the string does not name a known kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case KindNoneStr:
		return KindNone, nil
	case KindID64Str:
		return KindID64, nil
	case KindID32Str:
		return KindID32, nil
	case KindID3Str:
		return KindID3, nil
	default:
		return KindNone, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the textual name of the kind.
func (k Kind) String() string {
	switch k {
	case KindID64:
		return KindID64Str
	case KindID32:
		return KindID32Str
	case KindID3:
		return KindID3Str
	default:
		return KindNoneStr
	}
}

// Valid reports whether the kind is one of the known values.
func (k Kind) Valid() bool {
	switch k {
	case KindNone, KindID64, KindID32, KindID3:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler for Kind.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ID wraps a Steam identifier in whichever of the three representations a
// caller holds, without forcing an up-front conversion.
//
// The zero ID holds nothing (KindNone); construct populated values with
// FromID64, FromID32, FromID3, FromUint64 or ParseID. Two IDs holding
// different representations of the same account are not Equal (that
// comparison is strictly kind plus value) but are IsSame.
//
// This type implements the model.Model interface. Because the packed form
// is the least common denominator that every representation converts to,
// an ID serializes as its canonical 64-bit decimal value in both JSON and
// YAML: serializing and re-reading an ID32 therefore yields an equivalent
// but not identical value (IsSame, not Equal).
type ID struct {
	kind Kind
	id64 ID64
	id32 ID32
	id3  ID3
}

// FromID64 wraps a packed 64-bit identifier.
func FromID64(v ID64) ID {
	return ID{kind: KindID64, id64: v}
}

// FromID32 wraps a STEAM_U:S:A identifier.
func FromID32(v ID32) ID {
	return ID{kind: KindID32, id32: v}
}

// FromID3 wraps a C:U:A identifier.
func FromID3(v ID3) ID {
	return ID{kind: KindID3, id3: v}
}

// FromUint64 wraps a raw 64-bit value after checking that it decodes into
// known universe and account type enumerants.
func FromUint64(v uint64) (ID, error) {
	id64 := ID64(v)
	if err := id64.Validate(); err != nil {
		return ID{}, err
	}
	return FromID64(id64), nil
}

// ParseID parses a string into an ID by recognizing its format.
//
// Recognition tries the formats in a fixed order: a string of decimal
// digits becomes the packed form, then the STEAM_U:S:A pattern, then the
// C:U:A pattern. A string matching none of them yields a *ParseError.
// Recognition is purely syntactic for the decimal form; a decimal value
// with an unknown universe or account type is only rejected later, when a
// conversion or Validate decodes it.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromID64(ID64(n)), nil
	}
	if id32, err := ParseID32(s); err == nil {
		return FromID32(id32), nil
	}
	if id3, err := ParseID3(s); err == nil {
		return FromID3(id3), nil
	}
	return ID{}, &errors.ParseError{Type: "ID", Value: s}
}

// Kind returns the representation this ID currently holds.
func (v ID) Kind() Kind {
	return v.kind
}

// ID64 converts (if needed) the held identifier into the packed 64-bit
// form. The packed form carries the most information, so every
// representation converts to it; the textual forms fill the missing fields
// with community defaults.
func (v ID) ID64() (ID64, error) {
	switch v.kind {
	case KindID64:
		return v.id64, nil
	case KindID32:
		return v.id32.ID64()
	case KindID3:
		return v.id3.ID64()
	default:
		return 0, &errors.ValidationError{Type: "ID", Reason: "no identifier value held"}
	}
}

// ID32 converts (if needed) the held identifier into the STEAM_U:S:A
// textual form.
func (v ID) ID32() (ID32, error) {
	switch v.kind {
	case KindID64:
		return v.id64.ID32()
	case KindID32:
		return v.id32, nil
	case KindID3:
		return v.id3.ID32()
	default:
		return "", &errors.ValidationError{Type: "ID", Reason: "no identifier value held"}
	}
}

// AsID64 returns a new ID holding the packed 64-bit form of this
// identifier.
func (v ID) AsID64() (ID, error) {
	id64, err := v.ID64()
	if err != nil {
		return ID{}, err
	}
	return FromID64(id64), nil
}

// AsID32 returns a new ID holding the STEAM_U:S:A form of this
// identifier.
func (v ID) AsID32() (ID, error) {
	id32, err := v.ID32()
	if err != nil {
		return ID{}, err
	}
	return FromID32(id32), nil
}

// Info decodes the held identifier into the five-field structure by first
// converting it into the packed form.
func (v ID) Info() (Info, error) {
	id64, err := v.ID64()
	if err != nil {
		return Info{}, err
	}
	return id64.Info()
}

// IsSame reports whether two IDs identify the same account regardless of
// the representation each one holds.
//
// Equality of representations (Equal) is sometimes not what a caller
// wants: an ID32 and the ID3 derived from it are different values but the
// same account. IsSame converts both sides to the packed form, which every
// representation can reach, and compares those. It returns an error when
// either side cannot be converted.
func (v ID) IsSame(other ID) (bool, error) {
	a, err := v.ID64()
	if err != nil {
		return false, err
	}
	b, err := other.ID64()
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// String returns the text of the held representation: decimal digits for
// the packed form, the identifier text for the textual forms, the empty
// string for the zero ID. This method implements part of the model.Model
// interface.
func (v ID) String() string {
	switch v.kind {
	case KindID64:
		return v.id64.String()
	case KindID32:
		return v.id32.String()
	case KindID3:
		return v.id3.String()
	default:
		return ""
	}
}

// Redacted returns the held representation with all but the last three
// characters masked. This method implements part of the model.Model
// interface.
func (v ID) Redacted() string {
	return redactTail(v.String())
}

// TypeName returns "ID", the name of the type for logging and debugging.
// This method implements part of the model.Model interface.
func (v ID) TypeName() string {
	return "ID"
}

// IsZero reports whether the ID holds no identifier. This method
// implements part of the model.Model interface.
func (v ID) IsZero() bool {
	return v.kind == KindNone
}

// Equal reports whether two IDs hold the same representation with the
// same value. Use IsSame to compare across representations.
func (v ID) Equal(other ID) bool {
	return v == other
}

// Validate checks the held representation: the packed form must decode
// into known enumerants and the textual forms must match their patterns.
// The zero ID is valid. This method implements part of the model.Model
// interface.
func (v ID) Validate() error {
	switch v.kind {
	case KindNone:
		return nil
	case KindID64:
		return v.id64.Validate()
	case KindID32:
		if v.id32.IsZero() {
			return &errors.ValidationError{Type: "ID", Reason: "kind is id32 but no value is held"}
		}
		return v.id32.Validate()
	case KindID3:
		if v.id3.IsZero() {
			return &errors.ValidationError{Type: "ID", Reason: "kind is id3 but no value is held"}
		}
		return v.id3.Validate()
	default:
		return &errors.ValidationError{Type: "ID", Reason: "unknown kind " + strconv.Itoa(int(v.kind))}
	}
}

// MarshalJSON implements json.Marshaler for ID.
//
// The held representation is first converted into the packed 64-bit form
/// and emitted as a JSON number: the packed form is the least common
// denominator every representation converts to, costs less than a string,
// and carries the most information. Marshaling fails when the conversion
// does.
func (v ID) MarshalJSON() ([]byte, error) {
	id64, err := v.ID64()
	if err != nil {
		return nil, fmt.Errorf("cannot marshal %s: %w", v.TypeName(), err)
	}
	return []byte(id64.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler for ID.
//
// A JSON number becomes an ID holding the packed form; a JSON string is
// recognized by format the way ParseID does, so all three textual
// spellings are accepted.
func (v *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "ID", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "ID", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseID(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}

	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return &errors.UnmarshalError{Type: "ID", Data: data, Reason: err.Error()}
	}
	*v = FromID64(ID64(n))
	return nil
}

// MarshalYAML implements yaml.Marshaler for ID, emitting the canonical
// packed 64-bit value like MarshalJSON does.
func (v ID) MarshalYAML() (any, error) {
	id64, err := v.ID64()
	if err != nil {
		return nil, fmt.Errorf("cannot marshal %s: %w", v.TypeName(), err)
	}
	return uint64(id64), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ID, recognizing the
// scalar's text the way ParseID does.
func (v *ID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ID", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time verification that ID implements model.Model.
var _ model.Model = (*ID)(nil)
