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
	"regexp"
	"strconv"
	"strings"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"dirpx.dev/steamfx/steamcore/model/account"
	"gopkg.in/yaml.v3"
)

// id32Pattern is the anchored pattern an ID32 MUST match: the literal
// "STEAM_" prefix followed by a single universe digit, a single
// authentication server digit and the halved account number, separated by
// colons.
const id32Pattern = `^STEAM_(\d):(\d):(\d+)$`

// ID32Regexp is the compiled regular expression used to validate and
// capture the three numeric fields of the STEAM_U:S:A format.
var ID32Regexp = regexp.MustCompile(id32Pattern)

// ID32 is the STEAM_U:S:A textual identifier form, for example
// STEAM_0:0:11526534.
//
// U is the universe digit, S the authentication server flag and A half the
// account number; the low bit of the account lives in S. Deployed clients
// emit 0 for U regardless of the actual universe, so a leading
// STEAM_0 does not mean the unspecified universe; conversions back to the
// packed form coerce 0 up to the public universe.
//
// The zero value is the empty string, which is considered valid (but zero,
// see IsZero) so that optional fields in composite types do not fail
// validation. Use ParseID32 to construct a validated non-zero value.
//
// This type implements the model.Model interface.
type ID32 string

// ParseID32 parses and validates s as a STEAM_U:S:A identifier.
//
// Leading and trailing whitespace is removed before matching. An input that
// does not match the anchored pattern yields a *ParseError carrying the
// original text.
func ParseID32(s string) (ID32, error) {
	s = strings.TrimSpace(s)
	if !ID32Regexp.MatchString(s) {
		return "", &errors.ParseError{Type: "ID32", Value: s}
	}
	return ID32(s), nil
}

// fields returns the three numeric captures of the identifier: the
// universe digit, the authentication server flag and the halved account
// number.
func (v ID32) fields() (universe uint8, authServer uint8, acct uint64, err error) {
	m := ID32Regexp.FindStringSubmatch(string(v))
	if m == nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID32", Value: string(v)}
	}
	u, err := strconv.ParseUint(m[1], 10, 8)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID32", Value: string(v)}
	}
	a, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID32", Value: string(v)}
	}
	n, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID32", Value: string(v)}
	}
	return uint8(u), uint8(a), n, nil
}

// ID3 converts the identifier into the bracket-free U:1:A form.
//
// The full account number is reconstructed as twice the halved account
// number plus the authentication server flag, and the account type code is
// always U (individual): the STEAM_U:S:A form does not carry an account
// type, so the individual default applies.
func (v ID32) ID3() (ID3, error) {
	_, authServer, acct, err := v.fields()
	if err != nil {
		return "", err
	}
	return ID3(fmt.Sprintf("U:1:%d", acct*2+uint64(authServer))), nil
}

// ID64 converts the identifier into the packed 64-bit form.
//
// A universe digit of 0 is coerced to the public universe before packing:
// deployed clients emit 0 in the universe position for accounts that
// actually live in the public universe, and packing a literal 0 would
// produce an identifier no community service recognizes. The account type
// and instance take their community defaults.
func (v ID32) ID64() (ID64, error) {
	universeDigit, authServer, acct, err := v.fields()
	if err != nil {
		return 0, err
	}
	if acct > MaxAccount {
		return 0, &errors.RangeError{Type: "ID32", Field: "Account", Value: acct, Max: MaxAccount}
	}
	universe, err := account.UniverseFromNumber(uint64(universeDigit))
	if err != nil {
		return 0, err
	}
	if universe == account.UniverseIndividualOrUnspecified {
		universe = account.UniversePublic
	}
	return NewID64Simple(universe, authServer, uint32(acct))
}

// String returns the identifier text. This method implements part of the
// model.Model interface.
func (v ID32) String() string {
	return string(v)
}

// Redacted returns the identifier with all but the last three characters
// masked. This method implements part of the model.Model interface.
func (v ID32) Redacted() string {
	return redactTail(string(v))
}

// TypeName returns "ID32", the name of the type for logging and debugging.
// This method implements part of the model.Model interface.
func (v ID32) TypeName() string {
	return "ID32"
}

// IsZero reports whether the identifier is the empty string. This method
// implements part of the model.Model interface.
func (v ID32) IsZero() bool {
	return v == ""
}

// Equal reports whether this ID32 holds the same text as another.
func (v ID32) Equal(other ID32) bool {
	return v == other
}

// Validate checks that the identifier matches the STEAM_U:S:A pattern.
// The zero value is valid. This method implements part of the model.Model
// interface.
func (v ID32) Validate() error {
	if v.IsZero() {
		return nil
	}
	if !ID32Regexp.MatchString(string(v)) {
		return &errors.ValidationError{
			Type:   "ID32",
			Reason: "value does not match the STEAM_U:S:A pattern",
			Value:  string(v),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ID32, emitting the identifier
// as a JSON string after validating it.
func (v ID32) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return []byte(strconv.Quote(string(v))), nil
}

// UnmarshalJSON implements json.Unmarshaler for ID32, expecting a JSON
// string matching the STEAM_U:S:A pattern.
func (v *ID32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "ID32", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseID32(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ID32, emitting the identifier
// as a YAML string after validating it.
func (v ID32) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return string(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ID32.
func (v *ID32) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ID32", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseID32(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time verification that ID32 implements model.Model.
var _ model.Model = (*ID32)(nil)
