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

// id3Pattern is the anchored pattern an ID3 MUST match: a single account
// type code character, a single universe digit and the full account
// number, separated by colons. The surrounding brackets some tools render
// are not part of the canonical form and are rejected.
const id3Pattern = `^(\w):(\d):(\d+)$`

// ID3Regexp is the compiled regular expression used to validate and
// capture the three fields of the C:U:A format.
var ID3Regexp = regexp.MustCompile(id3Pattern)

// ID3 is the C:U:A textual identifier form, for example U:1:23053068.
//
// C is the single-character account type code, U the universe digit and A
// the full 32-bit account number (authentication server flag folded into
// the low bit). Unlike ID32, the universe digit here is the real universe.
//
// The zero value is the empty string, which is considered valid (but zero,
// see IsZero) so that optional fields in composite types do not fail
// validation. Use ParseID3 to construct a validated non-zero value.
//
// This type implements the model.Model interface.
type ID3 string

// ParseID3 parses and validates s as a C:U:A identifier.
//
// Leading and trailing whitespace is removed before matching, and the
// account type code is checked against the known code table. An input that
// does not match the anchored pattern yields a *ParseError carrying the
// original text; an unknown code yields a *ParseError for AccountType.
func ParseID3(s string) (ID3, error) {
	s = strings.TrimSpace(s)
	m := ID3Regexp.FindStringSubmatch(s)
	if m == nil {
		return "", &errors.ParseError{Type: "ID3", Value: s}
	}
	if _, err := account.ParseAccountTypeCode(m[1]); err != nil {
		return "", err
	}
	return ID3(s), nil
}

// fields returns the three captures of the identifier: the account type
// resolved from its code, the middle digit and the full account number.
func (v ID3) fields() (accountType account.AccountType, digit uint8, acct uint64, err error) {
	m := ID3Regexp.FindStringSubmatch(string(v))
	if m == nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID3", Value: string(v)}
	}
	accountType, err = account.ParseAccountTypeCode(m[1])
	if err != nil {
		return 0, 0, 0, err
	}
	u, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID3", Value: string(v)}
	}
	n, err := strconv.ParseUint(m[3], 10, 32)
	if err != nil {
		return 0, 0, 0, &errors.ParseError{Type: "ID3", Value: string(v)}
	}
	return accountType, uint8(u), n, nil
}

// Info decodes the identifier into the five-field structure.
//
// The C:U:A format is poorly documented, so the decoding is best effort:
// the universe cannot be recovered reliably from the middle digit and is
// reported as unspecified, the middle digit is carried as the
// authentication server flag, the account field holds the full account
// number from the text, and the instance takes the community default. Only
// the account type, resolved from the code character, is authoritative.
func (v ID3) Info() (Info, error) {
	accountType, digit, acct, err := v.fields()
	if err != nil {
		return Info{}, err
	}
	return Info{
		Universe:    account.UniverseIndividualOrUnspecified,
		AccountType: accountType,
		Instance:    DefaultInstance,
		Account:     uint32(acct),
		AuthServer:  digit,
	}, nil
}

// ID32 converts the identifier into the STEAM_U:S:A form.
//
// The low bit of the account number becomes the authentication server
// digit and the remainder is halved: an even account number A yields
// STEAM_0:0:A/2, an odd one STEAM_0:1:(A-1)/2. The universe digit is
// rendered as 0 to match what deployed clients emit.
func (v ID3) ID32() (ID32, error) {
	_, _, acct, err := v.fields()
	if err != nil {
		return "", err
	}
	if acct%2 == 0 {
		return ID32(fmt.Sprintf("STEAM_0:0:%d", acct/2)), nil
	}
	return ID32(fmt.Sprintf("STEAM_0:1:%d", (acct-1)/2)), nil
}

// ID64 converts the identifier into the packed 64-bit form.
//
// The conversion goes through the STEAM_U:S:A form, so it inherits that
// form's universe coercion: the packed result always carries the public
// universe regardless of the digit in the source text.
func (v ID3) ID64() (ID64, error) {
	id32, err := v.ID32()
	if err != nil {
		return 0, err
	}
	return id32.ID64()
}

// String returns the identifier text. This method implements part of the
// model.Model interface.
func (v ID3) String() string {
	return string(v)
}

// Redacted returns the identifier with all but the last three characters
// masked. This method implements part of the model.Model interface.
func (v ID3) Redacted() string {
	return redactTail(string(v))
}

// TypeName returns "ID3", the name of the type for logging and debugging.
// This method implements part of the model.Model interface.
func (v ID3) TypeName() string {
	return "ID3"
}

// IsZero reports whether the identifier is the empty string. This method
// implements part of the model.Model interface.
func (v ID3) IsZero() bool {
	return v == ""
}

// Equal reports whether this ID3 holds the same text as another.
func (v ID3) Equal(other ID3) bool {
	return v == other
}

// Validate checks that the identifier matches the C:U:A pattern and that
// its code character names a known account type. The zero value is valid.
// This method implements part of the model.Model interface.
func (v ID3) Validate() error {
	if v.IsZero() {
		return nil
	}
	m := ID3Regexp.FindStringSubmatch(string(v))
	if m == nil {
		return &errors.ValidationError{
			Type:   "ID3",
			Reason: "value does not match the C:U:A pattern",
			Value:  string(v),
		}
	}
	if _, err := account.ParseAccountTypeCode(m[1]); err != nil {
		return &errors.ValidationError{
			Type:   "ID3",
			Reason: "unknown account type code " + strconv.Quote(m[1]),
			Value:  string(v),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for ID3, emitting the identifier
// as a JSON string after validating it.
func (v ID3) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return []byte(strconv.Quote(string(v))), nil
}

// UnmarshalJSON implements json.Unmarshaler for ID3, expecting a JSON
// string matching the C:U:A pattern.
func (v *ID3) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "ID3", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseID3(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ID3, emitting the identifier
// as a YAML string after validating it.
func (v ID3) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return string(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ID3.
func (v *ID3) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ID3", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseID3(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compile-time verification that ID3 implements model.Model.
var _ model.Model = (*ID3)(nil)
