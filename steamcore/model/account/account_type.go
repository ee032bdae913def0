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

package account

import (
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"gopkg.in/yaml.v3"
)

// AccountType identifies the category of entity a packed identifier names:
// an individual user, a game server, a clan, a chat room, and so on.
//
// The numeric values occupy the 4 bits following the universe field in the
// packed 64-bit identifier and are fixed by the external format. Only the
// numbers 0 through 10 name a known type; decoding any other number is an
// error. The value 0 (AccountTypeInvalid) is reserved as the explicit
// "invalid" type and doubles as the fallback for unknown input in contexts
// that tolerate it.
//
// Besides the numeric values, each type has a single-character code used by
// the C:U:A textual identifier format. The code table contains duplicates:
// 'T', 'L' and 'c' all name the chat type, distinguishing chat flavors that
// the numeric format does not. Parsing keeps the distinction out of scope
// and maps all three to AccountTypeChat.
type AccountType int

const (
	// AccountTypeInvalid is the reserved invalid type, numeric value 0.
	// It is a defined constant (code 'I') rather than an error: packed
	// identifiers can legitimately carry it.
	AccountTypeInvalid AccountType = 0

	// AccountTypeIndividual is a regular user account. This is the
	// default type assumed by textual formats that cannot carry a type.
	AccountTypeIndividual AccountType = 1

	// AccountTypeMultiseat is a multiseat account.
	AccountTypeMultiseat AccountType = 2

	// AccountTypeGameServer is a registered game server account.
	AccountTypeGameServer AccountType = 3

	// AccountTypeAnonGameServer is an unregistered (anonymous) game
	// server account.
	AccountTypeAnonGameServer AccountType = 4

	// AccountTypePending is an account pending approval.
	AccountTypePending AccountType = 5

	// AccountTypeContentServer is a content server account.
	AccountTypeContentServer AccountType = 6

	// AccountTypeClan is a clan (group) account.
	AccountTypeClan AccountType = 7

	// AccountTypeChat is a chat account. Three distinct character codes
	// ('T', 'L', 'c') map to this type.
	AccountTypeChat AccountType = 8

	// AccountTypeSuperSeeder is the peer-to-peer super seeder account.
	AccountTypeSuperSeeder AccountType = 9

	// AccountTypeAnonUser is an anonymous user account.
	AccountTypeAnonUser AccountType = 10
)

// String constants for AccountType values used in serialization, parsing,
// and human-facing output.
//
// These names form the stable textual representation of AccountType and MAY
// be persisted in JSON/YAML documents. The numeric wire values and the
// single-character codes are defined by the external identifier formats,
// not by these strings.
const (
	AccountTypeInvalidStr        = "invalid"
	AccountTypeIndividualStr     = "individual"
	AccountTypeMultiseatStr      = "multiseat"
	AccountTypeGameServerStr     = "game-server"
	AccountTypeAnonGameServerStr = "anonymous-game-server"
	AccountTypePendingStr        = "pending"
	AccountTypeContentServerStr  = "content-server"
	AccountTypeClanStr           = "clan"
	AccountTypeChatStr           = "chat"
	AccountTypeSuperSeederStr    = "super-seeder"
	AccountTypeAnonUserStr       = "anonymous-user"
)

// accountTypeByCode maps the single-character codes of the C:U:A identifier
// format to their account types. The table is built once at package
// initialization and never mutated afterwards; duplicate keys 'T', 'L' and
// 'c' intentionally map to the same chat type.
var accountTypeByCode = map[rune]AccountType{
	'I': AccountTypeInvalid,
	'U': AccountTypeIndividual,
	'M': AccountTypeMultiseat,
	'G': AccountTypeGameServer,
	'A': AccountTypeAnonGameServer,
	'P': AccountTypePending,
	'C': AccountTypeContentServer,
	'g': AccountTypeClan,
	'T': AccountTypeChat,
	'L': AccountTypeChat,
	'c': AccountTypeChat,
	'a': AccountTypeAnonUser,
}

// accountTypeCodes maps each account type to its canonical single-character
// code, used when rendering the C:U:A format. For the chat type, which has
// three incoming codes, the canonical outgoing code is 'T'. The super
// seeder type has no code in the textual format and is absent from both
// tables.
var accountTypeCodes = map[AccountType]rune{
	AccountTypeInvalid:        'I',
	AccountTypeIndividual:     'U',
	AccountTypeMultiseat:      'M',
	AccountTypeGameServer:     'G',
	AccountTypeAnonGameServer: 'A',
	AccountTypePending:        'P',
	AccountTypeContentServer:  'C',
	AccountTypeClan:           'g',
	AccountTypeChat:           'T',
	AccountTypeAnonUser:       'a',
}

// ParseAccountType converts a textual representation into an AccountType
// value.
//
// The function accepts the canonical lowercase names ("individual",
// "game-server", ...) plus capitalized and uppercase variants. Any other
// input is treated as invalid, and ParseAccountType returns a *ParseError
// carrying the original string. Single-character codes are a separate
// vocabulary handled by ParseAccountTypeCode.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case AccountTypeInvalidStr, "Invalid", "INVALID":
		return AccountTypeInvalid, nil
	case AccountTypeIndividualStr, "Individual", "INDIVIDUAL":
		return AccountTypeIndividual, nil
	case AccountTypeMultiseatStr, "Multiseat", "MULTISEAT":
		return AccountTypeMultiseat, nil
	case AccountTypeGameServerStr, "Game-Server", "GAME-SERVER":
		return AccountTypeGameServer, nil
	case AccountTypeAnonGameServerStr, "Anonymous-Game-Server", "ANONYMOUS-GAME-SERVER":
		return AccountTypeAnonGameServer, nil
	case AccountTypePendingStr, "Pending", "PENDING":
		return AccountTypePending, nil
	case AccountTypeContentServerStr, "Content-Server", "CONTENT-SERVER":
		return AccountTypeContentServer, nil
	case AccountTypeClanStr, "Clan", "CLAN":
		return AccountTypeClan, nil
	case AccountTypeChatStr, "Chat", "CHAT":
		return AccountTypeChat, nil
	case AccountTypeSuperSeederStr, "Super-Seeder", "SUPER-SEEDER":
		return AccountTypeSuperSeeder, nil
	case AccountTypeAnonUserStr, "Anonymous-User", "ANONYMOUS-USER":
		return AccountTypeAnonUser, nil
	default:
		return AccountTypeInvalid, &errors.ParseError{Type: "AccountType", Value: s}
	}
}

// ParseAccountTypeCode converts a single-character code from the C:U:A
// identifier format into an AccountType value.
//
// The code vocabulary is:
//
//	I -> invalid        U -> individual      M -> multiseat
//	G -> game-server    A -> anon game srv   P -> pending
//	C -> content-server g -> clan            a -> anonymous-user
//	T, L, c -> chat
//
// The input MUST be exactly one character; longer input is always an error
// even when its first character would be a valid code, and so is an unknown
// character. Both cases return a *ParseError carrying the original string.
func ParseAccountTypeCode(s string) (AccountType, error) {
	if utf8.RuneCountInString(s) != 1 {
		return AccountTypeInvalid, &errors.ParseError{Type: "AccountType", Value: s}
	}
	r, _ := utf8.DecodeRuneInString(s)
	t, ok := accountTypeByCode[r]
	if !ok {
		return AccountTypeInvalid, &errors.ParseError{Type: "AccountType", Value: s}
	}
	return t, nil
}

// AccountTypeFromNumber converts a raw numeric account type field, as
// extracted from the 4 bits following the universe in a packed identifier,
// into an AccountType value.
//
// Only the numbers 0 through 10 name a known type. Any other number yields
// a *ValidationError carrying the raw value.
func AccountTypeFromNumber(n uint64) (AccountType, error) {
	t := AccountType(n)
	if !t.Valid() {
		return AccountTypeInvalid, &errors.ValidationError{
			Type:   "AccountType",
			Reason: "no account type with number " + strconv.FormatUint(n, 10),
			Value:  n,
		}
	}
	return t, nil
}

// String returns the canonical string representation of the AccountType
// value.
//
// The returned value is always lowercase and suitable for use in logs,
// serialized documents and API responses. If the AccountType value is not
// one of the defined constants, String returns "unknown"; callers that need
// to ensure only valid values are emitted SHOULD call Valid first.
func (a AccountType) String() string {
	switch a {
	case AccountTypeInvalid:
		return AccountTypeInvalidStr
	case AccountTypeIndividual:
		return AccountTypeIndividualStr
	case AccountTypeMultiseat:
		return AccountTypeMultiseatStr
	case AccountTypeGameServer:
		return AccountTypeGameServerStr
	case AccountTypeAnonGameServer:
		return AccountTypeAnonGameServerStr
	case AccountTypePending:
		return AccountTypePendingStr
	case AccountTypeContentServer:
		return AccountTypeContentServerStr
	case AccountTypeClan:
		return AccountTypeClanStr
	case AccountTypeChat:
		return AccountTypeChatStr
	case AccountTypeSuperSeeder:
		return AccountTypeSuperSeederStr
	case AccountTypeAnonUser:
		return AccountTypeAnonUserStr
	default:
		return "unknown"
	}
}

// Code returns the canonical single-character code of the AccountType as
// used by the C:U:A identifier format. For the chat type, which accepts
// three distinct incoming codes, the canonical outgoing code is "T".
//
// Invalid AccountType values, and the super seeder type for which the
// textual format defines no code, return an empty string.
func (a AccountType) Code() string {
	r, ok := accountTypeCodes[a]
	if !ok {
		return ""
	}
	return string(r)
}

// Valid reports whether the AccountType value is one of the defined
// constants.
//
// This method is primarily useful when AccountType values have been created
// via deserialization or numeric casts from packed identifier fields.
func (a AccountType) Valid() bool {
	return a >= AccountTypeInvalid && a <= AccountTypeAnonUser
}

// Number returns the numeric wire value of the AccountType as carried in
// the 4-bit type field of a packed identifier.
func (a AccountType) Number() uint64 {
	return uint64(a)
}

// TypeName returns "AccountType", the name of the type for logging and
// debugging. This method implements part of the model.Model interface.
func (a AccountType) TypeName() string {
	return "AccountType"
}

// Redacted returns the same string representation as String().
//
// AccountType values contain no account-identifying information, so the
// redacted form is identical to the regular string form. This method
// implements part of the model.Model interface.
func (a AccountType) Redacted() string {
	return a.String()
}

// IsZero reports whether the AccountType has its zero value.
//
// For AccountType the zero value is AccountTypeInvalid (constant 0), which
// is a defined constant of the wire format, so IsZero returning true does
// not by itself indicate an error condition. This method implements part of
// the model.Model interface.
func (a AccountType) IsZero() bool {
	return a == AccountTypeInvalid
}

// Equal reports whether this AccountType is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is an AccountType or *AccountType. This method implements part of the
// model.Model interface and is useful for comparisons in tests.
func (a AccountType) Equal(other any) bool {
	switch v := other.(type) {
	case AccountType:
		return a == v
	case *AccountType:
		if v == nil {
			return false
		}
		return a == *v
	default:
		return false
	}
}

// Validate checks whether the AccountType value is one of the defined
// constants, returning a *ValidationError carrying the numeric value when
// it is not. This method implements part of the model.Model interface.
func (a AccountType) Validate() error {
	if !a.Valid() {
		return &errors.ValidationError{
			Type:   "AccountType",
			Reason: "no account type with number " + strconv.Itoa(int(a)),
			Value:  int(a),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for AccountType.
//
// A valid AccountType is serialized as its lowercase string representation
// (for example, "individual"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce any JSON output.
func (a AccountType) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "AccountType", Value: int(a)}
	}
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for AccountType.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: the canonical names accepted by ParseAccountType.
//   - Number: the wire values 0 through 10.
//
// If the input cannot be parsed as either, or resolves to an invalid
// AccountType, UnmarshalJSON returns an *UnmarshalError describing the
// failure.
func (a *AccountType) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "AccountType", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "AccountType", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseAccountType(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "AccountType", Data: data, Reason: err.Error()}
	}
	*a = AccountType(i)
	if !a.Valid() {
		return &errors.UnmarshalError{Type: "AccountType", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for AccountType.
//
// A valid AccountType is serialized as its canonical string representation.
// If the value is not valid, MarshalYAML returns a *MarshalError.
func (a AccountType) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "AccountType", Value: int(a)}
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for AccountType, resolving
// string scalars via ParseAccountType. On failure, it returns the
// underlying *ParseError.
func (a *AccountType) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "AccountType", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseAccountType(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for AccountType.
//
// Textual form is the same lowercase string representation as used by
// String(). If the AccountType value is invalid, MarshalText returns a
// *MarshalError.
func (a AccountType) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, &errors.MarshalError{Type: "AccountType", Value: int(a)}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for AccountType,
// resolving the textual form via ParseAccountType.
func (a *AccountType) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountType(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Compile-time verification that AccountType implements model.Model.
var _ model.Model = (*AccountType)(nil)
