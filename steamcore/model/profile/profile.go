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

package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model"
	"dirpx.dev/steamfx/steamcore/model/id"
	"gopkg.in/yaml.v3"
)

// lookupURLFormat is the endpoint template for profile lookups by packed
// identifier.
const lookupURLFormat = "http://steamid.co/php/api.php?action=steamID64&id=%d"

// LookupURL builds the URL that fetches the community profile for the
// given identifier.
//
// The endpoint only understands the packed form, so the identifier is
// converted first; the error, if any, is the conversion's.
func LookupURL(v id.ID) (string, error) {
	id64, err := v.ID64()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(lookupURLFormat, uint64(id64)), nil
}

// VACFlag is a boolean that tolerates the spellings profile lookup
// services actually emit.
//
// The services are inconsistent about booleans: the same field arrives as
// the strings "0" and "1", as bare numbers, or as proper JSON booleans,
// varying by endpoint and sometimes by profile. VACFlag accepts all of
// them and always marshals back to a proper boolean.
type VACFlag bool

// UnmarshalJSON implements json.Unmarshaler for VACFlag.
//
// Accepted inputs: JSON booleans, the numbers 0 and 1, and strings
// holding "true", "false" or a number (a nonzero number is true).
// Anything else yields an *UnmarshalError.
func (f *VACFlag) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) == 0 {
		return &errors.UnmarshalError{Type: "VACFlag", Data: data, Reason: "empty data"}
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return &errors.UnmarshalError{Type: "VACFlag", Data: data, Reason: err.Error()}
		}
		s = strings.TrimSpace(unquoted)
	}

	switch strings.ToLower(s) {
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &errors.UnmarshalError{Type: "VACFlag", Data: data, Reason: "not a recognizable boolean"}
	}
	*f = n != 0
	return nil
}

// MarshalJSON implements json.Marshaler for VACFlag, always emitting a
// proper JSON boolean regardless of the spelling it was read from.
func (f VACFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// MarshalYAML implements yaml.Marshaler for VACFlag, emitting a proper
// boolean.
func (f VACFlag) MarshalYAML() (any, error) {
	return bool(f), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for VACFlag, with the same
// tolerance as UnmarshalJSON.
func (f *VACFlag) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "VACFlag", Data: []byte(node.Value), Reason: err.Error()}
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		*f = true
		return nil
	case "false":
		*f = false
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &errors.UnmarshalError{Type: "VACFlag", Data: []byte(node.Value), Reason: "not a recognizable boolean"}
	}
	*f = n != 0
	return nil
}

// Bool returns the flag as a plain bool.
func (f VACFlag) Bool() bool {
	return bool(f)
}

// Profile is a community profile as returned by the lookup endpoint.
//
// Only the fields this package consumes are mapped; the endpoint returns
// many more (avatars, groups, most played games) that are ignored during
// unmarshaling. The field names mirror the endpoint's camelCase keys.
type Profile struct {
	// SteamID is the identifier of this profile. The endpoint emits it as
	// a quoted decimal string under the steamID64 key.
	SteamID id.ID `json:"steamID64" yaml:"steamID64"`

	// Name is the profile's display name, confusingly keyed steamID by
	// the endpoint.
	Name string `json:"steamID" yaml:"steamID"`

	// MemberSince is the free-form registration date, for example
	// "September 7th, 2007".
	MemberSince string `json:"memberSince" yaml:"memberSince"`

	// OnlineState is the player's current presence status.
	OnlineState OnlineState `json:"onlineState" yaml:"onlineState"`

	// VACBanned reports whether the profile has been banned by VAC.
	VACBanned VACFlag `json:"vacBanned" yaml:"vacBanned"`

	// StateMessage is the free-form status line, for example
	// "Last Online 8 hrs, 59 mins ago".
	StateMessage string `json:"stateMessage" yaml:"stateMessage"`
}

// String returns a short human-readable summary of the profile. This
// method implements part of the model.Model interface.
func (p Profile) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.SteamID.String(), p.OnlineState)
}

// Redacted returns the summary with the identifier masked. The display
// name is public information; the identifier is what links profiles across
// services. This method implements part of the model.Model interface.
func (p Profile) Redacted() string {
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.SteamID.Redacted(), p.OnlineState)
}

// TypeName returns "Profile", the name of the type for logging and
// debugging. This method implements part of the model.Model interface.
func (p Profile) TypeName() string {
	return "Profile"
}

// IsZero reports whether the profile is entirely unset. This method
// implements part of the model.Model interface.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// Equal reports whether two profiles carry identical fields.
func (p Profile) Equal(other Profile) bool {
	return p == other
}

// Validate checks the profile's identifier; the remaining fields are
// free-form text the endpoint controls and carry no constraints to check.
// This method implements part of the model.Model interface.
func (p Profile) Validate() error {
	if err := p.SteamID.Validate(); err != nil {
		return fmt.Errorf("steamfx: invalid Profile: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Profile, refusing to emit a
// profile whose identifier does not validate.
func (p Profile) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias Profile
	return json.Marshal((alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler for Profile, validating the
// decoded fields before accepting them. Keys the struct does not map are
// ignored.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &errors.UnmarshalError{Type: "Profile", Data: data, Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Profile is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Profile.
func (p Profile) MarshalYAML() (any, error) {
	type alias Profile
	return alias(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Profile.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	type alias Profile
	var a alias
	if err := node.Decode(&a); err != nil {
		return &errors.UnmarshalError{Type: "Profile", Data: []byte(node.Value), Reason: err.Error()}
	}
	*p = Profile(a)
	return nil
}

// Compile-time verification that Profile implements model.Model.
var _ model.Model = (*Profile)(nil)
