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

// Package profile implements the community profile boundary: the payload
// returned by profile lookup services and the URL builder pointing at
// them.
//
// Profile payloads come from third-party community endpoints with loose
// typing conventions (booleans as "0"/"1" strings, free-form status
// values), so the types in this package are deliberately tolerant when
// unmarshaling and strict when marshaling.
package profile

import (
	"encoding/json"
	"strings"

	"dirpx.dev/steamfx/steamcore/errors"
	"gopkg.in/yaml.v3"
)

// OnlineState is a player's presence status as reported by profile lookup
// services.
//
// Services spell the known states "offline", "online" and "in-game"; any
// other value in a payload maps to OnlineStateOther rather than failing
// the whole profile, because the set of statuses the services emit is not
// documented anywhere.
type OnlineState int

const (
	// OnlineStateOffline means the player is offline.
	OnlineStateOffline OnlineState = iota

	// OnlineStateOnline means the player is online.
	OnlineStateOnline

	// OnlineStateInGame means the player is playing or in game.
	OnlineStateInGame

	// OnlineStateOther is any status the known states do not cover.
	OnlineStateOther
)

// String constants for the OnlineState values, as the lookup services
// spell them on the wire.
const (
	OnlineStateOfflineStr = "offline"
	OnlineStateOnlineStr  = "online"
	OnlineStateInGameStr  = "in-game"
	OnlineStateOtherStr   = "other"
)

// ParseOnlineState parses a wire string into an OnlineState value. Unlike
// unmarshaling, parsing is strict: a string that names no known state
// yields a *ParseError instead of OnlineStateOther.
func ParseOnlineState(s string) (OnlineState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case OnlineStateOfflineStr:
		return OnlineStateOffline, nil
	case OnlineStateOnlineStr:
		return OnlineStateOnline, nil
	case OnlineStateInGameStr, "ingame", "in game":
		return OnlineStateInGame, nil
	case OnlineStateOtherStr:
		return OnlineStateOther, nil
	default:
		return OnlineStateOther, &errors.ParseError{Type: "OnlineState", Value: s}
	}
}

// String returns a human-readable form of the state, suitable for display.
func (s OnlineState) String() string {
	switch s {
	case OnlineStateOffline:
		return "Offline"
	case OnlineStateOnline:
		return "Online"
	case OnlineStateInGame:
		return "In game"
	default:
		return "Other"
	}
}

// wire returns the on-the-wire spelling of the state.
func (s OnlineState) wire() string {
	switch s {
	case OnlineStateOffline:
		return OnlineStateOfflineStr
	case OnlineStateOnline:
		return OnlineStateOnlineStr
	case OnlineStateInGame:
		return OnlineStateInGameStr
	default:
		return OnlineStateOtherStr
	}
}

// Valid reports whether the state is one of the known values.
func (s OnlineState) Valid() bool {
	switch s {
	case OnlineStateOffline, OnlineStateOnline, OnlineStateInGame, OnlineStateOther:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler for OnlineState, emitting the wire
// spelling.
func (s OnlineState) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "OnlineState", Value: int(s)}
	}
	return json.Marshal(s.wire())
}

// UnmarshalJSON implements json.Unmarshaler for OnlineState.
//
// Unmarshaling is tolerant: a string that names no known state becomes
// OnlineStateOther, so an undocumented status value from a lookup service
// never fails the profile it arrived in. Non-string input is still an
// error.
func (s *OnlineState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "OnlineState", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseOnlineState(str)
	if err != nil {
		*s = OnlineStateOther
		return nil
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for OnlineState, emitting the wire
// spelling.
func (s OnlineState) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "OnlineState", Value: int(s)}
	}
	return s.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for OnlineState, with the same
// tolerance as UnmarshalJSON.
func (s *OnlineState) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "OnlineState", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseOnlineState(str)
	if err != nil {
		*s = OnlineStateOther
		return nil
	}
	*s = parsed
	return nil
}
