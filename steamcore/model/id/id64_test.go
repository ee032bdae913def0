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

package id_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/steamfx/steamcore/errors"
	"dirpx.dev/steamfx/steamcore/model/account"
	"dirpx.dev/steamfx/steamcore/model/id"
	"gopkg.in/yaml.v3"
)

func TestID64_Info(t *testing.T) {
	info, err := id.ID64(76561197983318796).Info()
	if err != nil {
		t.Fatalf("Info() failed: %v", err)
	}

	want := id.Info{
		Universe:    account.UniversePublic,
		AccountType: account.AccountTypeIndividual,
		Instance:    1,
		Account:     11526534,
		AuthServer:  0,
	}
	if !info.Equal(want) {
		t.Errorf("Info() = %+v, want %+v", info, want)
	}
}

func TestID64_Info_UnknownEnumerants(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		// Universe byte 6 is past the last known universe.
		{"unknown universe", 6 << 56},
		// Account type nibble 11 is past the last known account type.
		{"unknown account type", 1<<56 | 11<<52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := id.ID64(tt.value).Info()
			if err == nil {
				t.Fatal("Info() on malformed value succeeded")
			}
			var verr *errors.ValidationError
			if !stderrors.As(err, &verr) {
				t.Errorf("Info() error = %T, want *errors.ValidationError", err)
			}
		})
	}
}

func TestNewID64Full(t *testing.T) {
	got, err := id.NewID64Full(account.UniversePublic, account.AccountTypeIndividual, 1, 0, 11526534)
	if err != nil {
		t.Fatalf("NewID64Full() failed: %v", err)
	}
	if got != id.ID64(76561197983318796) {
		t.Errorf("NewID64Full() = %d, want 76561197983318796", got)
	}
}

func TestNewID64Full_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name        string
		universe    account.Universe
		accountType account.AccountType
		instance    uint32
		authServer  uint8
		account     uint32
		wantField   string
	}{
		{"instance too wide", account.UniversePublic, account.AccountTypeIndividual, 1 << 20, 0, 1, "Instance"},
		{"account too wide", account.UniversePublic, account.AccountTypeIndividual, 1, 0, 1 << 31, "Account"},
		{"auth server too wide", account.UniversePublic, account.AccountTypeIndividual, 1, 2, 1, "AuthServer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := id.NewID64Full(tt.universe, tt.accountType, tt.instance, tt.authServer, tt.account)
			var rerr *errors.RangeError
			if !stderrors.As(err, &rerr) {
				t.Fatalf("NewID64Full() error = %v, want *errors.RangeError", err)
			}
			if rerr.Field != tt.wantField {
				t.Errorf("RangeError.Field = %q, want %q", rerr.Field, tt.wantField)
			}
		})
	}
}

func TestNewID64Full_RejectsUnknownEnumerants(t *testing.T) {
	if _, err := id.NewID64Full(account.Universe(6), account.AccountTypeIndividual, 1, 0, 1); err == nil {
		t.Error("NewID64Full() with unknown universe succeeded")
	}
	if _, err := id.NewID64Full(account.UniversePublic, account.AccountType(11), 1, 0, 1); err == nil {
		t.Error("NewID64Full() with unknown account type succeeded")
	}
}

func TestNewID64Simple(t *testing.T) {
	got, err := id.NewID64Simple(account.UniversePublic, 0, 11526534)
	if err != nil {
		t.Fatalf("NewID64Simple() failed: %v", err)
	}
	if got != id.ID64(76561197983318796) {
		t.Errorf("NewID64Simple() = %d, want 76561197983318796", got)
	}
}

func TestID64_ID32(t *testing.T) {
	got, err := id.ID64(76561197983318796).ID32()
	if err != nil {
		t.Fatalf("ID32() failed: %v", err)
	}
	if got != id.ID32("STEAM_0:0:11526534") {
		t.Errorf("ID32() = %q, want %q", got, "STEAM_0:0:11526534")
	}
}

func TestParseID64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    id.ID64
		wantErr bool
	}{
		{"valid", "76561197983318796", id.ID64(76561197983318796), false},
		{"not a number", "abc", 0, true},
		{"negative", "-1", 0, true},
		{"unknown universe", "432345564227567616", 0, true}, // universe byte 6
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := id.ParseID64(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID64(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseID64(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestID64_String(t *testing.T) {
	if got := id.ID64(76561197983318796).String(); got != "76561197983318796" {
		t.Errorf("String() = %q, want %q", got, "76561197983318796")
	}
}

func TestID64_Redacted(t *testing.T) {
	if got := id.ID64(76561197983318796).Redacted(); got != "**************796" {
		t.Errorf("Redacted() = %q, want %q", got, "**************796")
	}
}

func TestID64_IsZero(t *testing.T) {
	if !id.ID64(0).IsZero() {
		t.Error("IsZero() on 0 = false, want true")
	}
	if id.ID64(76561197983318796).IsZero() {
		t.Error("IsZero() on populated value = true, want false")
	}
}

func TestID64_JSON(t *testing.T) {
	data, err := json.Marshal(id.ID64(76561197983318796))
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	if string(data) != "76561197983318796" {
		t.Errorf("json.Marshal() = %s, want 76561197983318796", data)
	}

	tests := []struct {
		name    string
		input   string
		want    id.ID64
		wantErr bool
	}{
		{"number", "76561197983318796", id.ID64(76561197983318796), false},
		{"string", `"76561197983318796"`, id.ID64(76561197983318796), false},
		{"not a number", `"abc"`, 0, true},
		{"empty string", `""`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got id.ID64
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalJSON(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestID64_YAMLRoundTrip(t *testing.T) {
	original := id.ID64(76561197983318796)
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	var decoded id.ID64
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %d, want %d", decoded, original)
	}
}
