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
	"dirpx.dev/steamfx/steamcore/model/id"
	"gopkg.in/yaml.v3"
)

func TestParseID_Recognition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind id.Kind
	}{
		{"decimal", "76561197983318796", id.KindID64},
		{"steam prefixed", "STEAM_0:0:11526534", id.KindID32},
		{"code prefixed", "U:1:23053068", id.KindID3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := id.ParseID(tt.input)
			if err != nil {
				t.Fatalf("ParseID(%q) failed: %v", tt.input, err)
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("ParseID(%q).Kind() = %v, want %v", tt.input, got.Kind(), tt.wantKind)
			}
			if got.String() != tt.input {
				t.Errorf("ParseID(%q).String() = %q, want the input back", tt.input, got.String())
			}
		})
	}
}

func TestParseID_RejectsMalformed(t *testing.T) {
	tests := []string{
		"not-an-id",
		"STEAM_0:0",
		"U:23053068",
		"",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := id.ParseID(input)
			if err == nil {
				t.Fatalf("ParseID(%q) succeeded", input)
			}
			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Errorf("ParseID(%q) error = %T, want *errors.ParseError", input, err)
			}
		})
	}
}

func TestFromUint64(t *testing.T) {
	got, err := id.FromUint64(76561197983318796)
	if err != nil {
		t.Fatalf("FromUint64() failed: %v", err)
	}
	if got.Kind() != id.KindID64 {
		t.Errorf("Kind() = %v, want %v", got.Kind(), id.KindID64)
	}

	// Universe byte 6 does not decode.
	if _, err := id.FromUint64(432345564227567616); err == nil {
		t.Error("FromUint64() with unknown universe succeeded")
	}
}

func TestID_Conversions(t *testing.T) {
	id64 := id.FromID64(id.ID64(76561197983318796))
	id32 := id.FromID32(id.ID32("STEAM_0:0:11526534"))
	id3 := id.FromID3(id.ID3("U:1:23053068"))

	for _, v := range []id.ID{id64, id32, id3} {
		got64, err := v.ID64()
		if err != nil {
			t.Fatalf("ID64() from kind %v failed: %v", v.Kind(), err)
		}
		if got64 != id.ID64(76561197983318796) {
			t.Errorf("ID64() from kind %v = %d, want 76561197983318796", v.Kind(), got64)
		}

		got32, err := v.ID32()
		if err != nil {
			t.Fatalf("ID32() from kind %v failed: %v", v.Kind(), err)
		}
		if got32 != id.ID32("STEAM_0:0:11526534") {
			t.Errorf("ID32() from kind %v = %q, want STEAM_0:0:11526534", v.Kind(), got32)
		}
	}
}

func TestID_AsID64AsID32(t *testing.T) {
	id3 := id.FromID3(id.ID3("U:1:23053068"))

	as64, err := id3.AsID64()
	if err != nil {
		t.Fatalf("AsID64() failed: %v", err)
	}
	if as64.Kind() != id.KindID64 {
		t.Errorf("AsID64().Kind() = %v, want %v", as64.Kind(), id.KindID64)
	}
	if as64.String() != "76561197983318796" {
		t.Errorf("AsID64().String() = %q, want 76561197983318796", as64.String())
	}

	as32, err := id3.AsID32()
	if err != nil {
		t.Fatalf("AsID32() failed: %v", err)
	}
	if as32.Kind() != id.KindID32 {
		t.Errorf("AsID32().Kind() = %v, want %v", as32.Kind(), id.KindID32)
	}
	if as32.String() != "STEAM_0:0:11526534" {
		t.Errorf("AsID32().String() = %q, want STEAM_0:0:11526534", as32.String())
	}
}

func TestID_IsSame(t *testing.T) {
	id64 := id.FromID64(id.ID64(76561197983318796))
	id32 := id.FromID32(id.ID32("STEAM_0:0:11526534"))
	id3 := id.FromID3(id.ID3("U:1:23053068"))
	other := id.FromID64(id.ID64(76561197992396121))

	pairs := []struct {
		name string
		a, b id.ID
		want bool
	}{
		{"id3 and id32", id3, id32, true},
		{"id32 and id64", id32, id64, true},
		{"id3 and id64", id3, id64, true},
		{"different accounts", id64, other, false},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.IsSame(tt.b)
			if err != nil {
				t.Fatalf("IsSame() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsSame() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestID_IsSame_FailsOnEmpty(t *testing.T) {
	populated := id.FromID64(id.ID64(76561197983318796))
	if _, err := (id.ID{}).IsSame(populated); err == nil {
		t.Error("IsSame() on zero ID succeeded")
	}
}

func TestID_EqualIsStrict(t *testing.T) {
	id32 := id.FromID32(id.ID32("STEAM_0:0:11526534"))
	id3 := id.FromID3(id.ID3("U:1:23053068"))

	if id32.Equal(id3) {
		t.Error("Equal() across representations = true, want false")
	}
	if !id32.Equal(id.FromID32(id.ID32("STEAM_0:0:11526534"))) {
		t.Error("Equal() on identical representations = false, want true")
	}
}

func TestID_MarshalJSON_CanonicalDecimal(t *testing.T) {
	tests := []struct {
		name string
		id   id.ID
	}{
		{"id64", id.FromID64(id.ID64(76561197983318796))},
		{"id32", id.FromID32(id.ID32("STEAM_0:0:11526534"))},
		{"id3", id.FromID3(id.ID3("U:1:23053068"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.id)
			if err != nil {
				t.Fatalf("json.Marshal() failed: %v", err)
			}
			if string(data) != "76561197983318796" {
				t.Errorf("json.Marshal() = %s, want 76561197983318796", data)
			}
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind id.Kind
		wantText string
	}{
		{"number", "76561197983318796", id.KindID64, "76561197983318796"},
		{"decimal string", `"76561197983318796"`, id.KindID64, "76561197983318796"},
		{"steam string", `"STEAM_0:0:11526534"`, id.KindID32, "STEAM_0:0:11526534"},
		{"code string", `"U:1:23053068"`, id.KindID3, "U:1:23053068"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got id.ID
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("json.Unmarshal(%s) failed: %v", tt.input, err)
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got.Kind(), tt.wantKind)
			}
			if got.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantText)
			}
		})
	}

	var got id.ID
	if err := json.Unmarshal([]byte(`"not-an-id"`), &got); err == nil {
		t.Error("json.Unmarshal() of malformed text succeeded")
	}
}

func TestID_YAML(t *testing.T) {
	original := id.FromID32(id.ID32("STEAM_0:0:11526534"))
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}

	var decoded id.ID
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}

	// The canonical serialized form is the packed value, so the decoded ID
	// holds a different representation of the same account.
	if decoded.Kind() != id.KindID64 {
		t.Errorf("decoded Kind() = %v, want %v", decoded.Kind(), id.KindID64)
	}
	same, err := decoded.IsSame(original)
	if err != nil {
		t.Fatalf("IsSame() failed: %v", err)
	}
	if !same {
		t.Error("decoded ID is not the same account as the original")
	}
}

func TestID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      id.ID
		wantErr bool
	}{
		{"zero", id.ID{}, false},
		{"valid id64", id.FromID64(id.ID64(76561197983318796)), false},
		{"valid id32", id.FromID32(id.ID32("STEAM_0:0:11526534")), false},
		{"valid id3", id.FromID3(id.ID3("U:1:23053068")), false},
		{"undecodable id64", id.FromID64(id.ID64(432345564227567616)), true},
		{"malformed id32", id.FromID32(id.ID32("STEAM_0:0")), true},
		{"malformed id3", id.FromID3(id.ID3("U:23053068")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKind_ParseAndString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    id.Kind
		wantErr bool
	}{
		{"none", "none", id.KindNone, false},
		{"id64", "id64", id.KindID64, false},
		{"id32", "ID32", id.KindID32, false},
		{"id3", " id3 ", id.KindID3, false},
		{"unknown", "id128", id.KindNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := id.ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr {
				back, err := id.ParseKind(got.String())
				if err != nil || back != got {
					t.Errorf("round trip through String() failed: %v, %v", back, err)
				}
			}
		})
	}
}
