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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"ID32 type",
			&ParseError{Type: "ID32", Value: "STEAM_0:0"},
			"steamfx: invalid ID32 value: STEAM_0:0",
		},
		{
			"ID3 type",
			&ParseError{Type: "ID3", Value: "U:23053068"},
			"steamfx: invalid ID3 value: U:23053068",
		},
		{
			"AccountType code",
			&ParseError{Type: "AccountType", Value: "XX"},
			"steamfx: invalid AccountType value: XX",
		},
		{
			"empty value",
			&ParseError{Type: "ID", Value: ""},
			"steamfx: invalid ID value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RangeError
		want string
	}{
		{
			"account exceeds 31 bits",
			&RangeError{Type: "ID64", Field: "Account", Value: 2147483648, Max: 2147483647},
			"steamfx: ID64.Account value 2147483648 exceeds maximum 2147483647",
		},
		{
			"instance exceeds 20 bits",
			&RangeError{Type: "ID64", Field: "Instance", Value: 1048576, Max: 1048575},
			"steamfx: ID64.Instance value 1048576 exceeds maximum 1048575",
		},
		{
			"auth server exceeds 1 bit",
			&RangeError{Type: "ID64", Field: "AuthServer", Value: 2, Max: 1},
			"steamfx: ID64.AuthServer value 2 exceeds maximum 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("RangeError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"universe out of range",
			&MarshalError{Type: "Universe", Value: 6},
			"steamfx: cannot marshal invalid Universe value: 6",
		},
		{
			"account type out of range",
			&MarshalError{Type: "AccountType", Value: 11},
			"steamfx: cannot marshal invalid AccountType value: 11",
		},
		{
			"negative value",
			&MarshalError{Type: "OnlineState", Value: -1},
			"steamfx: cannot marshal invalid OnlineState value: -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Universe", Data: []byte{}, Reason: "empty data"},
			"steamfx: cannot unmarshal Universe: empty data",
		},
		{
			"invalid numeric value",
			&UnmarshalError{Type: "AccountType", Data: []byte("11"), Reason: "invalid numeric value"},
			"steamfx: cannot unmarshal AccountType: invalid numeric value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Info", Field: "Universe", Reason: "no universe with number 6"},
			"steamfx: invalid Info.Universe: no universe with number 6",
		},
		{
			"without field",
			&ValidationError{Type: "ID32", Reason: "value does not match the STEAM_U:S:A pattern"},
			"steamfx: invalid ID32: value does not match the STEAM_U:S:A pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var errs = []error{
		&ParseError{Type: "ID", Value: "x"},
		&RangeError{Type: "ID64", Field: "Account", Value: 1, Max: 0},
		&MarshalError{Type: "Universe", Value: 6},
		&UnmarshalError{Type: "ID", Data: nil, Reason: "bad"},
		&ValidationError{Type: "Info", Reason: "bad"},
	}
	for _, err := range errs {
		if err.Error() == "" {
			t.Errorf("error %T produced empty message", err)
		}
	}
}
