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

// Package errors provides reusable error types for the steamfx model packages.
//
// This package defines the common error types used across the steamfx
// packages (such as account, id, profile) when parsing, converting,
// marshaling and unmarshaling strongly typed identifier values. By
// centralizing these types, the package eliminates code duplication and
// provides a consistent error handling story across the entire steamfx
// surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / conversion / marshaling code,
//   - easy to recognize via type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing textual input into a steamfx type fails: an
//     identifier string that matches none of the known formats, an unknown
//     account type code, or a numeric capture that does not parse. The
//     original input is always carried in the error for diagnostics.
//
//   - RangeError
//     Returned when a numeric field does not fit the fixed bit width
//     reserved for it in the packed 64-bit identifier layout (for example,
//     an account number of 2^31 or larger).
//
//   - ValidationError
//     Returned when validation of a model type fails: a raw universe or
//     account type number outside its enumeration, or a composite value
//     whose fields violate the packed layout.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails. Use this
//     in MarshalJSON / MarshalYAML / MarshalText implementations to reject
//     values that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a steamfx type fails due to
//     invalid input, parse errors or constraint violations.
//
// # Usage
//
// Each package that defines identifier or enum-like types uses these error
// types directly:
//
//	import "dirpx.dev/steamfx/steamcore/errors"
//
//	func ParseUniverse(s string) (Universe, error) {
//	    switch s {
//	    case "public":
//	        return UniversePublic, nil
//	    default:
//	        return UniverseIndividualOrUnspecified,
//	            &errors.ParseError{Type: "Universe", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a steamfx value fails.
//
// Type identifies the logical type being parsed (for example, "ID32",
// "AccountType", "Universe"), and Value contains the exact string that could
// not be interpreted. Callers MAY pattern-match on Type to provide
// type-specific guidance to users, and SHOULD surface Value so that the
// offending input is visible in diagnostics.
//
// Conversion functions between identifier formats return ParseError whenever
// the source text does not match the anchored pattern of its format, so a
// ParseError from a conversion always carries the original identifier text.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "ID3").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"steamfx: invalid {Type} value: {Value}"
//
// For example:
//
//	"steamfx: invalid ID32 value: STEAM_0:0"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "steamfx: invalid " + e.Type + " value: " + e.Value
}

// RangeError is returned when a numeric field exceeds the range imposed by
// its fixed bit width in the packed 64-bit identifier layout.
//
// Type identifies the type being constructed (for example, "ID64"), Field
// names the offending field (for example, "Account"), Value carries the
// out-of-range number and Max the largest value the field can hold.
//
// Encoding routines check every field against its width before packing, so
// callers always receive a RangeError naming the precise field rather than a
// generic formatting or numeric-parse failure caused by silent truncation.
type RangeError struct {
	// Type is the logical name of the type being constructed.
	Type string

	// Field is the name of the field whose value does not fit its bit width.
	Field string

	// Value is the out-of-range value that was provided.
	Value uint64

	// Max is the maximum value the field can hold given its bit width.
	Max uint64
}

// Error implements the error interface for RangeError.
//
// The error message format is:
//
//	"steamfx: {Type}.{Field} value {Value} exceeds maximum {Max}"
//
// For example:
//
//	"steamfx: ID64.Account value 2147483648 exceeds maximum 2147483647"
func (e *RangeError) Error() string {
	return "steamfx: " + e.Type + "." + e.Field + " value " +
		strconv.FormatUint(e.Value, 10) + " exceeds maximum " +
		strconv.FormatUint(e.Max, 10)
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "AccountType"), and Value contains the underlying numeric value that was
// deemed invalid.
//
// This error is primarily a guardrail: it prevents invalid enum-like values
// from being silently emitted into JSON, YAML or other serialized forms. In
// most cases a MarshalError indicates a programming error (for example, an
// unchecked numeric cast).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"steamfx: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer. For example:
//
//	"steamfx: cannot marshal invalid Universe value: 6"
func (e *MarshalError) Error() string {
	return "steamfx: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "ID"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong (for
// example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their payload could not be interpreted.
// Callers MAY wrap UnmarshalError with additional context when propagating
// it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"steamfx: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"steamfx: cannot unmarshal Universe: empty data"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "steamfx: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Info", "ID64"), Field optionally identifies which field failed validation,
// Reason provides a human-readable explanation of the failure, and Value
// optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations, and by decoding routines when a raw numeric field
// extracted from a packed identifier does not correspond to any known
// enumeration constant.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"steamfx: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"steamfx: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"steamfx: invalid Info.Universe: no universe with number 6"
//	"steamfx: invalid ID32: value does not match the STEAM_U:S:A pattern"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "steamfx: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "steamfx: invalid " + e.Type + ": " + e.Reason
}
