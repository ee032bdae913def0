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

// Package model defines the core contracts that all steamfx domain types
// MUST implement to ensure consistency, type safety, and proper behavior
// across the module.
//
// Every domain type representing identifier entities (such as Universe,
// AccountType, ID64, ID32, ID3, ID, Info, Profile) SHOULD implement the
// Model interface or its constituent parts (Validatable, Serializable,
// Loggable, Identifiable, ZeroCheckable). These interfaces establish a
// common contract for validation, serialization, logging, and identity that
// enables generic operations and guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid identifiers cannot be persisted or transmitted.
// Serialization provides round-trip guarantees for JSON payloads and YAML
// documents. Loggable protects account-identifying data from careless
// exposure in logs. Identifiable enables structured logging and precise
// error messages. ZeroCheckable supports optional field detection.
//
// All steamfx model types are immutable value types, making them naturally
// safe for concurrent read access. No locking is required anywhere in the
// module; the only discipline needed in a multi-goroutine host is standard
// value immutability. Unmarshal methods mutate their receiver and therefore
// require exclusive access for the duration of the call, as usual.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON, ToYAML,
// Clone, and Equal. These helpers rely on the Model contract and will fail
// at compile time if applied to types that do not implement Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for steamfx domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name;
// and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (only the
// unmarshal methods do). Concurrent reads are safe; concurrent writes
// require external synchronization.
//
// Example:
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
// Every model type MUST implement Validate to verify that all invariants
// hold and that the instance is suitable for use in conversion logic or
// transmission.
//
// Validate MUST check all constrained fields (for example, that an account
// number fits its 31-bit field, or that a raw universe number corresponds to
// a known enumeration constant), verify cross-field consistency, recursively
// validate any nested model values, and return nil if and only if the
// instance is fully valid. When validation fails, the returned error MUST
// describe what is invalid precisely; generic messages such as "validation
// failed" are discouraged in favor of messages like "no universe with
// number 6".
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT perform
// I/O, MUST NOT mutate the receiver, MUST NOT have side effects, and MUST
// NOT depend on external mutable state.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling, after constructing values from user input, and before
// handing identifiers to external collaborators.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML. All model types MUST support both
// formats: JSON for API payloads (such as the community profile record) and
// YAML for configuration-style documents and fixtures.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and MUST call Validate after unmarshaling so
// that deserialized data meets all invariants. If either check fails, the
// marshal or unmarshal method MUST return the validation error; callers
// MUST NOT use the receiver after a failed unmarshal.
//
// A value serialized to JSON and then deserialized MUST equal a
// semantically equivalent instance, and the same MUST hold for YAML. Note
// that for the ID union this round trip is intentionally lossy toward the
// canonical packed form: every variant serializes as its 64-bit decimal
// value, so a textual variant deserializes back as the packed variant. This
// asymmetry is part of the wire contract, not a defect.
//
// Implementations of struct-shaped models SHOULD use the "type alias"
// pattern to avoid infinite recursion: define a local alias of the model
// type, cast the receiver, and delegate to the encoder.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// Redacted returns a representation suitable for production logging. Steam
// identifiers are pseudonymous rather than secret, but they still correlate
// to real accounts; Redacted implementations SHOULD therefore shorten or
// mask the account-identifying portion while keeping enough information to
// correlate log entries. Redacted MUST be fast, MUST NOT perform I/O, MUST
// NOT mutate the receiver and MUST be safe to call concurrently.
//
// String returns the full human-readable representation and MAY include the
// complete identifier. It is intended for development, debugging, test
// assertions and internal tooling. Production logging SHOULD prefer
// Redacted.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production, with account-identifying data shortened or masked.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Redacted() string

	// String returns the full human-readable representation of the
	// instance. Use Redacted instead for production logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The name returned by TypeName MUST be constant for a given type, unique
// within the steamfx domain, in CamelCase (for example, "ID64", "Universe",
// "Profile"), and without a package prefix. Type names appear in error
// messages, structured log fields and test diagnostics.
//
// TypeName MUST be fast, MUST NOT allocate, MUST NOT have side effects and
// MUST be safe to call concurrently. It SHOULD return a string constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection and
// conditional logic based on whether an instance contains meaningful data.
//
// An instance is considered zero when it carries no meaningful data: an
// empty ID32 string, an ID union with no variant set, a Profile with all
// fields empty. Note that for enum types the zero constant MAY be a valid
// value (AccountTypeInvalid and UniverseIndividualOrUnspecified are both
// zero and legal), so IsZero returning true does not by itself indicate an
// error condition.
//
// IsZero MUST be fast, deterministic and idempotent. It MUST NOT allocate,
// MUST NOT have side effects and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or conversion logic.
//
// Equal MUST be reflexive, symmetric, transitive and consistent. Equal
// SHOULD compare all semantically significant fields and ignore internal or
// cached state.
//
// For the ID union, Equal compares the stored variant and payload strictly;
// two IDs holding the same account in different textual formats are NOT
// Equal. Semantic identity across formats is an explicit, fallible
// operation (IsSame) because it requires conversion that can fail.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	//
	// This method MUST NOT mutate the receiver or the argument, MUST NOT
	// have side effects, and MUST be safe to call concurrently.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; all steamfx model types are plain
// immutable values for which assignment already produces an independent
// copy, so implementations typically return the receiver.
//
// Clone MUST create a copy that shares no mutable state with the original,
// MUST NOT mutate the receiver, MUST NOT have side effects, and MUST be
// safe to call concurrently.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Clone() T
}
