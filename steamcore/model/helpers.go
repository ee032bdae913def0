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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, aggregated into a single error.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with the model's position in the slice (zero-indexed) and its type name,
// so callers can identify exactly which models failed and why. Failures are
// collected with rxmerr.Collector; the whole slice is always processed even
// when early elements fail, ensuring complete error reporting.
//
// Empty slices are considered valid and return nil.
//
// The Model contract is satisfied by pointer types (UnmarshalJSON and
// UnmarshalYAML mutate the receiver), so the helpers in this file are
// instantiated with pointers. Example usage for batch validation of
// parsed identifiers:
//
//	ids := []*id.ID{a, b, c}
//	if err := model.ValidateAll(ids); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models, removing
// all instances where IsZero reports true. This is useful for cleaning
// collections of optional values before validation or serialization.
//
// The returned slice is always a fresh allocation and never shares backing
// storage with the input. If all models in the input are zero, or the input
// is empty or nil, FilterZero returns an empty non-nil slice. The function
// does not validate models; it only checks for zero values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It is
// intended for contexts where an invalid model represents a programming
// error rather than bad input: test fixtures, package-level constants, and
// initialization code. Callers MUST NOT use MustValidate on untrusted
// input; every parse and conversion entry point in steamfx returns an error
// for that purpose instead.
//
// On success the model is returned unchanged, allowing inline use:
//
//	info := model.MustValidate(&id.Info{
//	    Universe:    account.UniversePublic,
//	    AccountType: account.AccountTypeIndividual,
//	    Instance:    1,
//	    Account:     23053068,
//	})
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default, or the full representation when explicitly requested.
//
// When unsafe is false (the recommended value for production logging),
// SafeString returns the model's Redacted form. When unsafe is true, it
// returns the full String form, which MAY carry the complete account
// identifier; callers SHOULD only request it in controlled debugging
// scenarios.
//
// The function provides a single call site for logging decisions, keeping
// the choice between safe and full representations explicit in the code:
//
//	log.Info("resolved", "id", model.SafeString(&v, false))
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// The model's Validate method is invoked first; if it fails, ToJSON returns
// the validation error wrapped with the model's type name and no marshaling
// is attempted, so invalid identifiers never reach the encoder. On success
// the model is serialized with json.Marshal, invoking any custom
// MarshalJSON implementation (for the ID union this emits the canonical
// packed decimal value).
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// Behavior mirrors ToJSON: validation first, then yaml.Marshal with any
// custom MarshalYAML implementation. The validation error is returned
// wrapped with the model's type name when the model is invalid.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result, so that
// malformed identifiers from external sources are rejected at the boundary
// rather than propagating into conversion logic.
//
// Callers MUST provide a pointer to the destination model. Because the
// Model contract is satisfied by pointer types, the destination is a
// pointer to the model pointer. If FromJSON returns an error, the
// destination's state is undefined and MUST NOT be used.
//
//	var p profile.Profile
//	dst := &p
//	if err := model.FromJSON(data, &dst); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
// Behavior mirrors FromJSON for YAML input.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model via a JSON round trip, working for
// any Model type without type-specific copy logic.
//
// Note that for the ID union this round trip normalizes the value to its
// canonical packed variant, because ID serializes as the 64-bit decimal
// form. Steamfx model types are otherwise plain values for which assignment
// is already an independent copy; Clone exists for generic code operating
// on the Model interface.
//
// Callers MUST check the returned error before using the clone.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the representations byte-for-byte. If either marshaling fails,
// Equal returns false rather than mistaking an error for inequality.
//
// Because the ID union serializes as its canonical packed decimal value,
// this generic Equal judges two IDs in different textual formats of the
// same account as equal, matching the semantics of ID.IsSame rather than
// the strict variant comparison of ID.Equal. Types that need strict
// comparison implement Comparable and SHOULD be compared via their own
// Equal method.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
