/*
   Copyright 2025 The tp Authors

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

// Package model defines the contracts shared by abcore domain types and a
// small set of generic helpers built on them.
//
// Value objects (Name, Email, Phone, TeleHandle, ModuleCode, Remark, Tag)
// implement the full Model interface. Aggregates such as Person implement
// only the parts that make sense for them: they are validated, logged and
// identified, but their persisted form is owned by the storage package.
//
// Model types are immutable value types. Methods defined by these
// contracts MUST NOT mutate the receiver, which makes every implementation
// safe for concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for abcore value objects.
//
// Example implementation:
//
//	type Code string
//
//	func (c Code) Validate() error {
//	    if !CodeRegexp.MatchString(string(c)) {
//	        return &errors.ConstraintError{Type: "Code", Value: string(c), Message: CodeConstraints}
//	    }
//	    return nil
//	}
//
//	func (c Code) TypeName() string { return "Code" }
//	func (c Code) IsZero() bool     { return c == "" }
//	func (c Code) Redacted() string { return c.String() }
//	func (c Code) String() string   { return string(c) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Code)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Entity is the subset of Model implemented by aggregates whose
// serialized form is owned by a separate transport type.
type Entity interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST return nil if and only if the instance satisfies all of its
// invariants. When validation fails the returned error MUST describe what
// is invalid; value objects return *errors.ConstraintError carrying their
// fixed constraint message. Validate MUST be fast, deterministic and free
// of side effects.
type Validatable interface {
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML. Implementations MUST validate before marshaling and after
// unmarshaling, so that invalid values never cross a serialization
// boundary.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// Redacted returns a representation suitable for production logs: contact
// details such as email addresses, phone numbers and messaging handles
// MUST be masked. String returns the full human-readable representation
// and MAY contain personal data; it is what the shell displays to the user.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable defines the contract for types that report a canonical,
// constant type name (for example, "Phone"). The name is used in error
// messages and structured log fields.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they hold their zero value. For most value objects the zero value is
// "absent" and fails validation; Remark is the exception.
type ZeroCheckable interface {
	IsZero() bool
}
