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

// Package errors provides the error types shared by every abcore package.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing, validation and storage code,
//   - easy to recognize via errors.As,
//   - and easy for users to understand when surfaced in the shell.
//
// # Error Types
//
//   - ConstraintError
//     Returned when a raw string fails the format rule of a value object
//     (Name, Email, Phone, TeleHandle, ModuleCode, Tag). Error() is the
//     fixed, user-facing constraint message of that value object.
//
//   - NullFieldError
//     Returned when an aggregate is constructed with a required field left
//     at its zero value.
//
//   - UnsupportedMutationError
//     Returned by read-only views (such as the module code and tag sets of
//     a Person) when a write is attempted.
//
//   - ParseError
//     Returned when command text or an enum-like string cannot be parsed.
//
//   - IllegalValueError
//     Returned when a stored record fails validation during load.
//
//   - CommandError
//     Returned when a well-formed command cannot be executed against the
//     current model state.
//
//   - DuplicateError, NotFoundError
//     Returned by unique collections.
//
//   - DataLoadingError
//     Returned by storage when a data file cannot be read or converted.
//
//   - MarshalError, UnmarshalError, ValidationError
//     Returned by model codecs and Validate implementations.
//
// All types use pointer receivers and are matched with errors.As.
package errors

import "strconv"

// ConstraintError is returned when a raw value violates the format rule of
// a value object.
type ConstraintError struct {
	// Type is the logical name of the value object (for example, "Phone").
	Type string

	// Value is the rejected raw input.
	Value string

	// Message is the fixed human-readable constraint description of Type.
	Message string
}

// Error returns the error message.
func (e *ConstraintError) Error() string {
	return e.Message
}

// NullFieldError is returned when a required field of an aggregate is
// missing.
type NullFieldError struct {
	Type  string
	Field string
}

// Error returns the error message.
func (e *NullFieldError) Error() string {
	return "abcore: " + e.Type + "." + e.Field + " must be present"
}

// UnsupportedMutationError is returned when a write is attempted through a
// read-only view.
type UnsupportedMutationError struct {
	// Type is the logical name of the read-only view (for example, "Set").
	Type string

	// Op is the rejected operation (for example, "Add").
	Op string
}

// Error returns the error message.
func (e *UnsupportedMutationError) Error() string {
	return "abcore: unsupported mutation " + e.Type + "." + e.Op + " on read-only view"
}

// ParseError is returned when parsing text fails.
//
// Command parsers set Message to the usage or disambiguation text shown to
// the user. Enum-like parsers leave Message empty and fill Type and Value.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Backend").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Message, when set, replaces the generated message verbatim.
	Message string
}

// Error returns the error message.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "abcore: invalid " + e.Type + " value: " + e.Value
}

// IllegalValueError is returned when a stored record cannot be converted
// into a model value. Message reports the first problem found.
type IllegalValueError struct {
	Message string
}

// Error returns the error message.
func (e *IllegalValueError) Error() string {
	return e.Message
}

// CommandError is returned when a command fails during execution.
type CommandError struct {
	Message string
}

// Error returns the error message.
func (e *CommandError) Error() string {
	return e.Message
}

// DuplicateError is returned when an element equivalent to Key already
// exists in a unique collection.
type DuplicateError struct {
	Type string
	Key  string
}

// Error returns the error message.
func (e *DuplicateError) Error() string {
	return "abcore: duplicate " + e.Type + ": " + e.Key
}

// NotFoundError is returned when an element is absent from a collection.
type NotFoundError struct {
	Type string
	Key  string
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return "abcore: " + e.Type + " not found: " + e.Key
}

// DataLoadingError is returned when a data file cannot be loaded.
type DataLoadingError struct {
	// Path is the file (or database) the data was read from.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error returns the error message.
func (e *DataLoadingError) Error() string {
	return "abcore: cannot load data from " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *DataLoadingError) Unwrap() error {
	return e.Err
}

// MarshalError is returned when an enum-like value without a known constant
// is marshaled.
type MarshalError struct {
	Type  string
	Value int
}

// Error returns the error message.
func (e *MarshalError) Error() string {
	return "abcore: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when decoding data into a model type fails.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short explanation of the failure. It SHOULD NOT repeat
	// the type name.
	Reason string
}

// Error returns the error message.
func (e *UnmarshalError) Error() string {
	return "abcore: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate implementations.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "abcore: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "abcore: invalid " + e.Type + ": " + e.Reason
}
