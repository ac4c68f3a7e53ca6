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

package model

import (
	"fmt"

	"dirpx.dev/rxmerr"
)

// Checkable is the constraint satisfied by every type that can be
// validated and named in an error message.
type Checkable interface {
	Validatable
	Identifiable
}

// ValidateAll validates a slice of models and returns all validation errors
// encountered, rather than stopping at the first failure.
//
// Each failure is wrapped with the model's position in the slice
// (zero-indexed) and its type name. Failures are aggregated with an
// rxmerr.Collector; a nil result means every model is valid. Empty slices
// are valid.
//
// Example:
//
//	if err := model.ValidateAll(book.Persons()); err != nil {
//	    return fmt.Errorf("refusing to save: %w", err)
//	}
func ValidateAll[T Checkable](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// SafeString returns the Redacted form of m unless unsafe is set, in which
// case the full String form is returned. Loggers use it to keep personal
// data out of logs unless verbose output was requested.
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}
