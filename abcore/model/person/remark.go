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

package person

import (
	"encoding/json"
	"fmt"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"gopkg.in/yaml.v3"
)

// Remark is free text attached to a person. Any string is accepted,
// including the empty string, which means "no remark".
type Remark string

// NewRemark returns raw as a Remark. It never fails.
func NewRemark(raw string) Remark {
	return Remark(raw)
}

// String returns the remark unmasked.
func (r Remark) String() string {
	return string(r)
}

// Redacted reports only whether a remark is present; remarks are free text
// and may hold anything.
func (r Remark) Redacted() string {
	if r.IsZero() {
		return ""
	}
	return "[REDACTED]"
}

// TypeName returns "Remark".
func (r Remark) TypeName() string {
	return "Remark"
}

// IsZero reports whether the remark is empty. Unlike other value objects,
// the zero Remark is valid.
func (r Remark) IsZero() bool {
	return r == ""
}

// Validate always succeeds.
func (r Remark) Validate() error {
	return nil
}

// MarshalJSON encodes the remark as a JSON string.
func (r Remark) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// UnmarshalJSON decodes a JSON string into the remark.
func (r *Remark) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Remark", Data: data, Reason: err.Error()}
	}
	*r = Remark(str)
	return nil
}

// MarshalYAML encodes the remark as a YAML scalar.
func (r Remark) MarshalYAML() (interface{}, error) {
	return string(r), nil
}

// UnmarshalYAML decodes a YAML scalar into the remark.
func (r *Remark) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Remark", Data: []byte(node.Value), Reason: fmt.Sprintf("not a string: %v", err)}
	}
	*r = Remark(str)
	return nil
}

var _ model.Model = (*Remark)(nil)
