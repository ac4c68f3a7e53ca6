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
	"regexp"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// moduleCodeFmt matches course codes such as "CS2030S", "MA1521" or
	// "GEA1000N": a 2-4 letter prefix, four digits and up to two suffix
	// letters.
	moduleCodeFmt = `^[A-Za-z]{2,4}\d{4}[A-Za-z]{0,2}$`

	// ModuleCodeConstraints is the message reported when a module code is
	// rejected.
	ModuleCodeConstraints = "Module codes should start with 2 to 4 letters, followed by 4 digits " +
		"and at most 2 optional letters, e.g. CS2030S"
)

// ModuleCodeRegexp is the compiled form of moduleCodeFmt.
var ModuleCodeRegexp = regexp.MustCompile(moduleCodeFmt)

// ModuleCode is a university course code a person takes or teaches.
//
// Module codes are stored in upper case, so "cs2030s" and "CS2030S" are the
// same ModuleCode. Like Tag, String renders the code wrapped in square
// brackets ("[CS2030S]"), and module searches match against that form.
type ModuleCode string

// IsValidModuleCode reports whether raw is a valid module code.
func IsValidModuleCode(raw string) bool {
	return ModuleCodeRegexp.MatchString(raw)
}

// NewModuleCode trims and upper-cases raw and returns it as a ModuleCode,
// or fails with *errors.ConstraintError carrying ModuleCodeConstraints.
func NewModuleCode(raw string) (ModuleCode, error) {
	trimmed := strings.TrimSpace(raw)
	if !IsValidModuleCode(trimmed) {
		return "", &errors.ConstraintError{Type: "ModuleCode", Value: raw, Message: ModuleCodeConstraints}
	}
	return ModuleCode(strings.ToUpper(trimmed)), nil
}

// Code returns the module code without brackets.
func (m ModuleCode) Code() string {
	return string(m)
}

// String returns the code wrapped in square brackets.
func (m ModuleCode) String() string {
	return "[" + string(m) + "]"
}

// Redacted returns the module code unmasked.
func (m ModuleCode) Redacted() string {
	return m.String()
}

// TypeName returns "ModuleCode".
func (m ModuleCode) TypeName() string {
	return "ModuleCode"
}

// IsZero reports whether the module code is empty.
func (m ModuleCode) IsZero() bool {
	return m == ""
}

// Validate also rejects codes that are not in canonical upper case; use
// NewModuleCode to normalize user input.
func (m ModuleCode) Validate() error {
	if !IsValidModuleCode(string(m)) || strings.ToUpper(string(m)) != string(m) {
		return &errors.ConstraintError{Type: m.TypeName(), Value: string(m), Message: ModuleCodeConstraints}
	}
	return nil
}

// MarshalJSON encodes the module code as a JSON string after validating it.
func (m ModuleCode) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(string(m))
}

// UnmarshalJSON decodes a JSON string and validates it as a module code.
func (m *ModuleCode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "ModuleCode", Data: data, Reason: err.Error()}
	}
	parsed, err := NewModuleCode(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "ModuleCode", Data: data, Reason: err.Error()}
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes the module code as a YAML scalar after validating it.
func (m ModuleCode) MarshalYAML() (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return string(m), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it as a module code.
func (m *ModuleCode) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "ModuleCode", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewModuleCode(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "ModuleCode", Data: []byte(node.Value), Reason: err.Error()}
	}
	*m = parsed
	return nil
}

var _ model.Model = (*ModuleCode)(nil)
