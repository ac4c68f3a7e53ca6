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
	phoneFmt = `^\d{3,}$`

	// PhoneConstraints is the message reported when a phone number is rejected.
	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
)

// PhoneRegexp is the compiled form of phoneFmt.
var PhoneRegexp = regexp.MustCompile(phoneFmt)

// Phone is a phone number made of at least three ASCII digits.
type Phone string

// IsValidPhone reports whether raw is a valid phone number.
func IsValidPhone(raw string) bool {
	return PhoneRegexp.MatchString(raw)
}

// NewPhone trims raw and returns it as a Phone, or fails with
// *errors.ConstraintError carrying PhoneConstraints.
func NewPhone(raw string) (Phone, error) {
	p := Phone(strings.TrimSpace(raw))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// String returns the phone number unmasked.
func (p Phone) String() string {
	return string(p)
}

// Redacted keeps only the last two digits, for example "******32".
func (p Phone) Redacted() string {
	return maskHead(string(p), 2)
}

// TypeName returns "Phone".
func (p Phone) TypeName() string {
	return "Phone"
}

// IsZero reports whether the phone number is empty.
func (p Phone) IsZero() bool {
	return p == ""
}

// Validate checks the phone number against PhoneConstraints.
func (p Phone) Validate() error {
	if !IsValidPhone(string(p)) {
		return &errors.ConstraintError{Type: p.TypeName(), Value: string(p), Message: PhoneConstraints}
	}
	return nil
}

// MarshalJSON encodes the phone number as a JSON string after validating it.
func (p Phone) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(string(p))
}

// UnmarshalJSON decodes a JSON string and validates it as a phone number.
func (p *Phone) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Phone", Data: data, Reason: err.Error()}
	}
	parsed, err := NewPhone(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Phone", Data: data, Reason: err.Error()}
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the phone number as a YAML scalar after validating it.
func (p Phone) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return string(p), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it as a phone number.
func (p *Phone) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Phone", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewPhone(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Phone", Data: []byte(node.Value), Reason: err.Error()}
	}
	*p = parsed
	return nil
}

var _ model.Model = (*Phone)(nil)

// maskHead replaces every byte of s except the last keep bytes with '*'.
func maskHead(s string, keep int) string {
	if len(s) <= keep {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-keep) + s[len(s)-keep:]
}
