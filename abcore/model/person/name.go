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
	// nameFmt requires the first character to be an ASCII letter or digit,
	// which rules out blank names and names made only of spaces. Later
	// characters may also be spaces.
	nameFmt = `^[A-Za-z0-9][A-Za-z0-9 ]*$`

	// NameConstraints is the message reported when a name is rejected.
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
)

// NameRegexp is the compiled form of nameFmt. It is safe for concurrent
// use and SHOULD be treated as read-only.
var NameRegexp = regexp.MustCompile(nameFmt)

// Name is the full name of a person, for example "Alex Yeoh".
//
// Name is the identity field of a Person: two persons with equal names are
// the same person (see Person.IsSamePerson) even if every other field
// differs. Names are stored trimmed of surrounding whitespace and compared
// case-sensitively.
//
// The zero value is invalid and represents an absent name.
type Name string

// IsValidName reports whether raw is a valid name.
func IsValidName(raw string) bool {
	return NameRegexp.MatchString(raw)
}

// NewName trims raw and returns it as a Name. It fails with
// *errors.ConstraintError carrying NameConstraints when the result is not
// a valid name.
func NewName(raw string) (Name, error) {
	n := Name(strings.TrimSpace(raw))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Words returns the whitespace-delimited words of the name.
func (n Name) Words() []string {
	return strings.Fields(string(n))
}

// String returns the full name.
func (n Name) String() string {
	return string(n)
}

// Redacted returns the full name. Names are shown in logs so that log lines
// can be correlated with shell output; contact details are masked instead.
func (n Name) Redacted() string {
	return n.String()
}

// TypeName returns "Name".
func (n Name) TypeName() string {
	return "Name"
}

// IsZero reports whether the name is absent.
func (n Name) IsZero() bool {
	return n == ""
}

// Validate returns *errors.ConstraintError if the name does not match
// NameRegexp.
func (n Name) Validate() error {
	if !IsValidName(string(n)) {
		return &errors.ConstraintError{Type: n.TypeName(), Value: string(n), Message: NameConstraints}
	}
	return nil
}

// MarshalJSON encodes the name as a JSON string.
func (n Name) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON decodes a JSON string through NewName.
func (n *Name) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: data, Reason: err.Error()}
	}
	parsed, err := NewName(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: data, Reason: err.Error()}
	}
	*n = parsed
	return nil
}

// MarshalYAML encodes the name as a YAML scalar.
func (n Name) MarshalYAML() (interface{}, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return string(n), nil
}

// UnmarshalYAML decodes a YAML scalar through NewName.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewName(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: []byte(node.Value), Reason: err.Error()}
	}
	*n = parsed
	return nil
}

// Compile-time verification that Name implements model.Model interface.
var _ model.Model = (*Name)(nil)
