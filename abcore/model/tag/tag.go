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

// Package tag defines Tag, the free-form label attached to persons.
package tag

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
	// tagFmt accepts one or more ASCII letters or digits. Whitespace and
	// punctuation are rejected so that a tag is always a single keyword.
	tagFmt = `^[A-Za-z0-9]+$`

	// Constraints is the message reported when a tag name is rejected.
	Constraints = "Tags names should be alphanumeric"
)

// TagRegexp is the compiled form of tagFmt. It is safe for concurrent use.
var TagRegexp = regexp.MustCompile(tagFmt)

// Tag is a label attached to a person, such as "friends" or "colleagues".
//
// A Tag is stored exactly as given after trimming surrounding whitespace;
// tags are compared case-sensitively. String renders the tag wrapped in
// square brackets, which is also the form matched by tag searches.
type Tag string

// IsValidTag reports whether raw is a valid tag name.
func IsValidTag(raw string) bool {
	return TagRegexp.MatchString(raw)
}

// NewTag trims raw and returns it as a Tag. It fails with
// *errors.ConstraintError when the result is not a valid tag name.
func NewTag(raw string) (Tag, error) {
	t := Tag(strings.TrimSpace(raw))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Name returns the tag name without brackets.
func (t Tag) Name() string {
	return string(t)
}

// String returns the tag name wrapped in square brackets, for example
// "[friends]".
func (t Tag) String() string {
	return "[" + string(t) + "]"
}

// Redacted returns String; tag names carry no personal data.
func (t Tag) Redacted() string {
	return t.String()
}

// TypeName returns "Tag".
func (t Tag) TypeName() string {
	return "Tag"
}

// IsZero reports whether the tag is empty.
func (t Tag) IsZero() bool {
	return t == ""
}

// Validate returns *errors.ConstraintError if the tag name is not
// alphanumeric.
func (t Tag) Validate() error {
	if !IsValidTag(string(t)) {
		return &errors.ConstraintError{Type: t.TypeName(), Value: string(t), Message: Constraints}
	}
	return nil
}

// MarshalJSON encodes the tag name (without brackets) as a JSON string.
func (t Tag) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON decodes a JSON string through NewTag.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: data, Reason: err.Error()}
	}
	parsed, err := NewTag(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: data, Reason: err.Error()}
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the tag name as a YAML scalar.
func (t Tag) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return string(t), nil
}

// UnmarshalYAML decodes a YAML scalar through NewTag.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewTag(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: []byte(node.Value), Reason: err.Error()}
	}
	*t = parsed
	return nil
}

// Compile-time verification that Tag implements model.Model interface.
var _ model.Model = (*Tag)(nil)
