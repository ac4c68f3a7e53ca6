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
	teleHandleFmt = `^@[A-Za-z0-9_]{5,32}$`

	// TeleHandleConstraints is the message reported when a Telegram handle
	// is rejected.
	TeleHandleConstraints = "Telegram handles should start with '@', followed by 5 to 32 letters, digits or underscores"
)

// TeleHandleRegexp is the compiled form of teleHandleFmt.
var TeleHandleRegexp = regexp.MustCompile(teleHandleFmt)

// TeleHandle is a Telegram username including its leading '@', for
// example "@alex_yeoh".
type TeleHandle string

// IsValidTeleHandle reports whether raw is a valid Telegram handle.
func IsValidTeleHandle(raw string) bool {
	return TeleHandleRegexp.MatchString(raw)
}

// NewTeleHandle trims raw and returns it as a TeleHandle, or fails with
// *errors.ConstraintError carrying TeleHandleConstraints.
func NewTeleHandle(raw string) (TeleHandle, error) {
	h := TeleHandle(strings.TrimSpace(raw))
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

// String returns the Telegram handle unmasked.
func (h TeleHandle) String() string {
	return string(h)
}

// Redacted keeps the '@' and the first character of the username.
func (h TeleHandle) Redacted() string {
	if len(h) < 2 {
		return "[invalid]"
	}
	return string(h[:2]) + "***"
}

// TypeName returns "TeleHandle".
func (h TeleHandle) TypeName() string {
	return "TeleHandle"
}

// IsZero reports whether the Telegram handle is empty.
func (h TeleHandle) IsZero() bool {
	return h == ""
}

// Validate checks the Telegram handle against TeleHandleConstraints.
func (h TeleHandle) Validate() error {
	if !IsValidTeleHandle(string(h)) {
		return &errors.ConstraintError{Type: h.TypeName(), Value: string(h), Message: TeleHandleConstraints}
	}
	return nil
}

// MarshalJSON encodes the Telegram handle as a JSON string after validating
// it.
func (h TeleHandle) MarshalJSON() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", h.TypeName(), err)
	}
	return json.Marshal(string(h))
}

// UnmarshalJSON decodes a JSON string and validates it as a Telegram handle.
func (h *TeleHandle) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "TeleHandle", Data: data, Reason: err.Error()}
	}
	parsed, err := NewTeleHandle(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "TeleHandle", Data: data, Reason: err.Error()}
	}
	*h = parsed
	return nil
}

// MarshalYAML encodes the Telegram handle as a YAML scalar after validating
// it.
func (h TeleHandle) MarshalYAML() (interface{}, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", h.TypeName(), err)
	}
	return string(h), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it as a Telegram handle.
func (h *TeleHandle) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "TeleHandle", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewTeleHandle(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "TeleHandle", Data: []byte(node.Value), Reason: err.Error()}
	}
	*h = parsed
	return nil
}

var _ model.Model = (*TeleHandle)(nil)
