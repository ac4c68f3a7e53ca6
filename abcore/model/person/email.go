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

// The email format is assembled from named fragments so that each rule in
// EmailConstraints maps to one piece of the expression.
const (
	emailAlnum       = `[^\W_]+`
	emailSpecial     = `[+_.-]`
	emailLocalPart   = emailAlnum + `(` + emailSpecial + emailAlnum + `)*`
	emailDomainLabel = emailAlnum + `(-` + emailAlnum + `)*`
	emailDomainLast  = `(` + emailDomainLabel + `){2,}`
	emailDomain      = `(` + emailDomainLabel + `\.)*` + emailDomainLast
	emailFmt         = `^` + emailLocalPart + `@` + emailDomain + `$`

	// EmailConstraints is the message reported when an email is rejected.
	EmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

// EmailRegexp is the compiled form of the email format.
var EmailRegexp = regexp.MustCompile(emailFmt)

// Email is an email address of the form local-part@domain.
//
// The local part consists of alphanumeric runs joined by single '+', '_',
// '.' or '-' characters. The domain consists of labels separated by
// periods; each label is alphanumeric runs joined by single hyphens and the
// last label is at least two characters long.
type Email string

// IsValidEmail reports whether raw is a valid email address.
func IsValidEmail(raw string) bool {
	return EmailRegexp.MatchString(raw)
}

// NewEmail trims raw and returns it as an Email, or fails with
// *errors.ConstraintError carrying EmailConstraints.
func NewEmail(raw string) (Email, error) {
	e := Email(strings.TrimSpace(raw))
	if err := e.Validate(); err != nil {
		return "", err
	}
	return e, nil
}

// String returns the email address unmasked.
func (e Email) String() string {
	return string(e)
}

// Redacted hides the local part except its first character, for example
// "a***@example.com".
func (e Email) Redacted() string {
	return redactEmail(string(e))
}

func redactEmail(email string) string {
	if email == "" {
		return "[empty]"
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "[invalid]"
	}

	return string(email[0]) + "***" + email[atIndex:]
}

// TypeName returns "Email".
func (e Email) TypeName() string {
	return "Email"
}

// IsZero reports whether the email address is empty.
func (e Email) IsZero() bool {
	return e == ""
}

// Validate checks the email address against EmailConstraints.
func (e Email) Validate() error {
	if !IsValidEmail(string(e)) {
		return &errors.ConstraintError{Type: e.TypeName(), Value: string(e), Message: EmailConstraints}
	}
	return nil
}

// MarshalJSON encodes the email address as a JSON string after validating
// it.
func (e Email) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	return json.Marshal(string(e))
}

// UnmarshalJSON decodes a JSON string and validates it as an email address.
func (e *Email) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Email", Data: data, Reason: err.Error()}
	}
	parsed, err := NewEmail(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Email", Data: data, Reason: err.Error()}
	}
	*e = parsed
	return nil
}

// MarshalYAML encodes the email address as a YAML scalar after validating
// it.
func (e Email) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	return string(e), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it as an email address.
func (e *Email) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Email", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := NewEmail(str)
	if err != nil {
		return &errors.UnmarshalError{Type: "Email", Data: []byte(node.Value), Reason: err.Error()}
	}
	*e = parsed
	return nil
}

var _ model.Model = (*Email)(nil)
