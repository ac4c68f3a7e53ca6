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

package config

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
)

// Backend selects where the address book is stored.
type Backend int

const (
	// JSON keeps the address book in a single pretty-printed JSON file at
	// the path named by the user preferences.
	JSON Backend = iota

	// SQLite keeps a bounded history of address book snapshots in a SQLite
	// database. Loading reads the newest snapshot.
	SQLite
)

var _ model.Model = (*Backend)(nil)

// Canonical textual forms used in config files, environment variables and
// flags.
const (
	JSONStr   = "json"
	SQLiteStr = "sqlite"
)

// String returns the canonical name, or "unknown" for values outside the
// defined constants.
func (b Backend) String() string {
	switch b {
	case JSON:
		return JSONStr
	case SQLite:
		return SQLiteStr
	default:
		return "unknown"
	}
}

// ParseBackend converts text into a Backend. Matching ignores case and
// surrounding whitespace. Unknown names fail with *errors.ParseError.
func ParseBackend(str string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case JSONStr, "file":
		return JSON, nil
	case SQLiteStr, "sqlite3", "db":
		return SQLite, nil
	default:
		return JSON, &errors.ParseError{Type: "Backend", Value: str}
	}
}

// Valid reports whether b is one of the defined constants.
func (b Backend) Valid() bool {
	return b == JSON || b == SQLite
}

// Validate reports a MarshalError for values outside the defined constants.
func (b Backend) Validate() error {
	if !b.Valid() {
		return &errors.MarshalError{Type: "Backend", Value: int(b)}
	}
	return nil
}

// TypeName returns "Backend".
func (b Backend) TypeName() string {
	return "Backend"
}

// Redacted returns the backend unmasked.
func (b Backend) Redacted() string {
	return b.String()
}

// IsZero reports whether b is JSON, which is also the default.
func (b Backend) IsZero() bool {
	return b == JSON
}

// MarshalJSON encodes the backend as a JSON string after validating it.
func (b Backend) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Backend", Value: int(b)}
	}
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts the textual form only.
func (b *Backend) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Backend", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseBackend(str)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText returns the canonical name of the backend.
func (b Backend) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Backend", Value: int(b)}
	}
	return []byte(b.String()), nil
}

// UnmarshalText parses a backend name with ParseBackend.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML encodes the backend as a YAML scalar after validating it.
func (b Backend) MarshalYAML() (any, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "Backend", Value: int(b)}
	}
	return b.String(), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it as a backend.
func (b *Backend) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Backend", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseBackend(str)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
