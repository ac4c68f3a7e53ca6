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

package addressbook

import (
	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
)

// DefaultAddressBookFilePath is where the address book is stored unless the
// user preferences say otherwise.
const DefaultAddressBookFilePath = "data/addressbook.json"

// UserPrefs holds the preferences that survive between sessions.
type UserPrefs struct {
	AddressBookFilePath string `json:"addressBookFilePath" yaml:"addressBookFilePath"`
}

// DefaultUserPrefs returns the preferences used on first start.
func DefaultUserPrefs() UserPrefs {
	return UserPrefs{AddressBookFilePath: DefaultAddressBookFilePath}
}

// Validate requires a non-empty address book file path.
func (u UserPrefs) Validate() error {
	if u.AddressBookFilePath == "" {
		return &errors.ValidationError{Type: u.TypeName(), Field: "AddressBookFilePath", Reason: "must not be empty"}
	}
	return nil
}

// TypeName returns "UserPrefs".
func (u UserPrefs) TypeName() string {
	return "UserPrefs"
}

// IsZero reports whether no preference is set.
func (u UserPrefs) IsZero() bool {
	return u == UserPrefs{}
}

// String renders the preferences.
func (u UserPrefs) String() string {
	return "Data file location: " + u.AddressBookFilePath
}

// Redacted is the same as String.
func (u UserPrefs) Redacted() string {
	return u.String()
}

var _ model.Entity = UserPrefs{}
