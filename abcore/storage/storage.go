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

// Package storage reads and writes the address book and the user
// preferences.
//
// The address book is kept either in a JSON file or as a history of
// snapshots in a SQLite database; both use the same JSON document, built
// from JSONSerializableAddressBook. User preferences are kept in a YAML
// file. Manager bundles one of each behind the Storage interface used by
// the application.
package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

// AddressBookStorage reads and writes an address book.
type AddressBookStorage interface {
	// AddressBookPath returns the location of the stored data.
	AddressBookPath() string

	// ReadAddressBook loads the address book. It returns found == false,
	// and no error, if nothing has been stored yet. Unreadable or invalid
	// data is reported as *errors.DataLoadingError.
	ReadAddressBook(ctx context.Context) (ab *addressbook.AddressBook, found bool, err error)

	// SaveAddressBook stores ab, replacing what was stored before.
	SaveAddressBook(ctx context.Context, ab addressbook.ReadOnlyAddressBook) error
}

// UserPrefsStorage reads and writes user preferences.
type UserPrefsStorage interface {
	UserPrefsPath() string

	// ReadUserPrefs loads the preferences. It returns found == false, and
	// no error, if the file does not exist.
	ReadUserPrefs() (prefs addressbook.UserPrefs, found bool, err error)

	SaveUserPrefs(prefs addressbook.UserPrefs) error
}

// Storage is the storage API of the application.
type Storage interface {
	AddressBookStorage
	UserPrefsStorage
}

// Manager combines an address book storage and a user preferences
// storage.
type Manager struct {
	addressBook AddressBookStorage
	prefs       UserPrefsStorage
	log         *zap.Logger
}

var _ Storage = (*Manager)(nil)

// NewManager returns a Manager. A nil logger disables logging.
func NewManager(ab AddressBookStorage, prefs UserPrefsStorage, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{addressBook: ab, prefs: prefs, log: log}
}

// AddressBookPath returns the path of the address book backend.
func (m *Manager) AddressBookPath() string {
	return m.addressBook.AddressBookPath()
}

// ReadAddressBook reads through the address book backend.
func (m *Manager) ReadAddressBook(ctx context.Context) (*addressbook.AddressBook, bool, error) {
	m.log.Debug("reading address book", zap.String("path", m.addressBook.AddressBookPath()))
	return m.addressBook.ReadAddressBook(ctx)
}

// SaveAddressBook saves through the address book backend.
func (m *Manager) SaveAddressBook(ctx context.Context, ab addressbook.ReadOnlyAddressBook) error {
	m.log.Debug("writing address book", zap.String("path", m.addressBook.AddressBookPath()))
	return m.addressBook.SaveAddressBook(ctx, ab)
}

// UserPrefsPath returns the path of the preferences file.
func (m *Manager) UserPrefsPath() string {
	return m.prefs.UserPrefsPath()
}

// ReadUserPrefs reads through the preferences backend.
func (m *Manager) ReadUserPrefs() (addressbook.UserPrefs, bool, error) {
	return m.prefs.ReadUserPrefs()
}

// SaveUserPrefs saves through the preferences backend.
func (m *Manager) SaveUserPrefs(prefs addressbook.UserPrefs) error {
	m.log.Debug("writing user prefs", zap.String("path", m.prefs.UserPrefsPath()))
	return m.prefs.SaveUserPrefs(prefs)
}
