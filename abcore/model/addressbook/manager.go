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

import "github.com/tanruiquan/tp/abcore/model/person"

// Model is the API commands execute against.
type Model interface {
	UserPrefs() UserPrefs

	// SetUserPrefs replaces the user preferences. It fails if prefs is
	// invalid.
	SetUserPrefs(prefs UserPrefs) error

	AddressBookFilePath() string

	// AddressBook returns a read-only view of the current address book.
	AddressBook() ReadOnlyAddressBook

	// SetAddressBook replaces the address book data with that of src.
	SetAddressBook(src ReadOnlyAddressBook) error

	// HasPerson reports whether a person with the same identity as p
	// exists.
	HasPerson(p *person.Person) bool

	// DeletePerson removes p, which must exist.
	DeletePerson(p *person.Person) error

	// AddPerson adds p, which must not already exist, and resets the filter
	// so the new person is visible.
	AddPerson(p *person.Person) error

	// SetPerson replaces target, which must exist, with edited.
	SetPerson(target, edited *person.Person) error

	// FilteredPersons returns the persons matching the current filter, in
	// address book order. Indices shown to the user refer to this list.
	FilteredPersons() []*person.Person

	// UpdateFilteredPersonList replaces the current filter.
	UpdateFilteredPersonList(pred person.Predicate)
}

// Manager is the Model used by the application. It keeps the address book,
// the user preferences and the active filter in memory.
type Manager struct {
	addressBook *AddressBook
	prefs       UserPrefs
	filter      person.Predicate
}

var _ Model = (*Manager)(nil)

// NewManager returns a Manager initialized with a copy of src and prefs.
// A nil src starts with an empty address book.
func NewManager(src ReadOnlyAddressBook, prefs UserPrefs) (*Manager, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	ab, err := FromReadOnly(src)
	if err != nil {
		return nil, err
	}
	return &Manager{addressBook: ab, prefs: prefs, filter: person.ShowAllPersons}, nil
}

// UserPrefs returns the current preferences.
func (m *Manager) UserPrefs() UserPrefs {
	return m.prefs
}

// SetUserPrefs validates and replaces the preferences.
func (m *Manager) SetUserPrefs(prefs UserPrefs) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	m.prefs = prefs
	return nil
}

// AddressBookFilePath returns the data file named by the preferences.
func (m *Manager) AddressBookFilePath() string {
	return m.prefs.AddressBookFilePath
}

// AddressBook returns a read-only view of the address book.
func (m *Manager) AddressBook() ReadOnlyAddressBook {
	return m.addressBook
}

// SetAddressBook replaces the persons with those of src.
func (m *Manager) SetAddressBook(src ReadOnlyAddressBook) error {
	return m.addressBook.ResetData(src)
}

// HasPerson reports whether a person equivalent to p exists.
func (m *Manager) HasPerson(p *person.Person) bool {
	if p == nil {
		return false
	}
	return m.addressBook.HasPerson(p)
}

// DeletePerson removes p.
func (m *Manager) DeletePerson(p *person.Person) error {
	return m.addressBook.RemovePerson(p)
}

// AddPerson adds p and shows every person.
func (m *Manager) AddPerson(p *person.Person) error {
	if err := m.addressBook.AddPerson(p); err != nil {
		return err
	}
	m.filter = person.ShowAllPersons
	return nil
}

// SetPerson replaces target with edited.
func (m *Manager) SetPerson(target, edited *person.Person) error {
	return m.addressBook.SetPerson(target, edited)
}

// FilteredPersons returns the persons matching the current predicate.
func (m *Manager) FilteredPersons() []*person.Person {
	all := m.addressBook.Persons()
	out := all[:0]
	for _, p := range all {
		if m.filter.Test(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilteredPersonList replaces the filter. A nil predicate shows all
// persons.
func (m *Manager) UpdateFilteredPersonList(pred person.Predicate) {
	if pred == nil {
		pred = person.ShowAllPersons
	}
	m.filter = pred
}

// Equal reports whether both managers hold equal address books, prefs and
// filters.
func (m *Manager) Equal(other *Manager) bool {
	if other == nil {
		return false
	}
	return m.addressBook.Equal(other.addressBook) &&
		m.prefs == other.prefs &&
		m.filter.Equal(other.filter)
}
