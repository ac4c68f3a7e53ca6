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

// Package addressbook holds the in-memory state of the application: the
// AddressBook aggregate with its UniquePersonList, the user preferences,
// and the Model that commands execute against.
//
// Commands never touch AddressBook directly. They go through Model, which
// also owns the filter deciding which persons are currently shown and
// indexed by the user.
package addressbook

import (
	"strconv"

	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// ReadOnlyAddressBook is an unmodifiable view of an address book.
type ReadOnlyAddressBook interface {
	// Persons returns a snapshot of the persons in insertion order.
	Persons() []*person.Person
}

// AddressBook wraps all data at the address book level. Duplicates, as
// defined by person.IsSamePerson, are not allowed.
type AddressBook struct {
	persons UniquePersonList
}

var _ ReadOnlyAddressBook = (*AddressBook)(nil)

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{}
}

// FromReadOnly returns a new address book holding the persons of src.
func FromReadOnly(src ReadOnlyAddressBook) (*AddressBook, error) {
	ab := New()
	if err := ab.ResetData(src); err != nil {
		return nil, err
	}
	return ab, nil
}

// SetPersons replaces the contents of the person list. It fails without
// changes if persons contains duplicates.
func (ab *AddressBook) SetPersons(persons []*person.Person) error {
	return ab.persons.SetPersons(persons)
}

// ResetData replaces all data with the data of src. A nil src clears the
// address book.
func (ab *AddressBook) ResetData(src ReadOnlyAddressBook) error {
	if src == nil {
		return ab.persons.SetPersons(nil)
	}
	return ab.SetPersons(src.Persons())
}

// HasPerson reports whether a person with the same identity as p exists.
func (ab *AddressBook) HasPerson(p *person.Person) bool {
	return ab.persons.Contains(p)
}

// AddPerson adds p, which must not already exist.
func (ab *AddressBook) AddPerson(p *person.Person) error {
	return ab.persons.Add(p)
}

// SetPerson replaces target, which must exist, with edited. The identity
// of edited must not be the same as another existing person.
func (ab *AddressBook) SetPerson(target, edited *person.Person) error {
	return ab.persons.SetPerson(target, edited)
}

// RemovePerson removes p, which must exist.
func (ab *AddressBook) RemovePerson(p *person.Person) error {
	return ab.persons.Remove(p)
}

// Persons returns the persons in insertion order.
func (ab *AddressBook) Persons() []*person.Person {
	return ab.persons.Persons()
}

// Len returns the number of persons.
func (ab *AddressBook) Len() int {
	return ab.persons.Len()
}

// Equal reports whether both address books hold equal persons in the same
// order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	return ab.persons.Equal(&other.persons)
}

// Validate checks every person and reports all failures at once.
func (ab *AddressBook) Validate() error {
	return model.ValidateAll(ab.persons.Persons())
}

// TypeName returns "AddressBook".
func (ab *AddressBook) TypeName() string {
	return "AddressBook"
}

// IsZero reports whether the address book has no persons.
func (ab *AddressBook) IsZero() bool {
	return ab == nil || ab.persons.Len() == 0
}

// String reports the number of persons.
func (ab *AddressBook) String() string {
	return strconv.Itoa(ab.persons.Len()) + " persons"
}

// Redacted is the same as String; the summary holds no personal data.
func (ab *AddressBook) Redacted() string {
	return ab.String()
}

var _ model.Entity = (*AddressBook)(nil)
