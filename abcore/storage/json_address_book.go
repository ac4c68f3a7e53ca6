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

package storage

import (
	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

// MessageDuplicatePerson is reported when a stored address book holds the
// same person twice.
const MessageDuplicatePerson = "Persons list contains duplicate person(s)."

// JSONSerializableAddressBook is the stored form of an address book.
type JSONSerializableAddressBook struct {
	Persons []JSONAdaptedPerson `json:"persons"`
}

// FromAddressBook converts src into its stored form.
func FromAddressBook(src addressbook.ReadOnlyAddressBook) JSONSerializableAddressBook {
	persons := src.Persons()
	out := JSONSerializableAddressBook{Persons: make([]JSONAdaptedPerson, 0, len(persons))}
	for _, p := range persons {
		out.Persons = append(out.Persons, FromPerson(p))
	}
	return out
}

// ToModelType converts the stored form into an address book. It fails with
// *errors.IllegalValueError on the first invalid person or if two persons
// are the same person.
func (s JSONSerializableAddressBook) ToModelType() (*addressbook.AddressBook, error) {
	ab := addressbook.New()
	for _, jp := range s.Persons {
		p, err := jp.ToModelType()
		if err != nil {
			return nil, err
		}
		if ab.HasPerson(p) {
			return nil, &errors.IllegalValueError{Message: MessageDuplicatePerson}
		}
		if err := ab.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return ab, nil
}
