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

package addressbook_test

import (
	stderrors "errors"
	"testing"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/testutil"
)

func TestUniquePersonList_Add(t *testing.T) {
	var l addressbook.UniquePersonList
	alice := testutil.Alice()

	if err := l.Add(alice); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !l.Contains(alice) {
		t.Error("Contains() = false after Add")
	}

	sameIdentity := testutil.FromPerson(alice).WithPhone("555").WithTags("husband").Build()
	if !l.Contains(sameIdentity) {
		t.Error("Contains() should match a person with the same name")
	}

	var de *errors.DuplicateError
	if err := l.Add(sameIdentity); !stderrors.As(err, &de) {
		t.Errorf("Add(duplicate) error = %v, want DuplicateError", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestUniquePersonList_SetPerson(t *testing.T) {
	alice, bob := testutil.Alice(), testutil.Bob()

	tests := []struct {
		name    string
		target  *person.Person
		edited  *person.Person
		wantErr any
		want    []*person.Person
	}{
		{"replace with self", alice, alice, nil, []*person.Person{alice, bob}},
		{"same identity", alice, testutil.FromPerson(alice).WithPhone("999").Build(), nil, nil},
		{"different identity", alice, testutil.Carl(), nil, nil},
		{"target missing", testutil.Carl(), testutil.Daniel(), &errors.NotFoundError{}, []*person.Person{alice, bob}},
		{"edited duplicates other", alice, testutil.FromPerson(bob).WithPhone("999").Build(), &errors.DuplicateError{}, []*person.Person{alice, bob}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l addressbook.UniquePersonList
			_ = l.SetPersons([]*person.Person{alice, bob})

			err := l.SetPerson(tt.target, tt.edited)
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("SetPerson() error = %v", err)
				}
				if got := l.Persons()[0]; got != tt.edited {
					t.Errorf("Persons()[0] = %v, want %v", got, tt.edited)
				}
			case *errors.NotFoundError:
				if !stderrors.As(err, &want) {
					t.Errorf("SetPerson() error = %v, want NotFoundError", err)
				}
			case *errors.DuplicateError:
				if !stderrors.As(err, &want) {
					t.Errorf("SetPerson() error = %v, want DuplicateError", err)
				}
			}
			if tt.want != nil {
				got := l.Persons()
				if len(got) != len(tt.want) || got[0] != tt.want[0] || got[1] != tt.want[1] {
					t.Errorf("Persons() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestUniquePersonList_Remove(t *testing.T) {
	var l addressbook.UniquePersonList
	alice, bob := testutil.Alice(), testutil.Bob()
	_ = l.SetPersons([]*person.Person{alice, bob})

	if err := l.Remove(alice); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if l.Contains(alice) || l.Len() != 1 {
		t.Errorf("Remove() left %v", l.Persons())
	}

	var nf *errors.NotFoundError
	if err := l.Remove(alice); !stderrors.As(err, &nf) {
		t.Errorf("Remove(missing) error = %v, want NotFoundError", err)
	}
}

func TestUniquePersonList_SetPersons_Duplicates(t *testing.T) {
	var l addressbook.UniquePersonList
	_ = l.SetPersons([]*person.Person{testutil.Carl()})

	var de *errors.DuplicateError
	err := l.SetPersons([]*person.Person{testutil.Alice(), testutil.Alice()})
	if !stderrors.As(err, &de) {
		t.Fatalf("SetPersons() error = %v, want DuplicateError", err)
	}
	if l.Len() != 1 || !l.Persons()[0].Equal(testutil.Carl()) {
		t.Errorf("SetPersons() should leave the list unchanged on failure, got %v", l.Persons())
	}
}

func TestUniquePersonList_PersonsIsSnapshot(t *testing.T) {
	var l addressbook.UniquePersonList
	_ = l.Add(testutil.Alice())

	snap := l.Persons()
	snap[0] = testutil.Bob()
	if !l.Persons()[0].Equal(testutil.Alice()) {
		t.Error("modifying the snapshot changed the list")
	}
}

func TestAddressBook(t *testing.T) {
	ab := addressbook.New()
	if !ab.IsZero() || ab.Len() != 0 {
		t.Fatal("New() should be empty")
	}

	for _, p := range testutil.TypicalPersons() {
		if err := ab.AddPerson(p); err != nil {
			t.Fatalf("AddPerson(%s) error = %v", p.Name(), err)
		}
	}
	if got := ab.String(); got != "7 persons" {
		t.Errorf("String() = %q", got)
	}
	if err := ab.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	copied, err := addressbook.FromReadOnly(ab)
	if err != nil {
		t.Fatalf("FromReadOnly() error = %v", err)
	}
	if !copied.Equal(ab) {
		t.Error("FromReadOnly() copy should equal source")
	}

	if err := copied.RemovePerson(testutil.Alice()); err != nil {
		t.Fatalf("RemovePerson() error = %v", err)
	}
	if copied.Equal(ab) || ab.Len() != 7 {
		t.Error("modifying the copy should not affect the source")
	}

	if err := ab.ResetData(nil); err != nil || ab.Len() != 0 {
		t.Errorf("ResetData(nil) = %v, Len() = %d", err, ab.Len())
	}
}

func TestSampleAddressBook(t *testing.T) {
	ab, err := addressbook.SampleAddressBook()
	if err != nil {
		t.Fatalf("SampleAddressBook() error = %v", err)
	}
	if ab.Len() != 6 {
		t.Errorf("Len() = %d, want 6", ab.Len())
	}
	if got := ab.Persons()[0].Name(); got != "Alex Yeoh" {
		t.Errorf("first sample = %q", got)
	}
}

func TestUserPrefs(t *testing.T) {
	prefs := addressbook.DefaultUserPrefs()
	if prefs.AddressBookFilePath != "data/addressbook.json" {
		t.Errorf("default path = %q", prefs.AddressBookFilePath)
	}
	if err := prefs.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	var ve *errors.ValidationError
	if err := (addressbook.UserPrefs{}).Validate(); !stderrors.As(err, &ve) {
		t.Errorf("Validate(empty) error = %v, want ValidationError", err)
	}
}
