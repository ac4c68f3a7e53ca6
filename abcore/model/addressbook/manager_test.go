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
	"testing"

	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/testutil"
)

func typicalManager(t *testing.T) *addressbook.Manager {
	t.Helper()
	ab := addressbook.New()
	if err := ab.SetPersons(testutil.TypicalPersons()); err != nil {
		t.Fatalf("SetPersons() error = %v", err)
	}
	m, err := addressbook.NewManager(ab, addressbook.DefaultUserPrefs())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestNewManager(t *testing.T) {
	m, err := addressbook.NewManager(nil, addressbook.DefaultUserPrefs())
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if len(m.FilteredPersons()) != 0 {
		t.Error("nil source should give an empty address book")
	}
	if m.AddressBookFilePath() != addressbook.DefaultAddressBookFilePath {
		t.Errorf("AddressBookFilePath() = %q", m.AddressBookFilePath())
	}

	if _, err := addressbook.NewManager(nil, addressbook.UserPrefs{}); err == nil {
		t.Error("NewManager(empty prefs) error = nil")
	}
}

func TestManager_Filter(t *testing.T) {
	m := typicalManager(t)

	if got := len(m.FilteredPersons()); got != 7 {
		t.Fatalf("FilteredPersons() len = %d, want 7", got)
	}

	m.UpdateFilteredPersonList(person.NewNameContainsKeywordsPredicate([]string{"Meier"}))
	got := m.FilteredPersons()
	if len(got) != 2 || !got[0].Equal(testutil.Benson()) || !got[1].Equal(testutil.Daniel()) {
		t.Errorf("FilteredPersons() = %v, want Benson and Daniel", got)
	}

	m.UpdateFilteredPersonList(nil)
	if got := len(m.FilteredPersons()); got != 7 {
		t.Errorf("nil predicate should show all, got %d", got)
	}
}

func TestManager_AddPersonResetsFilter(t *testing.T) {
	m := typicalManager(t)
	m.UpdateFilteredPersonList(person.NewNameContainsKeywordsPredicate([]string{"Alice"}))

	if err := m.AddPerson(testutil.Amy()); err != nil {
		t.Fatalf("AddPerson() error = %v", err)
	}
	if got := len(m.FilteredPersons()); got != 8 {
		t.Errorf("FilteredPersons() len = %d, want 8", got)
	}
	if !m.HasPerson(testutil.Amy()) {
		t.Error("HasPerson() = false after AddPerson")
	}
	if m.HasPerson(nil) {
		t.Error("HasPerson(nil) = true")
	}
}

func TestManager_SetAndDelete(t *testing.T) {
	m := typicalManager(t)
	alice := m.FilteredPersons()[0]
	edited := testutil.FromPerson(alice).WithRemark("new remark").Build()

	if err := m.SetPerson(alice, edited); err != nil {
		t.Fatalf("SetPerson() error = %v", err)
	}
	if got := m.FilteredPersons()[0]; got.Remark() != "new remark" {
		t.Errorf("remark = %q", got.Remark())
	}

	if err := m.DeletePerson(edited); err != nil {
		t.Fatalf("DeletePerson() error = %v", err)
	}
	if m.HasPerson(alice) {
		t.Error("HasPerson() = true after DeletePerson")
	}
}

func TestManager_SetAddressBook(t *testing.T) {
	m := typicalManager(t)
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		t.Fatalf("SetAddressBook() error = %v", err)
	}
	if got := len(m.AddressBook().Persons()); got != 0 {
		t.Errorf("Persons() len = %d, want 0", got)
	}
}

func TestManager_Equal(t *testing.T) {
	a, b := typicalManager(t), typicalManager(t)
	if !a.Equal(b) {
		t.Fatal("managers with the same data should be equal")
	}

	b.UpdateFilteredPersonList(person.NewNameContainsKeywordsPredicate([]string{"Alice"}))
	if a.Equal(b) {
		t.Error("managers with different filters should differ")
	}

	if err := b.SetUserPrefs(addressbook.UserPrefs{AddressBookFilePath: "other.json"}); err != nil {
		t.Fatalf("SetUserPrefs() error = %v", err)
	}
	b.UpdateFilteredPersonList(person.ShowAllPersons)
	if a.Equal(b) {
		t.Error("managers with different prefs should differ")
	}
}
