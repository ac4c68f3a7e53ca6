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
	"github.com/tanruiquan/tp/abcore/model/person"
)

// UniquePersonList is an ordered list of persons in which no two persons
// are the same person in the sense of person.IsSamePerson.
//
// Persons keep their insertion order. The zero value is an empty list
// ready for use.
type UniquePersonList struct {
	persons []*person.Person
}

// Contains reports whether the list holds a person that is the same person
// as p.
func (l *UniquePersonList) Contains(p *person.Person) bool {
	for _, q := range l.persons {
		if q.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// Add appends p. It fails with *errors.DuplicateError if the same person is
// already present.
func (l *UniquePersonList) Add(p *person.Person) error {
	if p == nil {
		return &errors.NullFieldError{Type: "UniquePersonList", Field: "Person"}
	}
	if l.Contains(p) {
		return &errors.DuplicateError{Type: "Person", Key: p.Name().String()}
	}
	l.persons = append(l.persons, p)
	return nil
}

// SetPerson replaces target with edited in place.
//
// It fails with *errors.NotFoundError if target is not in the list, and
// with *errors.DuplicateError if edited is the same person as another
// entry of the list.
func (l *UniquePersonList) SetPerson(target, edited *person.Person) error {
	if target == nil || edited == nil {
		return &errors.NullFieldError{Type: "UniquePersonList", Field: "Person"}
	}
	i := l.indexOf(target)
	if i < 0 {
		return &errors.NotFoundError{Type: "Person", Key: target.Name().String()}
	}
	if !target.IsSamePerson(edited) && l.Contains(edited) {
		return &errors.DuplicateError{Type: "Person", Key: edited.Name().String()}
	}
	l.persons[i] = edited
	return nil
}

// Remove deletes p. It fails with *errors.NotFoundError if p is not in the
// list.
func (l *UniquePersonList) Remove(p *person.Person) error {
	if p == nil {
		return &errors.NullFieldError{Type: "UniquePersonList", Field: "Person"}
	}
	i := l.indexOf(p)
	if i < 0 {
		return &errors.NotFoundError{Type: "Person", Key: p.Name().String()}
	}
	l.persons = append(l.persons[:i:i], l.persons[i+1:]...)
	return nil
}

// SetPersons replaces the whole content. The list is left unchanged if
// persons contains duplicates.
func (l *UniquePersonList) SetPersons(persons []*person.Person) error {
	next := make([]*person.Person, 0, len(persons))
	for _, p := range persons {
		if p == nil {
			return &errors.NullFieldError{Type: "UniquePersonList", Field: "Person"}
		}
		for _, q := range next {
			if q.IsSamePerson(p) {
				return &errors.DuplicateError{Type: "Person", Key: p.Name().String()}
			}
		}
		next = append(next, p)
	}
	l.persons = next
	return nil
}

// Persons returns a snapshot of the list.
func (l *UniquePersonList) Persons() []*person.Person {
	out := make([]*person.Person, len(l.persons))
	copy(out, l.persons)
	return out
}

// Len returns the number of persons.
func (l *UniquePersonList) Len() int {
	return len(l.persons)
}

// Equal reports whether both lists hold equal persons in the same order.
func (l *UniquePersonList) Equal(other *UniquePersonList) bool {
	if l == other {
		return true
	}
	if other == nil || len(l.persons) != len(other.persons) {
		return false
	}
	for i := range l.persons {
		if !l.persons[i].Equal(other.persons[i]) {
			return false
		}
	}
	return true
}

// indexOf prefers the identical pointer and falls back to Equal.
func (l *UniquePersonList) indexOf(p *person.Person) int {
	for i, q := range l.persons {
		if q == p {
			return i
		}
	}
	for i, q := range l.persons {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}
