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

package command

import (
	"fmt"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

const (
	EditWord = "edit"

	EditUsage = EditWord + ": Edits the details of the person identified " +
		"by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[n/NAME] [p/PHONE] [e/EMAIL] [h/TELEGRAM] [m/MODULE]... [t/TAG]...\n" +
		"Example: " + EditWord + " 1 p/91234567 e/johndoe@example.com"

	MessageEditSuccess         = "Edited Person: %s"
	MessageNotEdited           = "At least one field to edit must be provided."
	MessageEditDuplicatePerson = "This person already exists in the address book."
)

// EditPersonDescriptor holds the fields to change on a person. A nil field
// keeps the current value. A non-nil empty set clears the module codes or
// tags.
type EditPersonDescriptor struct {
	Name        *person.Name
	Phone       *person.Phone
	Email       *person.Email
	TeleHandle  *person.TeleHandle
	ModuleCodes *model.Set[person.ModuleCode]
	Tags        *model.Set[tag.Tag]
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.TeleHandle != nil ||
		d.ModuleCodes != nil || d.Tags != nil
}

// Apply builds a new person from p with the set fields replaced. The remark
// is carried over unchanged.
func (d EditPersonDescriptor) Apply(p *person.Person) (*person.Person, error) {
	name, phone, email, handle := p.Name(), p.Phone(), p.Email(), p.TeleHandle()
	codes, tags := p.ModuleCodes(), p.Tags()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.TeleHandle != nil {
		handle = *d.TeleHandle
	}
	if d.ModuleCodes != nil {
		codes = *d.ModuleCodes
	}
	if d.Tags != nil {
		tags = *d.Tags
	}
	return person.NewPerson(name, email, codes, phone, handle, p.Remark(), tags)
}

// Equal reports whether both descriptors change the same fields to the same
// values.
func (d EditPersonDescriptor) Equal(o EditPersonDescriptor) bool {
	return ptrEqual(d.Name, o.Name) &&
		ptrEqual(d.Phone, o.Phone) &&
		ptrEqual(d.Email, o.Email) &&
		ptrEqual(d.TeleHandle, o.TeleHandle) &&
		setPtrEqual(d.ModuleCodes, o.ModuleCodes) &&
		setPtrEqual(d.Tags, o.Tags)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func setPtrEqual[T model.Element](a, b *model.Set[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// EditCommand edits the person at an index of the shown list.
type EditCommand struct {
	index      int
	descriptor EditPersonDescriptor
}

// NewEditCommand returns a command editing the person at the 1-based
// index.
func NewEditCommand(index int, descriptor EditPersonDescriptor) *EditCommand {
	return &EditCommand{index: index, descriptor: descriptor}
}

// Word returns the command word.
func (c *EditCommand) Word() string { return EditWord }

// Execute applies the descriptor to the person at the index of the displayed
// list.
func (c *EditCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("EditCommand", m); err != nil {
		return Result{}, err
	}
	target, err := personAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	edited, err := c.descriptor.Apply(target)
	if err != nil {
		return Result{}, &errors.CommandError{Message: err.Error()}
	}
	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		return Result{}, &errors.CommandError{Message: MessageEditDuplicatePerson}
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, fmt.Errorf("edit person: %w", err)
	}
	m.UpdateFilteredPersonList(person.ShowAllPersons)
	return personResult(fmt.Sprintf(MessageEditSuccess, edited), edited), nil
}

// Equal reports whether other is an EditCommand with the same arguments.
func (c *EditCommand) Equal(other Command) bool {
	o, ok := other.(*EditCommand)
	return ok && o != nil && c.index == o.index && c.descriptor.Equal(o.descriptor)
}
