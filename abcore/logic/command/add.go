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
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
)

const (
	AddWord = "add"

	AddUsage = AddWord + ": Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL h/TELEGRAM [m/MODULE]... [t/TAG]...\n" +
		"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com h/@johndoe m/CS2030S t/friends"

	MessageAddSuccess      = "New person added: %s"
	MessageDuplicatePerson = "This person already exists in the address book"
)

// AddCommand adds a person to the address book.
type AddCommand struct {
	toAdd *person.Person
}

// NewAddCommand returns a command that adds p.
func NewAddCommand(p *person.Person) *AddCommand {
	return &AddCommand{toAdd: p}
}

// Word returns the command word.
func (c *AddCommand) Word() string { return AddWord }

// Execute adds the person unless an equivalent person already exists.
func (c *AddCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("AddCommand", m); err != nil {
		return Result{}, err
	}
	if m.HasPerson(c.toAdd) {
		return Result{}, &errors.CommandError{Message: MessageDuplicatePerson}
	}
	if err := m.AddPerson(c.toAdd); err != nil {
		return Result{}, fmt.Errorf("add person: %w", err)
	}
	return personResult(fmt.Sprintf(MessageAddSuccess, c.toAdd), c.toAdd), nil
}

// Equal reports whether other is an AddCommand with the same arguments.
func (c *AddCommand) Equal(other Command) bool {
	o, ok := other.(*AddCommand)
	return ok && o != nil && c.toAdd.Equal(o.toAdd)
}

// String renders the command and its arguments.
func (c *AddCommand) String() string {
	return fmt.Sprintf("AddCommand{toAdd=%v}", c.toAdd)
}
