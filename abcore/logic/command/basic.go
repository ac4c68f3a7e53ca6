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
	"strings"

	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// Argument-free commands.
const (
	ListWord  = "list"
	ClearWord = "clear"
	HelpWord  = "help"
	ExitWord  = "exit"

	MessageListSuccess  = "Listed all persons"
	MessageClearSuccess = "Address book has been cleared!"
	MessageExit         = "Exiting Address Book as requested ..."

	HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
		"Example: " + HelpWord
)

// ListCommand shows every person.
type ListCommand struct{}

// Word returns the command word.
func (ListCommand) Word() string { return ListWord }

// Execute clears the filter so every person is shown.
func (ListCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("ListCommand", m); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersonList(person.ShowAllPersons)
	return NewResult(MessageListSuccess), nil
}

// Equal reports whether other is also a ListCommand.
func (ListCommand) Equal(other Command) bool {
	_, ok := other.(ListCommand)
	return ok
}

// ClearCommand removes every person.
type ClearCommand struct{}

// Word returns the command word.
func (ClearCommand) Word() string { return ClearWord }

// Execute replaces the address book with an empty one.
func (ClearCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("ClearCommand", m); err != nil {
		return Result{}, err
	}
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return Result{}, err
	}
	return NewResult(MessageClearSuccess), nil
}

// Equal reports whether other is also a ClearCommand.
func (ClearCommand) Equal(other Command) bool {
	_, ok := other.(ClearCommand)
	return ok
}

// HelpCommand reports the usage of every command.
type HelpCommand struct{}

// Word returns the command word.
func (HelpCommand) Word() string { return HelpWord }

// Execute returns the usage of every command and asks for help to be shown.
func (HelpCommand) Execute(addressbook.Model) (Result, error) {
	return Result{Feedback: HelpMessage(), ShowHelp: true}, nil
}

// Equal reports whether other is also a HelpCommand.
func (HelpCommand) Equal(other Command) bool {
	_, ok := other.(HelpCommand)
	return ok
}

// HelpMessage returns the usage of every command, one block per command.
func HelpMessage() string {
	return strings.Join([]string{
		AddUsage,
		EditUsage,
		DeleteUsage,
		RemarkUsage,
		FindUsage,
		ListWord + ": Lists all persons.",
		ClearWord + ": Clears all entries from the address book.",
		HelpUsage,
		ExitWord + ": Exits the program.",
	}, "\n\n")
}

// ExitCommand asks the application to terminate.
type ExitCommand struct{}

// Word returns the command word.
func (ExitCommand) Word() string { return ExitWord }

// Execute asks the application to exit.
func (ExitCommand) Execute(addressbook.Model) (Result, error) {
	return Result{Feedback: MessageExit, Exit: true}, nil
}

// Equal reports whether other is also an ExitCommand.
func (ExitCommand) Equal(other Command) bool {
	_, ok := other.(ExitCommand)
	return ok
}
