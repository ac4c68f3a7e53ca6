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

// Package command defines the commands understood by the address book and
// the Result they report back to the user.
//
// A Command is built by the parser with every argument already validated.
// Execute applies it to an addressbook.Model. Failures that depend on the
// state of the model, such as an index past the end of the shown list or a
// duplicate person, are reported as *errors.CommandError whose message is
// meant for the user.
package command

import (
	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model/addressbook"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// User-facing messages shared by several commands and parsers.
const (
	MessageUnknownCommand              = "Unknown command"
	MessageInvalidCommandFormat        = "Invalid command format! \n%s"
	MessageInvalidPersonDisplayedIndex = "The person index provided is invalid"
	MessagePersonsListedOverview       = "%d persons listed!"
	MessageSinglePrefixSearch          = "You can only search with a single prefix."
)

// Command is an executable user command.
type Command interface {
	// Word returns the command word that selects this command.
	Word() string

	// Execute runs the command against m.
	Execute(m addressbook.Model) (Result, error)

	// Equal reports whether other is the same command with the same
	// arguments.
	Equal(other Command) bool
}

// Result is the outcome of a successfully executed command.
type Result struct {
	// Feedback is shown to the user.
	Feedback string

	// ShowHelp asks the interface to display the help text.
	ShowHelp bool

	// Exit asks the application to terminate.
	Exit bool

	// Person is the person added, edited, deleted or remarked, if any.
	Person *person.Person
}

// NewResult returns a Result carrying only feedback.
func NewResult(feedback string) Result {
	return Result{Feedback: feedback}
}

func personResult(feedback string, p *person.Person) Result {
	return Result{Feedback: feedback, Person: p}
}

func requireModel(cmd string, m addressbook.Model) error {
	if m == nil {
		return &errors.NullFieldError{Type: cmd, Field: "Model"}
	}
	return nil
}

// personAt returns the person at the 1-based index of the shown list.
func personAt(m addressbook.Model, oneBased int) (*person.Person, error) {
	shown := m.FilteredPersons()
	if oneBased < 1 || oneBased > len(shown) {
		return nil, &errors.CommandError{Message: MessageInvalidPersonDisplayedIndex}
	}
	return shown[oneBased-1], nil
}
