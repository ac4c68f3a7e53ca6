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
	RemarkWord = "remark"

	RemarkUsage = RemarkWord + ": Edits the remark of the person identified " +
		"by the index number used in the last person listing. " +
		"Existing remark will be overwritten by the input.\n" +
		"Parameters: INDEX (must be a positive integer) r/[REMARK]\n" +
		"Example: " + RemarkWord + " 1 r/Likes to swim."

	MessageAddRemarkSuccess    = "Added remark to Person: %s"
	MessageDeleteRemarkSuccess = "Removed remark from Person: %s"
)

// RemarkCommand replaces the remark of the person at an index of the shown
// list. An empty remark removes it.
type RemarkCommand struct {
	index  int
	remark person.Remark
}

// NewRemarkCommand returns a command that sets the remark of the person at
// the one-based index. An empty remark clears it.
func NewRemarkCommand(index int, remark person.Remark) *RemarkCommand {
	return &RemarkCommand{index: index, remark: remark}
}

// Word returns the command word.
func (c *RemarkCommand) Word() string { return RemarkWord }

// Execute sets or clears the remark of the person at the index of the
// displayed list.
func (c *RemarkCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("RemarkCommand", m); err != nil {
		return Result{}, err
	}
	target, err := personAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	edited, err := person.NewPerson(target.Name(), target.Email(), target.ModuleCodes(),
		target.Phone(), target.TeleHandle(), c.remark, target.Tags())
	if err != nil {
		return Result{}, &errors.CommandError{Message: err.Error()}
	}
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, fmt.Errorf("set remark: %w", err)
	}
	m.UpdateFilteredPersonList(person.ShowAllPersons)

	msg := MessageAddRemarkSuccess
	if c.remark.IsZero() {
		msg = MessageDeleteRemarkSuccess
	}
	return personResult(fmt.Sprintf(msg, edited), edited), nil
}

// Equal reports whether other is a RemarkCommand with the same arguments.
func (c *RemarkCommand) Equal(other Command) bool {
	o, ok := other.(*RemarkCommand)
	return ok && o != nil && c.index == o.index && c.remark == o.remark
}
