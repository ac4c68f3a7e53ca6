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

	"github.com/tanruiquan/tp/abcore/model/addressbook"
)

const (
	DeleteWord = "delete"

	DeleteUsage = DeleteWord + ": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteWord + " 1"

	MessageDeleteSuccess = "Deleted Person: %s"
)

// DeleteCommand deletes the person at an index of the shown list.
type DeleteCommand struct {
	index int
}

// NewDeleteCommand returns a command that deletes the person at the one-
// based index.
func NewDeleteCommand(index int) *DeleteCommand {
	return &DeleteCommand{index: index}
}

// Word returns the command word.
func (c *DeleteCommand) Word() string { return DeleteWord }

// Execute removes the person at the index of the displayed list.
func (c *DeleteCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("DeleteCommand", m); err != nil {
		return Result{}, err
	}
	target, err := personAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, fmt.Errorf("delete person: %w", err)
	}
	return personResult(fmt.Sprintf(MessageDeleteSuccess, target), target), nil
}

// Equal reports whether other is a DeleteCommand with the same arguments.
func (c *DeleteCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteCommand)
	return ok && o != nil && c.index == o.index
}
