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
	"github.com/tanruiquan/tp/abcore/model/person"
)

const (
	FindWord = "find"

	FindUsage = FindWord + ": Finds all persons whose names contain any of " +
		"the specified keywords (case-insensitive)\n" +
		"Alternatively, finds all persons whose module codes contains all of the specified\n" +
		"module code(s) (case-insensitive).\n" +
		"Displays the results as a list with index numbers.\n" +
		"Parameters: n/ [name]...\n" +
		"OR\n" +
		"m/[module code]...\n" +
		"Example:\n" +
		FindWord + " n/alice bob charlie\n" +
		FindWord + " m/CS2030S CS2100"
)

// FindCommand narrows the shown list to the persons matching a predicate.
type FindCommand struct {
	pred person.Predicate
}

// NewFindCommand returns a command that filters the displayed list with
// pred.
func NewFindCommand(pred person.Predicate) *FindCommand {
	return &FindCommand{pred: pred}
}

// Predicate returns the filter the command installs.
func (c *FindCommand) Predicate() person.Predicate {
	return c.pred
}

// Word returns the command word.
func (c *FindCommand) Word() string { return FindWord }

// Execute filters the displayed list with the predicate and reports the
// match count.
func (c *FindCommand) Execute(m addressbook.Model) (Result, error) {
	if err := requireModel("FindCommand", m); err != nil {
		return Result{}, err
	}
	m.UpdateFilteredPersonList(c.pred)
	return NewResult(fmt.Sprintf(MessagePersonsListedOverview, len(m.FilteredPersons()))), nil
}

// Equal reports whether other is a FindCommand with the same arguments.
func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	if !ok || o == nil {
		return false
	}
	if c.pred == nil || o.pred == nil {
		return c.pred == nil && o.pred == nil
	}
	return c.pred.Equal(o.pred)
}

// String renders the command and its arguments.
func (c *FindCommand) String() string {
	return fmt.Sprintf("FindCommand{predicate=%v}", c.pred)
}
