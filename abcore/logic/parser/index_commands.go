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

package parser

import (
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// DeleteCommandParser parses the arguments of the delete command.
type DeleteCommandParser struct{}

// Parse builds a DeleteCommand from a one-based index.
func (DeleteCommandParser) Parse(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(command.DeleteUsage)
	}
	return command.NewDeleteCommand(index), nil
}

// RemarkCommandParser parses the arguments of the remark command. A missing
// or empty r/ removes the remark.
type RemarkCommandParser struct{}

// Parse builds a RemarkCommand from an index and an optional r/ value.
func (RemarkCommandParser) Parse(args string) (command.Command, error) {
	m := Tokenize(args, PrefixRemark)
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.RemarkUsage)
	}
	raw, _ := m.Value(PrefixRemark)
	return command.NewRemarkCommand(index, person.NewRemark(raw)), nil
}
