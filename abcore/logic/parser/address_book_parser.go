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
	"regexp"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic/command"
)

var basicCommandFormat = regexp.MustCompile(`^(\S+)(.*)$`)

// AddressBookParser parses a full line of user input.
type AddressBookParser struct{}

// Parse splits input into the command word and its arguments and hands the
// arguments to the parser of that command. Arguments of list, clear, help
// and exit are ignored.
func (AddressBookParser) Parse(input string) (command.Command, error) {
	match := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if match == nil {
		return nil, invalidFormat(command.HelpUsage)
	}
	word, args := match[1], match[2]

	switch word {
	case command.AddWord:
		return AddCommandParser{}.Parse(args)
	case command.EditWord:
		return EditCommandParser{}.Parse(args)
	case command.DeleteWord:
		return DeleteCommandParser{}.Parse(args)
	case command.RemarkWord:
		return RemarkCommandParser{}.Parse(args)
	case command.FindWord:
		return FindCommandParser{}.Parse(args)
	case command.ListWord:
		return command.ListCommand{}, nil
	case command.ClearWord:
		return command.ClearCommand{}, nil
	case command.HelpWord:
		return command.HelpCommand{}, nil
	case command.ExitWord:
		return command.ExitCommand{}, nil
	default:
		return nil, &errors.ParseError{Type: "Command", Value: word, Message: command.MessageUnknownCommand}
	}
}
