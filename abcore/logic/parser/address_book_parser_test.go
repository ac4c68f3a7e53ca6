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

package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/logic/parser"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
	"github.com/tanruiquan/tp/abcore/testutil"
)

func personNamed(t *testing.T, name string) *person.Person {
	t.Helper()
	return testutil.NewPersonBuilder().WithName(name).Build()
}

func TestAddressBookParser(t *testing.T) {
	bob := testutil.Bob()
	phone := person.Phone("91234567")

	tests := []struct {
		name  string
		input string
		want  command.Command
	}{
		{"add", "add n/Bob Choo p/22222222 e/bob@example.com h/@bob_choo m/CS2103T t/husband t/friend", command.NewAddCommand(bob)},
		{"edit", "edit 1 p/91234567", command.NewEditCommand(1, command.EditPersonDescriptor{Phone: &phone})},
		{"delete", "delete 3", command.NewDeleteCommand(3)},
		{"remark", "remark 2 r/Likes to swim.", command.NewRemarkCommand(2, "Likes to swim.")},
		{"find", "find n/foo bar", command.NewFindCommand(person.NewNameContainsKeywordsPredicate([]string{"foo", "bar"}))},
		{"list", "list", command.ListCommand{}},
		{"list ignores arguments", "list 3", command.ListCommand{}},
		{"clear", "clear", command.ClearCommand{}},
		{"help", "help", command.HelpCommand{}},
		{"exit", "  exit  ", command.ExitCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.AddressBookParser{}.Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestAddressBookParser_Failure(t *testing.T) {
	assertParseFailure(t, asParser(parser.AddressBookParser{}), "",
		fmt.Sprintf(command.MessageInvalidCommandFormat, command.HelpUsage))
	assertParseFailure(t, asParser(parser.AddressBookParser{}), "unknownCommand", command.MessageUnknownCommand)
	assertParseFailure(t, asParser(parser.AddressBookParser{}), "FIND n/alice", command.MessageUnknownCommand)
}

// asParser adapts AddressBookParser, which parses full lines, to the
// Parser interface used by the assertion helpers.
func asParser(p parser.AddressBookParser) parser.Parser {
	return p
}

func TestAddCommandParser(t *testing.T) {
	addUsage := fmt.Sprintf(command.MessageInvalidCommandFormat, command.AddUsage)

	t.Run("last value wins for single fields", func(t *testing.T) {
		want := testutil.NewPersonBuilder().WithName("Bob Choo").WithRemark("").Build()
		assertParseSuccess(t, parser.AddCommandParser{},
			" n/Amy Bee n/Bob Choo p/85355255 e/amy@gmail.com h/@amy_bee", command.NewAddCommand(want))
	})

	t.Run("no module codes or tags", func(t *testing.T) {
		want := testutil.FromPerson(testutil.Carl()).Build()
		assertParseSuccess(t, parser.AddCommandParser{},
			" n/Carl Kurz p/95352563 e/heinz@example.com h/@carlkurz", command.NewAddCommand(want))
	})

	failures := []struct {
		name    string
		args    string
		message string
	}{
		{"missing name", " p/85355255 e/amy@gmail.com h/@amy_bee", addUsage},
		{"missing phone", " n/Amy p/ e/amy@gmail.com", addUsage},
		{"missing handle", " n/Amy p/85355255 e/amy@gmail.com", addUsage},
		{"non-empty preamble", " hello n/Amy p/85355255 e/amy@gmail.com h/@amy_bee", addUsage},
		{"invalid name", " n/James& p/85355255 e/amy@gmail.com h/@amy_bee", person.NameConstraints},
		{"invalid phone", " n/Amy p/911a p/85355255x e/amy@gmail.com h/@amy_bee", person.PhoneConstraints},
		{"invalid email", " n/Amy p/85355255 e/bob!yahoo h/@amy_bee", person.EmailConstraints},
		{"invalid handle", " n/Amy p/85355255 e/amy@gmail.com h/amy", person.TeleHandleConstraints},
		{"invalid module", " n/Amy p/85355255 e/amy@gmail.com h/@amy_bee m/CS", person.ModuleCodeConstraints},
		{"invalid tag", " n/Amy p/85355255 e/amy@gmail.com h/@amy_bee t/hubby*", tag.Constraints},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			assertParseFailure(t, parser.AddCommandParser{}, tt.args, tt.message)
		})
	}
}

func TestEditCommandParser(t *testing.T) {
	editUsage := fmt.Sprintf(command.MessageInvalidCommandFormat, command.EditUsage)

	name := person.Name("Amy Bee")
	email := person.Email("amy@example.com")
	handle := person.TeleHandle("@amy_bee")
	codes := model.NewSet(person.ModuleCode("CS2030S"))
	noTags := model.NewSet[tag.Tag]()
	tags := model.NewSet(tag.Tag("friend"), tag.Tag("husband"))

	successes := []struct {
		name string
		args string
		want command.EditPersonDescriptor
	}{
		{"name only", " 1 n/Amy Bee", command.EditPersonDescriptor{Name: &name}},
		{"several fields", " 2 e/amy@example.com h/@amy_bee m/cs2030s", command.EditPersonDescriptor{Email: &email, TeleHandle: &handle, ModuleCodes: &codes}},
		{"clear tags", " 2 t/", command.EditPersonDescriptor{Tags: &noTags}},
		{"several tags", " 2 t/husband t/friend", command.EditPersonDescriptor{Tags: &tags}},
	}
	for _, tt := range successes {
		t.Run(tt.name, func(t *testing.T) {
			index := 1
			if tt.name != "name only" {
				index = 2
			}
			assertParseSuccess(t, parser.EditCommandParser{}, tt.args, command.NewEditCommand(index, tt.want))
		})
	}

	failures := []struct {
		name    string
		args    string
		message string
	}{
		{"no index", " n/Amy", editUsage},
		{"no field", " 1", command.MessageNotEdited},
		{"negative index", " -5 n/Amy", editUsage},
		{"zero index", " 0 n/Amy", editUsage},
		{"invalid preamble", " 1 some random string", editUsage},
		{"invalid phone", " 1 p/abc", person.PhoneConstraints},
		{"empty tag among others", " 1 t/friend t/", tag.Constraints},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			assertParseFailure(t, parser.EditCommandParser{}, tt.args, tt.message)
		})
	}
}

func TestIndexCommandParsers(t *testing.T) {
	assertParseSuccess(t, parser.DeleteCommandParser{}, " 1", command.NewDeleteCommand(1))
	assertParseFailure(t, parser.DeleteCommandParser{}, " a",
		fmt.Sprintf(command.MessageInvalidCommandFormat, command.DeleteUsage))

	assertParseSuccess(t, parser.RemarkCommandParser{}, " 1 r/Likes tea", command.NewRemarkCommand(1, "Likes tea"))
	assertParseSuccess(t, parser.RemarkCommandParser{}, " 1 r/", command.NewRemarkCommand(1, ""))
	assertParseSuccess(t, parser.RemarkCommandParser{}, " 1", command.NewRemarkCommand(1, ""))
	assertParseFailure(t, parser.RemarkCommandParser{}, " r/Likes tea",
		fmt.Sprintf(command.MessageInvalidCommandFormat, command.RemarkUsage))
}
