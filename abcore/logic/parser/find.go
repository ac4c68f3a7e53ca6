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
	"fmt"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// Parser parses the arguments of one command.
type Parser interface {
	Parse(args string) (command.Command, error)
}

// invalidFormat reports malformed arguments together with the usage text.
func invalidFormat(usage string) error {
	return &errors.ParseError{Message: fmt.Sprintf(command.MessageInvalidCommandFormat, usage)}
}

// FindCommandParser parses the arguments of the find command.
//
// Exactly one of the n/, m/ and t/ prefixes selects the search mode. Name
// keywords are matched as given; module code and tag keywords are wrapped
// in square brackets to match the rendering of those values.
type FindCommandParser struct{}

// Parse builds a FindCommand from exactly one of the n/, m/ or t/ prefixes.
func (FindCommandParser) Parse(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixModuleCode, PrefixTag)
	hasName := m.Has(PrefixName)
	hasModule := m.Has(PrefixModuleCode)
	hasTag := m.Has(PrefixTag)

	if (hasName && (hasModule || hasTag)) || (!hasName && hasModule && hasTag) {
		return nil, invalidFormat(command.MessageSinglePrefixSearch)
	}

	switch {
	case hasName:
		keywords, err := findKeywords(m, PrefixName)
		if err != nil {
			return nil, err
		}
		return command.NewFindCommand(person.NewNameContainsKeywordsPredicate(keywords)), nil
	case hasModule:
		keywords, err := findKeywords(m, PrefixModuleCode)
		if err != nil {
			return nil, err
		}
		return command.NewFindCommand(person.NewModuleCodesContainsKeywordsPredicate(bracket(keywords))), nil
	case hasTag:
		keywords, err := findKeywords(m, PrefixTag)
		if err != nil {
			return nil, err
		}
		return command.NewFindCommand(person.NewTagsContainsKeywordsPredicate(bracket(keywords))), nil
	}
	return nil, invalidFormat(command.FindUsage)
}

func findKeywords(m ArgumentMultimap, p Prefix) ([]string, error) {
	value, _ := m.Value(p)
	keywords := strings.Fields(value)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return keywords, nil
}

func bracket(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = "[" + k + "]"
	}
	return out
}
