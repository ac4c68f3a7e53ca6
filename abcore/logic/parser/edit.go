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
	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

// EditCommandParser parses the arguments of the edit command. A lone empty
// m/ or t/ clears the module codes or tags.
type EditCommandParser struct{}

// Parse builds an EditCommand from an index followed by the fields to
// change.
func (EditCommandParser) Parse(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTeleHandle, PrefixModuleCode, PrefixTag)

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, invalidFormat(command.EditUsage)
	}

	var d command.EditPersonDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		name, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if raw, ok := m.Value(PrefixTeleHandle); ok {
		handle, err := ParseTeleHandle(raw)
		if err != nil {
			return nil, err
		}
		d.TeleHandle = &handle
	}
	if m.Has(PrefixModuleCode) {
		codes, err := parseModuleCodesForEdit(m.AllValues(PrefixModuleCode))
		if err != nil {
			return nil, err
		}
		d.ModuleCodes = &codes
	}
	if m.Has(PrefixTag) {
		tags, err := parseTagsForEdit(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, &errors.ParseError{Message: command.MessageNotEdited}
	}
	return command.NewEditCommand(index, d), nil
}

func isClearMarker(raws []string) bool {
	return len(raws) == 1 && raws[0] == ""
}

func parseModuleCodesForEdit(raws []string) (model.Set[person.ModuleCode], error) {
	if isClearMarker(raws) {
		return model.NewSet[person.ModuleCode](), nil
	}
	return ParseModuleCodes(raws)
}

func parseTagsForEdit(raws []string) (model.Set[tag.Tag], error) {
	if isClearMarker(raws) {
		return model.NewSet[tag.Tag](), nil
	}
	return ParseTags(raws)
}
