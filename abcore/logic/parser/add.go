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

// AddCommandParser parses the arguments of the add command.
type AddCommandParser struct{}

// Parse builds an AddCommand from the n/, p/, e/, h/, m/ and t/ arguments.
func (AddCommandParser) Parse(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixTeleHandle, PrefixModuleCode, PrefixTag)
	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixTeleHandle} {
		if !m.Has(p) {
			return nil, invalidFormat(command.AddUsage)
		}
	}
	if m.Preamble() != "" {
		return nil, invalidFormat(command.AddUsage)
	}

	rawName, _ := m.Value(PrefixName)
	name, err := ParseName(rawName)
	if err != nil {
		return nil, err
	}
	rawPhone, _ := m.Value(PrefixPhone)
	phone, err := ParsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rawEmail, _ := m.Value(PrefixEmail)
	email, err := ParseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rawHandle, _ := m.Value(PrefixTeleHandle)
	handle, err := ParseTeleHandle(rawHandle)
	if err != nil {
		return nil, err
	}
	codes, err := ParseModuleCodes(m.AllValues(PrefixModuleCode))
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	p, err := person.NewPerson(name, email, codes, phone, handle, person.NewRemark(""), tags)
	if err != nil {
		return nil, err
	}
	return command.NewAddCommand(p), nil
}
