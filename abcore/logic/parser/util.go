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
	"strconv"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

// MessageInvalidIndex is reported when an index is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex parses a 1-based index. Leading and trailing whitespace is
// ignored; signs are not allowed.
func ParseIndex(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, &errors.ParseError{Type: "Index", Value: raw, Message: MessageInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &errors.ParseError{Type: "Index", Value: raw, Message: MessageInvalidIndex}
	}
	return n, nil
}

// fieldParseError turns a value object constraint failure into a parse
// failure with the same message.
func fieldParseError(typ, raw string, err error) error {
	return &errors.ParseError{Type: typ, Value: raw, Message: err.Error()}
}

// ParseName trims raw and parses it as a Name.
func ParseName(raw string) (person.Name, error) {
	n, err := person.NewName(raw)
	if err != nil {
		return "", fieldParseError("Name", raw, err)
	}
	return n, nil
}

// ParsePhone trims raw and parses it as a Phone.
func ParsePhone(raw string) (person.Phone, error) {
	p, err := person.NewPhone(raw)
	if err != nil {
		return "", fieldParseError("Phone", raw, err)
	}
	return p, nil
}

// ParseEmail trims raw and parses it as an Email.
func ParseEmail(raw string) (person.Email, error) {
	e, err := person.NewEmail(raw)
	if err != nil {
		return "", fieldParseError("Email", raw, err)
	}
	return e, nil
}

// ParseTeleHandle trims raw and parses it as a TeleHandle.
func ParseTeleHandle(raw string) (person.TeleHandle, error) {
	h, err := person.NewTeleHandle(raw)
	if err != nil {
		return "", fieldParseError("TeleHandle", raw, err)
	}
	return h, nil
}

// ParseModuleCodes parses every raw code. Duplicates collapse.
func ParseModuleCodes(raws []string) (model.Set[person.ModuleCode], error) {
	codes := make([]person.ModuleCode, 0, len(raws))
	for _, raw := range raws {
		c, err := person.NewModuleCode(raw)
		if err != nil {
			return model.Set[person.ModuleCode]{}, fieldParseError("ModuleCode", raw, err)
		}
		codes = append(codes, c)
	}
	return model.NewSet(codes...), nil
}

// ParseTags parses every raw tag name. Duplicates collapse.
func ParseTags(raws []string) (model.Set[tag.Tag], error) {
	tags := make([]tag.Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := tag.NewTag(raw)
		if err != nil {
			return model.Set[tag.Tag]{}, fieldParseError("Tag", raw, err)
		}
		tags = append(tags, t)
	}
	return model.NewSet(tags...), nil
}
