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

package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

// MissingFieldMessageFormat is reported when a stored person lacks a
// required field.
const MissingFieldMessageFormat = "Person's %s field is missing!"

// JSONAdaptedTag is the stored form of a tag.Tag.
//
// It is written as {"tagName": "friends"}. A plain JSON string is also
// accepted on read.
type JSONAdaptedTag struct {
	TagName string `json:"tagName"`
}

// NewJSONAdaptedTag converts t into its stored form.
func NewJSONAdaptedTag(t tag.Tag) JSONAdaptedTag {
	return JSONAdaptedTag{TagName: t.Name()}
}

// UnmarshalJSON accepts the object form or a plain string.
func (a *JSONAdaptedTag) UnmarshalJSON(data []byte) error {
	if name, ok := plainString(data); ok {
		a.TagName = name
		return nil
	}
	type record JSONAdaptedTag
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return &errors.UnmarshalError{Type: "JSONAdaptedTag", Data: data, Reason: err.Error()}
	}
	*a = JSONAdaptedTag(r)
	return nil
}

// ToModelType converts the record into a tag.Tag.
func (a JSONAdaptedTag) ToModelType() (tag.Tag, error) {
	if !tag.IsValidTag(a.TagName) {
		return "", &errors.IllegalValueError{Message: tag.Constraints}
	}
	return tag.Tag(a.TagName), nil
}

// JSONAdaptedModuleCode is the stored form of a person.ModuleCode.
//
// It is written as {"moduleCode": "CS2030S"}. A plain JSON string is also
// accepted on read.
type JSONAdaptedModuleCode struct {
	ModuleCode string `json:"moduleCode"`
}

// NewJSONAdaptedModuleCode converts c into its stored form.
func NewJSONAdaptedModuleCode(c person.ModuleCode) JSONAdaptedModuleCode {
	return JSONAdaptedModuleCode{ModuleCode: c.Code()}
}

// UnmarshalJSON accepts the object form or a plain string.
func (a *JSONAdaptedModuleCode) UnmarshalJSON(data []byte) error {
	if code, ok := plainString(data); ok {
		a.ModuleCode = code
		return nil
	}
	type record JSONAdaptedModuleCode
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return &errors.UnmarshalError{Type: "JSONAdaptedModuleCode", Data: data, Reason: err.Error()}
	}
	*a = JSONAdaptedModuleCode(r)
	return nil
}

// ToModelType converts the record into a person.ModuleCode.
func (a JSONAdaptedModuleCode) ToModelType() (person.ModuleCode, error) {
	if !person.IsValidModuleCode(a.ModuleCode) {
		return "", &errors.IllegalValueError{Message: person.ModuleCodeConstraints}
	}
	return person.ModuleCode(strings.ToUpper(a.ModuleCode)), nil
}

func plainString(data []byte) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}

// JSONAdaptedPerson is the stored form of a person.Person.
//
// Scalar fields are pointers so that an absent field can be told apart from
// an empty one.
type JSONAdaptedPerson struct {
	Name        *string                 `json:"name"`
	Email       *string                 `json:"email"`
	ModuleCodes []JSONAdaptedModuleCode `json:"moduleCodes"`
	Phone       *string                 `json:"phone"`
	TeleHandle  *string                 `json:"teleHandle"`
	Remark      *string                 `json:"remark"`
	Tagged      []JSONAdaptedTag        `json:"tagged"`
}

// FromPerson converts p into its stored form. Module codes and tags are
// written in sorted order.
func FromPerson(p *person.Person) JSONAdaptedPerson {
	codes := make([]JSONAdaptedModuleCode, 0, p.ModuleCodes().Len())
	for _, c := range p.ModuleCodes().Items() {
		codes = append(codes, NewJSONAdaptedModuleCode(c))
	}
	tags := make([]JSONAdaptedTag, 0, p.Tags().Len())
	for _, t := range p.Tags().Items() {
		tags = append(tags, NewJSONAdaptedTag(t))
	}
	return JSONAdaptedPerson{
		Name:        ptr(p.Name().String()),
		Email:       ptr(p.Email().String()),
		ModuleCodes: codes,
		Phone:       ptr(p.Phone().String()),
		TeleHandle:  ptr(p.TeleHandle().String()),
		Remark:      ptr(p.Remark().String()),
		Tagged:      tags,
	}
}

// ToModelType converts the record into a person.Person.
//
// Every field is validated again. The first problem found is reported as
// *errors.IllegalValueError. Tags are checked first, then module codes,
// name, phone, email, remark and Telegram handle.
func (a JSONAdaptedPerson) ToModelType() (*person.Person, error) {
	tags := make([]tag.Tag, 0, len(a.Tagged))
	for _, t := range a.Tagged {
		mt, err := t.ToModelType()
		if err != nil {
			return nil, err
		}
		tags = append(tags, mt)
	}

	codes := make([]person.ModuleCode, 0, len(a.ModuleCodes))
	for _, c := range a.ModuleCodes {
		mc, err := c.ToModelType()
		if err != nil {
			return nil, err
		}
		codes = append(codes, mc)
	}

	if a.Name == nil {
		return nil, missingField("Name")
	}
	if !person.IsValidName(*a.Name) {
		return nil, &errors.IllegalValueError{Message: person.NameConstraints}
	}

	if a.Phone == nil {
		return nil, missingField("Phone")
	}
	if !person.IsValidPhone(*a.Phone) {
		return nil, &errors.IllegalValueError{Message: person.PhoneConstraints}
	}

	if a.Email == nil {
		return nil, missingField("Email")
	}
	if !person.IsValidEmail(*a.Email) {
		return nil, &errors.IllegalValueError{Message: person.EmailConstraints}
	}

	if a.Remark == nil {
		return nil, missingField("Remark")
	}

	if a.TeleHandle == nil {
		return nil, missingField("TeleHandle")
	}
	if !person.IsValidTeleHandle(*a.TeleHandle) {
		return nil, &errors.IllegalValueError{Message: person.TeleHandleConstraints}
	}

	return person.NewPerson(
		person.Name(*a.Name),
		person.Email(*a.Email),
		model.NewSet(codes...),
		person.Phone(*a.Phone),
		person.TeleHandle(*a.TeleHandle),
		person.NewRemark(*a.Remark),
		model.NewSet(tags...),
	)
}

// Equal reports whether both records hold the same data.
func (a JSONAdaptedPerson) Equal(o JSONAdaptedPerson) bool {
	return ptrEqual(a.Name, o.Name) &&
		ptrEqual(a.Email, o.Email) &&
		ptrEqual(a.Phone, o.Phone) &&
		ptrEqual(a.TeleHandle, o.TeleHandle) &&
		ptrEqual(a.Remark, o.Remark) &&
		slices.Equal(a.ModuleCodes, o.ModuleCodes) &&
		slices.Equal(a.Tagged, o.Tagged)
}

func missingField(name string) error {
	return &errors.IllegalValueError{Message: fmt.Sprintf(MissingFieldMessageFormat, name)}
}

func ptr(s string) *string {
	return &s
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
