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

// Package person defines Person, the record kept by the address book, its
// field value objects and the predicates used to filter persons.
//
// Every value object validates its raw input on construction (NewName,
// NewPhone, ...) and reports a rejected value with *errors.ConstraintError
// whose message is the fixed constraint text of that field. A Person can
// only be built from valid fields and never changes after construction;
// editing a person means building a new Person and replacing the old one.
package person

import (
	"hash/fnv"
	"strings"

	"github.com/tanruiquan/tp/abcore/errors"
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

// Person represents a contact in the address book.
//
// Name is the identity field: IsSamePerson compares names only, which is
// the notion of "duplicate" used by the address book. Equal compares name,
// email, phone, Telegram handle, module codes and tags, the latter two as
// sets. The remark is descriptive data and takes part in neither.
type Person struct {
	name        Name
	email       Email
	phone       Phone
	teleHandle  TeleHandle
	remark      Remark
	moduleCodes model.Set[ModuleCode]
	tags        model.Set[tag.Tag]
}

var _ model.Entity = (*Person)(nil)

// NewPerson builds a Person from already constructed fields.
//
// It fails with *errors.NullFieldError if name, email, phone or teleHandle
// is the zero value, and with the field's *errors.ConstraintError if any
// field (including each module code and tag) is invalid. The remark may be
// empty. The sets are read-only and are shared, not copied.
func NewPerson(
	name Name,
	email Email,
	moduleCodes model.Set[ModuleCode],
	phone Phone,
	teleHandle TeleHandle,
	remark Remark,
	tags model.Set[tag.Tag],
) (*Person, error) {
	p := &Person{
		name:        name,
		email:       email,
		phone:       phone,
		teleHandle:  teleHandle,
		remark:      remark,
		moduleCodes: moduleCodes,
		tags:        tags,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the person's name.
func (p *Person) Name() Name {
	return p.name
}

// Email returns the person's email address.
func (p *Person) Email() Email {
	return p.email
}

// Phone returns the person's phone number.
func (p *Person) Phone() Phone {
	return p.phone
}

// TeleHandle returns the person's Telegram handle.
func (p *Person) TeleHandle() TeleHandle {
	return p.teleHandle
}

// Remark returns the person's remark, which may be empty.
func (p *Person) Remark() Remark {
	return p.remark
}

// ModuleCodes returns the person's module codes as a read-only Set.
func (p *Person) ModuleCodes() model.Set[ModuleCode] {
	return p.moduleCodes
}

// Tags returns the person's tags as a read-only Set.
func (p *Person) Tags() model.Set[tag.Tag] {
	return p.tags
}

// IsSamePerson reports whether other denotes the same person, which is the
// case when both have the same name. This is a weaker notion of equality
// than Equal.
func (p *Person) IsSamePerson(other *Person) bool {
	if other == p {
		return true
	}
	return other != nil && other.name == p.name
}

// Equal reports whether both persons have the same identity and data
// fields. Module codes and tags are compared as sets.
func (p *Person) Equal(other *Person) bool {
	if other == p {
		return true
	}
	if other == nil || p == nil {
		return false
	}
	return p.name == other.name &&
		p.email == other.email &&
		p.moduleCodes.Equal(other.moduleCodes) &&
		p.phone == other.phone &&
		p.teleHandle == other.teleHandle &&
		p.tags.Equal(other.tags)
}

// Hash returns a hash over the fields compared by Equal. Equal persons have
// equal hashes.
func (p *Person) Hash() uint64 {
	h := fnv.New64a()
	for _, field := range []string{
		string(p.name),
		string(p.email),
		p.moduleCodes.String(),
		string(p.phone),
		string(p.teleHandle),
		p.tags.String(),
	} {
		_, _ = h.Write([]byte(field))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// String renders the person on one line:
//
//	Alex Yeoh; Email: alexyeoh@example.com; Phone: 87438807; Telegram: @alexyeoh; Modules: [CS2030S][CS2100]; Tags: [friends]
//
// The Modules and Tags sections are omitted when empty.
func (p *Person) String() string {
	return p.render(p.name.String(), p.email.String(), p.phone.String(), p.teleHandle.String())
}

// Redacted renders like String with contact details masked.
func (p *Person) Redacted() string {
	return p.render(p.name.Redacted(), p.email.Redacted(), p.phone.Redacted(), p.teleHandle.Redacted())
}

func (p *Person) render(name, email, phone, handle string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("; Email: ")
	b.WriteString(email)
	b.WriteString("; Phone: ")
	b.WriteString(phone)
	b.WriteString("; Telegram: ")
	b.WriteString(handle)

	if !p.moduleCodes.IsEmpty() {
		b.WriteString("; Modules: ")
		b.WriteString(p.moduleCodes.String())
	}
	if !p.tags.IsEmpty() {
		b.WriteString("; Tags: ")
		b.WriteString(p.tags.String())
	}
	return b.String()
}

// TypeName returns "Person".
func (p *Person) TypeName() string {
	return "Person"
}

// IsZero reports whether p is nil or has no field set.
func (p *Person) IsZero() bool {
	return p == nil || (p.name.IsZero() && p.email.IsZero() && p.phone.IsZero() && p.teleHandle.IsZero() &&
		p.remark.IsZero() && p.moduleCodes.IsEmpty() && p.tags.IsEmpty())
}

// Validate checks presence of the required fields first (in constructor
// order), then the format of every field.
func (p *Person) Validate() error {
	switch {
	case p.name.IsZero():
		return &errors.NullFieldError{Type: p.TypeName(), Field: "Name"}
	case p.email.IsZero():
		return &errors.NullFieldError{Type: p.TypeName(), Field: "Email"}
	case p.phone.IsZero():
		return &errors.NullFieldError{Type: p.TypeName(), Field: "Phone"}
	case p.teleHandle.IsZero():
		return &errors.NullFieldError{Type: p.TypeName(), Field: "TeleHandle"}
	}

	for _, v := range []model.Validatable{p.name, p.email, p.phone, p.teleHandle} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	for _, code := range p.moduleCodes.Items() {
		if err := code.Validate(); err != nil {
			return err
		}
	}
	for _, t := range p.tags.Items() {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
