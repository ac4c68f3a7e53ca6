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

// Package testutil provides fixtures shared by abcore tests.
package testutil

import (
	"fmt"

	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

const (
	DefaultName       = "Amy Bee"
	DefaultPhone      = "85355255"
	DefaultEmail      = "amy@gmail.com"
	DefaultTeleHandle = "@amy_bee"
	DefaultRemark     = "She likes aardvarks."
)

// PersonBuilder builds Person values for tests. Build panics on invalid
// input, since invalid fixtures are bugs in the test itself.
type PersonBuilder struct {
	name, email, phone, handle, remark string
	modules, tags                      []string
}

// NewPersonBuilder returns a builder preloaded with the default fields.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{
		name:   DefaultName,
		email:  DefaultEmail,
		phone:  DefaultPhone,
		handle: DefaultTeleHandle,
		remark: DefaultRemark,
	}
}

// FromPerson returns a builder preloaded with the fields of p.
func FromPerson(p *person.Person) *PersonBuilder {
	b := &PersonBuilder{
		name:   p.Name().String(),
		email:  p.Email().String(),
		phone:  p.Phone().String(),
		handle: p.TeleHandle().String(),
		remark: p.Remark().String(),
	}
	for _, m := range p.ModuleCodes().Items() {
		b.modules = append(b.modules, m.Code())
	}
	for _, t := range p.Tags().Items() {
		b.tags = append(b.tags, t.Name())
	}
	return b
}

// WithName sets the name.
func (b *PersonBuilder) WithName(name string) *PersonBuilder {
	b.name = name
	return b
}

// WithEmail sets the email address.
func (b *PersonBuilder) WithEmail(email string) *PersonBuilder {
	b.email = email
	return b
}

// WithPhone sets the phone number.
func (b *PersonBuilder) WithPhone(phone string) *PersonBuilder {
	b.phone = phone
	return b
}

// WithTeleHandle sets the Telegram handle.
func (b *PersonBuilder) WithTeleHandle(handle string) *PersonBuilder {
	b.handle = handle
	return b
}

// WithRemark sets the remark.
func (b *PersonBuilder) WithRemark(remark string) *PersonBuilder {
	b.remark = remark
	return b
}

// WithModuleCodes replaces the module codes.
func (b *PersonBuilder) WithModuleCodes(codes ...string) *PersonBuilder {
	b.modules = codes
	return b
}

// WithTags replaces the tags.
func (b *PersonBuilder) WithTags(tags ...string) *PersonBuilder {
	b.tags = tags
	return b
}

// Build constructs the Person.
func (b *PersonBuilder) Build() *person.Person {
	codes := make([]person.ModuleCode, 0, len(b.modules))
	for _, raw := range b.modules {
		codes = append(codes, must(person.NewModuleCode(raw)))
	}
	tags := make([]tag.Tag, 0, len(b.tags))
	for _, raw := range b.tags {
		tags = append(tags, must(tag.NewTag(raw)))
	}
	return must(person.NewPerson(
		must(person.NewName(b.name)),
		must(person.NewEmail(b.email)),
		model.NewSet(codes...),
		must(person.NewPhone(b.phone)),
		must(person.NewTeleHandle(b.handle)),
		person.NewRemark(b.remark),
		model.NewSet(tags...),
	))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("invalid test fixture: %v", err))
	}
	return v
}
