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

package addressbook

import (
	"github.com/tanruiquan/tp/abcore/model"
	"github.com/tanruiquan/tp/abcore/model/person"
	"github.com/tanruiquan/tp/abcore/model/tag"
)

type sampleRecord struct {
	name, phone, email, handle, remark string
	modules, tags                      []string
}

var sampleRecords = []sampleRecord{
	{"Alex Yeoh", "87438807", "alexyeoh@example.com", "@alexyeoh", "", []string{"CS2030S", "CS2100"}, []string{"friends"}},
	{"Bernice Yu", "99272758", "berniceyu@example.com", "@berniceyu", "", []string{"CS2100"}, []string{"colleagues", "friends"}},
	{"Charlotte Oliveiro", "93210283", "charlotte@example.com", "@charlotte_o", "", []string{"MA1521"}, []string{"neighbours"}},
	{"David Li", "91031282", "lidavid@example.com", "@david_li", "", []string{"CS2103T", "CS2101"}, []string{"family"}},
	{"Irfan Ibrahim", "92492021", "irfan@example.com", "@irfan_ib", "", []string{"GEA1000"}, []string{"classmates"}},
	{"Roy Balakrishnan", "92624417", "royb@example.com", "@roy_bala", "", nil, []string{"colleagues"}},
}

// SamplePersons returns the persons loaded when no data file exists yet.
func SamplePersons() ([]*person.Person, error) {
	out := make([]*person.Person, 0, len(sampleRecords))
	for _, r := range sampleRecords {
		p, err := r.build()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SampleAddressBook returns an address book holding SamplePersons.
func SampleAddressBook() (*AddressBook, error) {
	persons, err := SamplePersons()
	if err != nil {
		return nil, err
	}
	ab := New()
	if err := ab.SetPersons(persons); err != nil {
		return nil, err
	}
	return ab, nil
}

func (r sampleRecord) build() (*person.Person, error) {
	name, err := person.NewName(r.name)
	if err != nil {
		return nil, err
	}
	phone, err := person.NewPhone(r.phone)
	if err != nil {
		return nil, err
	}
	email, err := person.NewEmail(r.email)
	if err != nil {
		return nil, err
	}
	handle, err := person.NewTeleHandle(r.handle)
	if err != nil {
		return nil, err
	}
	codes := make([]person.ModuleCode, 0, len(r.modules))
	for _, raw := range r.modules {
		code, err := person.NewModuleCode(raw)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	tags := make([]tag.Tag, 0, len(r.tags))
	for _, raw := range r.tags {
		t, err := tag.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return person.NewPerson(name, email, model.NewSet(codes...), phone, handle, person.NewRemark(r.remark), model.NewSet(tags...))
}
